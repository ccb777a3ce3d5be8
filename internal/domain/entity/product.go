package entity

// Product is a catalog entry that shoppers can save to their wishlist.
type Product struct {
	ID          string
	Name        string
	Price       float64
	Description string
	Image       string
}

// WishlistItem snapshots the product's display fields for a wishlist.
func (p *Product) WishlistItem() WishlistItem {
	return WishlistItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.Price,
	}
}
