// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

// User is a registered shopper account.
type User struct {
	ID           string         // Opaque identifier assigned by the store on creation.
	Name         string         // Display name.
	Email        string         // Login identifier, unique and stored as given.
	PasswordHash string         // bcrypt hash; never leaves the service boundary.
	Wishlist     []WishlistItem // Insertion ordered, unique by ProductID.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WishlistItem is a product snapshot saved in a user's wishlist.
// Name, Image and Price are captured when the item is added and are not re-synced.
type WishlistItem struct {
	ProductID string
	Name      string
	Image     string
	Price     float64
}

// NewUser builds an account with an empty wishlist.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Wishlist:     []WishlistItem{},
	}
}

// HasWishlistItem reports whether productID is already in the wishlist.
func (u *User) HasWishlistItem(productID string) bool {
	return slices.ContainsFunc(u.Wishlist, func(item WishlistItem) bool {
		return item.ProductID == productID
	})
}

// WishlistWithout returns a copy of the wishlist without any item matching productID.
func (u *User) WishlistWithout(productID string) []WishlistItem {
	kept := make([]WishlistItem, 0, len(u.Wishlist))
	for _, item := range u.Wishlist {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	return kept
}

// WishlistItems returns the wishlist, never nil.
func (u *User) WishlistItems() []WishlistItem {
	if u.Wishlist == nil {
		return []WishlistItem{}
	}

	return u.Wishlist
}
