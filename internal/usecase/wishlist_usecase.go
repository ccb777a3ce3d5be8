package usecase

import (
	"context"

	"ashcosmetic/internal/domain/entity"
)

// ReasonAlreadyExists is reported when the product is already in the wishlist.
const ReasonAlreadyExists = "AlreadyExists"

// AddWishlistOutput reports whether Add changed the wishlist.
type AddWishlistOutput struct {
	Added  bool
	Reason string
}

// WishlistUsecase mutates a user's wishlist. Every call assumes an authenticated user id.
type WishlistUsecase interface {
	Add(ctx context.Context, userID string, item entity.WishlistItem) (*AddWishlistOutput, error)
	Remove(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) ([]entity.WishlistItem, error)
}
