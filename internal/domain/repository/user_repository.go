// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ashcosmetic/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store. Implementations enforce email uniqueness
// at the storage level and report a violation as domainerrors.ErrEmailAlreadyRegistered.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, matched exactly.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and assigns its ID.
	Create(ctx context.Context, user *entity.User) error

	// ReplaceWishlist overwrites the whole wishlist in a single write. It serves bulk or
	// administrative overwrites; request handling uses the atomic item operations below.
	ReplaceWishlist(ctx context.Context, id string, wishlist []entity.WishlistItem) error

	// AddWishlistItem appends item unless an item with the same product ID is present.
	// The check and the append are one atomic update. added is false when the item existed.
	AddWishlistItem(ctx context.Context, id string, item entity.WishlistItem) (added bool, err error)

	// RemoveWishlistItem atomically drops every item with productID. Missing items are not an error.
	RemoveWishlistItem(ctx context.Context, id string, productID string) error

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}
