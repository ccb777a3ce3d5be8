package repository

import (
	"context"
	"errors"

	"ashcosmetic/internal/domain/entity"
)

// ErrProductNotFound is returned when a catalog entry does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the read side of the product catalog plus idempotent seeding.
type ProductRepository interface {
	// List returns every product ordered by ID.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID returns a single product, or ErrProductNotFound.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Upsert inserts or replaces products by ID.
	Upsert(ctx context.Context, products []*entity.Product) error
}
