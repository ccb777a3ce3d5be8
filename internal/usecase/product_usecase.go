package usecase

import (
	"context"

	"ashcosmetic/internal/domain/entity"
)

// ProductUsecase serves the read-only catalog.
type ProductUsecase interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	// Seed upserts the given products by id; running it twice is harmless.
	Seed(ctx context.Context, products []*entity.Product) error
}
