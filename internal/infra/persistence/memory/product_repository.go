package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"ashcosmetic/internal/domain/entity"
	"ashcosmetic/internal/domain/repository"
)

type productRepository struct {
	mu       sync.RWMutex
	products map[string]entity.Product
}

// NewProductRepository creates an empty in-memory catalog.
func NewProductRepository() repository.ProductRepository {
	return &productRepository{products: make(map[string]entity.Product)}
}

func (repo *productRepository) List(_ context.Context) ([]*entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	products := make([]*entity.Product, 0, len(repo.products))
	for _, product := range repo.products {
		p := product
		products = append(products, &p)
	}
	slices.SortFunc(products, func(a, b *entity.Product) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return products, nil
}

func (repo *productRepository) FindByID(_ context.Context, id string) (*entity.Product, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	product, ok := repo.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return &product, nil
}

func (repo *productRepository) Upsert(_ context.Context, products []*entity.Product) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, product := range products {
		repo.products[product.ID] = *product
	}

	return nil
}
