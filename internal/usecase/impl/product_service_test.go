package impl

import (
	"context"
	"testing"

	"ashcosmetic/internal/domain/entity"
	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/domain/repository"
	mockRepo "ashcosmetic/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_List(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	srv := NewProductService(ProductServiceParams{ProductRepo: repo, Logger: newDiscardLogger()})
	ctx := context.Background()

	repo.EXPECT().List(ctx).Return(nil, nil)

	products, err := srv.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductService_Get(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	srv := NewProductService(ProductServiceParams{ProductRepo: repo, Logger: newDiscardLogger()})
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, "prod1").Return(&entity.Product{ID: "prod1"}, nil)
	repo.EXPECT().FindByID(ctx, "prod99").Return(nil, repository.ErrProductNotFound)

	product, err := srv.Get(ctx, "prod1")
	require.NoError(t, err)
	assert.Equal(t, "prod1", product.ID)

	_, err = srv.Get(ctx, "prod99")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_Seed(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	srv := NewProductService(ProductServiceParams{ProductRepo: repo, Logger: newDiscardLogger()})
	ctx := context.Background()
	products := []*entity.Product{{ID: "prod1"}}

	repo.EXPECT().Upsert(ctx, products).Return(nil)

	require.NoError(t, srv.Seed(ctx, products))
	require.NoError(t, srv.Seed(ctx, nil))
}
