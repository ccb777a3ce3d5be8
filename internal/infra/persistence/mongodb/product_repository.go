package mongodb

import (
	"context"

	"ashcosmetic/internal/domain/entity"
	"ashcosmetic/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository creates a catalog repository on the products collection.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{coll: db.Collection(productsCollection)}
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		products = append(products, docs[i].toEntity())
	}

	return products, nil
}

func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var doc productDocument
	if err := repo.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return doc.toEntity(), nil
}

func (repo *productRepository) Upsert(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(products))
	for _, product := range products {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(byID(product.ID)).
			SetReplacement(newProductDocument(product)).
			SetUpsert(true))
	}

	if _, err := repo.coll.BulkWrite(ctx, models); err != nil {
		return errors.Wrap(err, "failed to upsert products")
	}

	return nil
}
