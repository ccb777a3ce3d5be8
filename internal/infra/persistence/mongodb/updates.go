package mongodb

import (
	"time"

	"ashcosmetic/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// addWishlistItemFilter matches the user only while no item with the product id exists,
// which makes the membership check and the push a single atomic update.
func addWishlistItemFilter(id primitive.ObjectID, productID string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "wishlist.productId", Value: bson.D{{Key: "$ne", Value: productID}}},
	}
}

func addWishlistItemUpdate(item entity.WishlistItem, now time.Time) bson.D {
	return bson.D{
		{Key: "$push", Value: bson.D{{Key: "wishlist", Value: newWishlistDocument(item)}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
	}
}

func removeWishlistItemUpdate(productID string, now time.Time) bson.D {
	return bson.D{
		{Key: "$pull", Value: bson.D{{Key: "wishlist", Value: bson.D{{Key: "productId", Value: productID}}}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
	}
}

func replaceWishlistUpdate(items []entity.WishlistItem, now time.Time) bson.D {
	return bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "wishlist", Value: newWishlistDocuments(items)},
			{Key: "updatedAt", Value: now},
		}},
	}
}

func byID(id any) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}
