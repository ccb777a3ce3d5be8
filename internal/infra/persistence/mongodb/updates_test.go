package mongodb

import (
	"testing"
	"time"

	"ashcosmetic/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddWishlistItemFilter_GuardsOnProductID(t *testing.T) {
	oid := primitive.NewObjectID()

	filter := addWishlistItemFilter(oid, "prod1")

	require.Len(t, filter, 2)
	assert.Equal(t, "_id", filter[0].Key)
	assert.Equal(t, oid, filter[0].Value)
	assert.Equal(t, "wishlist.productId", filter[1].Key)
	assert.Equal(t, bson.D{{Key: "$ne", Value: "prod1"}}, filter[1].Value)
}

func TestAddWishlistItemUpdate_PushesSnapshot(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	item := entity.WishlistItem{ProductID: "prod1", Name: "Lip Balm", Image: "images/box1_image.jpg", Price: 999}

	update := addWishlistItemUpdate(item, now)

	require.Len(t, update, 2)
	assert.Equal(t, "$push", update[0].Key)
	assert.Equal(t, bson.D{{Key: "wishlist", Value: wishlistDocument{
		ProductID: "prod1", Name: "Lip Balm", Image: "images/box1_image.jpg", Price: 999,
	}}}, update[0].Value)
	assert.Equal(t, "$set", update[1].Key)
}

func TestRemoveWishlistItemUpdate_PullsByProductID(t *testing.T) {
	update := removeWishlistItemUpdate("prod2", time.Now())

	require.Len(t, update, 2)
	assert.Equal(t, "$pull", update[0].Key)
	assert.Equal(t, bson.D{{Key: "wishlist", Value: bson.D{{Key: "productId", Value: "prod2"}}}}, update[0].Value)
}

func TestReplaceWishlistUpdate_NilBecomesEmptyArray(t *testing.T) {
	update := replaceWishlistUpdate(nil, time.Now())

	set, ok := update[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "wishlist", set[0].Key)
	assert.Equal(t, []wishlistDocument{}, set[0].Value)
}

func TestParseObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	parsed, ok := parseObjectID(oid.Hex())
	assert.True(t, ok)
	assert.Equal(t, oid, parsed)

	_, ok = parseObjectID("not-an-object-id")
	assert.False(t, ok)
}
