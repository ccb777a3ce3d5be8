package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewUser_StartsWithEmptyWishlist(t *testing.T) {
	user := NewUser("Ann", "ann@x.com", "hash")

	assert.NotNil(t, user.Wishlist)
	assert.Empty(t, user.Wishlist)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@x.com", user.Email)
}

func TestUser_HasWishlistItem(t *testing.T) {
	user := &User{Wishlist: []WishlistItem{{ProductID: "prod1"}, {ProductID: "prod2"}}}

	assert.True(t, user.HasWishlistItem("prod2"))
	assert.False(t, user.HasWishlistItem("prod3"))
}

func TestUser_WishlistWithout_PreservesOrder(t *testing.T) {
	user := &User{Wishlist: []WishlistItem{
		{ProductID: "a"}, {ProductID: "b"}, {ProductID: "a"}, {ProductID: "c"},
	}}

	got := user.WishlistWithout("a")

	assert.Equal(t, []WishlistItem{{ProductID: "b"}, {ProductID: "c"}}, got)
	assert.Len(t, user.Wishlist, 4, "source wishlist must not be modified")
}

func TestUser_WishlistWithout_MissingIDIsNoop(t *testing.T) {
	user := &User{Wishlist: []WishlistItem{{ProductID: "a"}}}

	assert.Equal(t, user.Wishlist, user.WishlistWithout("zzz"))
}

func TestUser_WishlistItems_NeverNil(t *testing.T) {
	assert.NotNil(t, (&User{}).WishlistItems())
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	session := &Session{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, session.Expired(now))
	assert.True(t, session.Expired(now.Add(time.Minute)))
	assert.True(t, session.Expired(now.Add(time.Hour)))
}

func TestProduct_WishlistItem(t *testing.T) {
	product := &Product{ID: "prod1", Name: "Clothes", Price: 999, Image: "images/box1_image.jpg"}

	assert.Equal(t, WishlistItem{
		ProductID: "prod1",
		Name:      "Clothes",
		Image:     "images/box1_image.jpg",
		Price:     999,
	}, product.WishlistItem())
}
