package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"ashcosmetic/internal/domain/entity"
	domainerrors "ashcosmetic/internal/domain/errors"
	mockUsecase "ashcosmetic/internal/mocks/usecase"
	"ashcosmetic/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishlistHandler_Add(t *testing.T) {
	e := newTestEcho()
	item := entity.WishlistItem{ProductID: "prod1", Name: "Lip Balm", Image: "images/box1_image.jpg", Price: 999}
	body := `{"productId":"prod1","name":"Lip Balm","image":"images/box1_image.jpg","price":999}`

	t.Run("added", func(t *testing.T) {
		uc := mockUsecase.NewMockWishlistUsecase(t)
		uc.EXPECT().Add(mock.Anything, "u1", item).Return(&usecase.AddWishlistOutput{Added: true}, nil)

		c, rec := loggedIn(e, jsonRequest(http.MethodPost, "/wishlist/add", body), "u1")
		require.NoError(t, NewWishlistHandler(uc).Add(c))
		assert.JSONEq(t, `{"success":true,"message":"Added to wishlist"}`, rec.Body.String())
	})

	t.Run("already present", func(t *testing.T) {
		uc := mockUsecase.NewMockWishlistUsecase(t)
		uc.EXPECT().Add(mock.Anything, "u1", item).
			Return(&usecase.AddWishlistOutput{Added: false, Reason: usecase.ReasonAlreadyExists}, nil)

		c, rec := loggedIn(e, jsonRequest(http.MethodPost, "/wishlist/add", body), "u1")
		require.NoError(t, NewWishlistHandler(uc).Add(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Already in wishlist"}`, rec.Body.String())
	})

	t.Run("form price is parsed", func(t *testing.T) {
		uc := mockUsecase.NewMockWishlistUsecase(t)
		uc.EXPECT().Add(mock.Anything, "u1", item).Return(&usecase.AddWishlistOutput{Added: true}, nil)

		req := formRequest(http.MethodPost, "/wishlist/add", url.Values{
			"productId": {"prod1"}, "name": {"Lip Balm"}, "image": {"images/box1_image.jpg"}, "price": {"999"},
		})
		c, _ := loggedIn(e, req, "u1")
		require.NoError(t, NewWishlistHandler(uc).Add(c))
	})

	t.Run("missing name", func(t *testing.T) {
		uc := mockUsecase.NewMockWishlistUsecase(t)

		c, _ := loggedIn(e, jsonRequest(http.MethodPost, "/wishlist/add", `{"productId":"prod1"}`), "u1")
		assert.ErrorIs(t, NewWishlistHandler(uc).Add(c), domainerrors.ErrProductDataMissing)
	})

	t.Run("no session user", func(t *testing.T) {
		uc := mockUsecase.NewMockWishlistUsecase(t)

		c := e.NewContext(jsonRequest(http.MethodPost, "/wishlist/add", body), httptest.NewRecorder())
		assert.ErrorIs(t, NewWishlistHandler(uc).Add(c), domainerrors.ErrUnauthorized)
	})
}

func TestWishlistHandler_Remove(t *testing.T) {
	e := newTestEcho()
	uc := mockUsecase.NewMockWishlistUsecase(t)
	uc.EXPECT().Remove(mock.Anything, "u1", "prod1").Return(nil)

	c, rec := loggedIn(e, jsonRequest(http.MethodPost, "/wishlist/remove", `{"productId":"prod1"}`), "u1")
	require.NoError(t, NewWishlistHandler(uc).Remove(c))
	assert.JSONEq(t, `{"success":true,"message":"Removed from wishlist"}`, rec.Body.String())
}

func TestWishlistHandler_List(t *testing.T) {
	e := newTestEcho()

	t.Run("items", func(t *testing.T) {
		uc := mockUsecase.NewMockWishlistUsecase(t)
		uc.EXPECT().List(mock.Anything, "u1").Return([]entity.WishlistItem{{ProductID: "prod2", Name: "Serum", Price: 999}}, nil)

		c, rec := loggedIn(e, httptest.NewRequest(http.MethodGet, "/wishlist", nil), "u1")
		require.NoError(t, NewWishlistHandler(uc).List(c))
		assert.JSONEq(t, `{"success":true,"wishlist":[{"productId":"prod2","name":"Serum","image":"","price":999}]}`, rec.Body.String())
	})

	t.Run("empty is an array", func(t *testing.T) {
		uc := mockUsecase.NewMockWishlistUsecase(t)
		uc.EXPECT().List(mock.Anything, "u1").Return(nil, nil)

		c, rec := loggedIn(e, httptest.NewRequest(http.MethodGet, "/wishlist", nil), "u1")
		require.NoError(t, NewWishlistHandler(uc).List(c))
		assert.JSONEq(t, `{"success":true,"wishlist":[]}`, rec.Body.String())
	})
}
