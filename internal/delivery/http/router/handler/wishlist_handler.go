package handler

import (
	"net/http"

	deliverycontext "ashcosmetic/internal/delivery/context"
	"ashcosmetic/internal/delivery/http/response"
	"ashcosmetic/internal/domain/entity"
	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// addWishlistRequest carries the product snapshot. Price may be omitted.
type addWishlistRequest struct {
	ProductID string  `json:"productId" form:"productId" validate:"required"`
	Name      string  `json:"name" form:"name" validate:"required"`
	Image     string  `json:"image" form:"image"`
	Price     float64 `json:"price" form:"price"`
}

type removeWishlistRequest struct {
	ProductID string `json:"productId" form:"productId"`
}

// WishlistHandler serves the wishlist routes. Every route sits behind RequireLogin.
type WishlistHandler struct {
	uc usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(uc usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// Add handles POST /wishlist/add.
func (h *WishlistHandler) Add(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req addWishlistRequest
	if err := bindAndValidate(c, &req, domainerrors.ErrProductDataMissing); err != nil {
		return err
	}

	output, err := h.uc.Add(c.Request().Context(), userID, entity.WishlistItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Image:     req.Image,
		Price:     req.Price,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Added {
		return response.Rejected(c, "Already in wishlist")
	}

	return response.Success(c, "Added to wishlist")
}

// Remove handles POST /wishlist/remove. Unknown product ids succeed.
func (h *WishlistHandler) Remove(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	var req removeWishlistRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrProductDataMissing.WithDetails(err.Error()))
	}

	if err := h.uc.Remove(c.Request().Context(), userID, req.ProductID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, "Removed from wishlist")
}

// List handles GET /wishlist.
func (h *WishlistHandler) List(c echo.Context) error {
	userID, err := sessionUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Wishlist{
		Success:  true,
		Wishlist: response.FromWishlist(items),
	})
}

func sessionUserID(c echo.Context) (string, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return "", errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return userID, nil
}
