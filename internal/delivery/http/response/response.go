// Package response holds the JSON payloads written by the HTTP handlers.
package response

import (
	"net/http"

	"ashcosmetic/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Message is the envelope shared by every action endpoint.
type Message struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "DUPLICATE_EMAIL"
	Details string `json:"details,omitempty"` // Only populated when debug is enabled
}

// User is the public view of an account. The password hash has no field here.
type User struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Wishlist []WishlistItem `json:"wishlist"`
}

// WishlistItem is one saved product.
type WishlistItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
}

// CurrentUser answers GET /user.
type CurrentUser struct {
	LoggedIn bool  `json:"loggedIn"`
	User     *User `json:"user,omitempty"`
}

// Wishlist answers GET /wishlist.
type Wishlist struct {
	Success  bool           `json:"success"`
	Wishlist []WishlistItem `json:"wishlist"`
}

// Product is a catalog entry.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// Products answers GET /products.
type Products struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
}

// ProductDetail answers GET /products/:id.
type ProductDetail struct {
	Success bool    `json:"success"`
	Product Product `json:"product"`
}

// Health answers GET /health.
type Health struct {
	Connected bool  `json:"connected"`
	UserCount int64 `json:"userCount"`
}

// Success writes a 200 action result.
func Success(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Message{Success: true, Message: message})
}

// Rejected writes a 200 result for an action that was refused without an error.
func Rejected(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Message{Success: false, Message: message})
}

// Error writes a failure envelope.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Message{
		Success: false,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// FromUser maps an account to its public view.
func FromUser(user *entity.User) *User {
	if user == nil {
		return nil
	}

	return &User{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Wishlist: FromWishlist(user.Wishlist),
	}
}

// FromWishlist never returns nil so the JSON is always an array.
func FromWishlist(items []entity.WishlistItem) []WishlistItem {
	out := make([]WishlistItem, 0, len(items))
	for _, item := range items {
		out = append(out, WishlistItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Image:     item.Image,
			Price:     item.Price,
		})
	}

	return out
}

// FromProduct maps a catalog entry.
func FromProduct(product *entity.Product) Product {
	return Product{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		Image:       product.Image,
	}
}

// FromProducts maps the catalog, preserving order.
func FromProducts(products []*entity.Product) []Product {
	out := make([]Product, 0, len(products))
	for _, product := range products {
		out = append(out, FromProduct(product))
	}

	return out
}
