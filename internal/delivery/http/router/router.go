// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ashcosmetic/internal/delivery/http/middleware"
	"ashcosmetic/internal/delivery/http/router/handler"
	"ashcosmetic/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	WishlistHandler     *handler.WishlistHandler
	ProductHandler      *handler.ProductHandler
	HealthHandler       *handler.HealthHandler
	SessionMiddleware   *middleware.SessionMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Gatherer            prometheus.Gatherer
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	wishlistHandler     *handler.WishlistHandler
	productHandler      *handler.ProductHandler
	healthHandler       *handler.HealthHandler
	sessionMiddleware   *middleware.SessionMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	gatherer            prometheus.Gatherer
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		wishlistHandler:     params.WishlistHandler,
		productHandler:      params.ProductHandler,
		healthHandler:       params.HealthHandler,
		sessionMiddleware:   params.SessionMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		gatherer:            params.Gatherer,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.gatherer)))

	// Account routes; credential endpoints share one per-client budget
	e.POST("/submit", r.accountHandler.Register, r.rateLimitMiddleware.Limit)
	e.POST("/signin", r.accountHandler.Login, r.rateLimitMiddleware.Limit)
	e.GET("/user", r.accountHandler.CurrentUser)
	e.POST("/logout", r.accountHandler.Logout)

	// Wishlist routes require a live session
	wishlistGroup := e.Group("/wishlist", r.sessionMiddleware.RequireLogin)
	{
		wishlistGroup.GET("", r.wishlistHandler.List)
		wishlistGroup.POST("/add", r.wishlistHandler.Add)
		wishlistGroup.POST("/remove", r.wishlistHandler.Remove)
	}

	productsGroup := e.Group("/products")
	{
		productsGroup.GET("", r.productHandler.List)
		productsGroup.GET("/:id", r.productHandler.Get)
	}
}
