package middleware

import (
	"ashcosmetic/config"
	domainerrors "ashcosmetic/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles credential endpoints per client IP.
type RateLimitMiddleware struct {
	limiter echo.MiddlewareFunc
}

// NewRateLimitMiddleware builds one limiter whose budget is shared by every route it guards.
// A missing or disabled rateLimit section yields a pass-through.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled {
		return &RateLimitMiddleware{
			limiter: func(next echo.HandlerFunc) echo.HandlerFunc { return next },
		}
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RateLimit.Rate),
		Burst:     cfg.RateLimit.Burst,
		ExpiresIn: cfg.RateLimit.ExpiresIn,
	})

	return &RateLimitMiddleware{
		limiter: echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
			Store: store,
			IdentifierExtractor: func(c echo.Context) (string, error) {
				return c.RealIP(), nil
			},
			DenyHandler: func(_ echo.Context, _ string, _ error) error {
				return errors.WithStack(domainerrors.ErrTooManyRequests)
			},
		}),
	}
}

// Limit is the echo middleware.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return m.limiter(next)
}
