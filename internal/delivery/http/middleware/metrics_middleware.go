package middleware

import (
	"net/http"
	"time"

	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/errors"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no registered route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// HTTPMetrics receives one observation per served request.
type HTTPMetrics interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
}

// MetricsMiddleware counts requests by route template and final status.
type MetricsMiddleware struct {
	metrics HTTPMetrics
}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware(metrics HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: metrics}
}

// Handle records the request after the handler returns.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// The error handler has not written the response yet, so derive the status from the error.
		status := c.Response().Status
		if err != nil {
			status = statusFromError(err)
		}

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}

		m.metrics.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}

func statusFromError(err error) int {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
