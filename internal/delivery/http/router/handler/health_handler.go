package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "ashcosmetic/internal/delivery/context"
	"ashcosmetic/internal/delivery/http/response"
	"ashcosmetic/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports whether the credential store answers queries.
type HealthHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(uc usecase.AccountUsecase, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{uc: uc, logger: logger}
}

// Check handles GET /health. An unreachable store answers 503 with connected=false.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := h.uc.CountUsers(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Health check failed", slog.Any("error", err))

		return c.JSON(http.StatusServiceUnavailable, response.Health{Connected: false})
	}

	return c.JSON(http.StatusOK, response.Health{Connected: true, UserCount: count})
}
