package middleware

import (
	"log/slog"
	"net/http"

	"ashcosmetic/config"
	deliverycontext "ashcosmetic/internal/delivery/context"
	"ashcosmetic/internal/delivery/http/response"
	domainerrors "ashcosmetic/internal/domain/errors"
	"ashcosmetic/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, err)
		}

		details := appErr.Details()
		if details == "" {
			details = err.Error()
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), m.details(details))

		return
	}

	// Routing, body limit and binding failures raised by echo itself
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logFailure(c, err)
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, m.details(err.Error()))

		return
	}

	m.logFailure(c, err)
	_ = response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(),
		domainerrors.ErrInternalError.Message(), m.details(err.Error()))
}

// details hides internal error text unless debug is enabled.
func (m *ErrorMiddleware) details(details string) string {
	if !m.debug {
		return ""
	}

	return details
}

func (m *ErrorMiddleware) logFailure(c echo.Context, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
		slog.String("request_id", deliverycontext.GetRequestIDFromContext(req.Context())),
	)
}
