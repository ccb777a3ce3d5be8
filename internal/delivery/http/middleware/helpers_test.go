package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"ashcosmetic/config"

	"github.com/labstack/echo/v4"
)

func newTestConfig(debug bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Session.CookieName = "session_id"
	cfg.Session.TTL = time.Hour

	return cfg
}

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(method, target, nil), rec), rec
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
