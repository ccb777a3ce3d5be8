package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"ashcosmetic/config"
	deliverycontext "ashcosmetic/internal/delivery/context"
	"ashcosmetic/internal/delivery/http/cookie"
	"ashcosmetic/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestCookie() *cookie.SessionCookie {
	cfg := &config.Config{}
	cfg.Session.CookieName = "session_id"
	cfg.Session.TTL = time.Hour

	return cookie.NewSessionCookie(cfg)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return req
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

// loggedIn returns a context that has passed RequireLogin for userID.
func loggedIn(e *echo.Echo, req *http.Request, userID string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetUserID(c, userID)

	return c, rec
}
