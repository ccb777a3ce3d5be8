// Package cookie reads and writes the session cookie.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"ashcosmetic/config"

	"github.com/labstack/echo/v4"
)

// SessionCookie carries the session token between requests. It is HTTP-only and scoped to "/".
type SessionCookie struct {
	name     string
	secure   bool
	sameSite http.SameSite
	ttl      time.Duration
}

// NewSessionCookie builds the cookie attributes from the session config.
func NewSessionCookie(cfg *config.Config) *SessionCookie {
	return &SessionCookie{
		name:     cfg.Session.CookieName,
		secure:   cfg.Session.Secure,
		sameSite: parseSameSite(cfg.Session.SameSite),
		ttl:      cfg.Session.TTL,
	}
}

// Name returns the cookie name.
func (s *SessionCookie) Name() string {
	return s.name
}

// Token returns the session token sent by the client, or "" when there is none.
func (s *SessionCookie) Token(c echo.Context) string {
	cookie, err := c.Cookie(s.name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// Set issues the cookie for a freshly established session.
func (s *SessionCookie) Set(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(s.build(token, int(s.ttl.Seconds()), expiresAt))
}

// Clear tells the client to drop the cookie.
func (s *SessionCookie) Clear(c echo.Context) {
	c.SetCookie(s.build("", -1, time.Unix(0, 0)))
}

func (s *SessionCookie) build(value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite,
	}
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
