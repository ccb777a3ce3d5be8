package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ashcosmetic/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(secure bool, sameSite string) *config.Config {
	cfg := &config.Config{}
	cfg.Session.CookieName = "session_id"
	cfg.Session.TTL = time.Hour
	cfg.Session.Secure = secure
	cfg.Session.SameSite = sameSite

	return cfg
}

func TestSessionCookie_Set(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/signin", nil), rec)

	NewSessionCookie(newConfig(true, "")).Set(c, "tok", time.Now().Add(time.Hour))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	got := cookies[0]
	assert.Equal(t, "session_id", got.Name)
	assert.Equal(t, "tok", got.Value)
	assert.Equal(t, "/", got.Path)
	assert.Equal(t, 3600, got.MaxAge)
	assert.True(t, got.HttpOnly)
	assert.True(t, got.Secure)
	assert.Equal(t, http.SameSiteLaxMode, got.SameSite)
}

func TestSessionCookie_Clear(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/logout", nil), rec)

	NewSessionCookie(newConfig(false, "strict")).Clear(c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
}

func TestSessionCookie_Token(t *testing.T) {
	e := echo.New()
	sc := NewSessionCookie(newConfig(false, "lax"))

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	assert.Empty(t, sc.Token(e.NewContext(req, httptest.NewRecorder())))

	req.AddCookie(&http.Cookie{Name: "session_id", Value: "tok"})
	assert.Equal(t, "tok", sc.Token(e.NewContext(req, httptest.NewRecorder())))
}

func TestParseSameSite(t *testing.T) {
	assert.Equal(t, http.SameSiteNoneMode, parseSameSite(" None "))
	assert.Equal(t, http.SameSiteLaxMode, parseSameSite("unknown"))
}
