package http

import (
	"context"
	"encoding/json"
	"log/slog"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"ashcosmetic/config"
	"ashcosmetic/internal/delivery/http/cookie"
	"ashcosmetic/internal/delivery/http/middleware"
	"ashcosmetic/internal/delivery/http/router"
	"ashcosmetic/internal/delivery/http/router/handler"
	"ashcosmetic/internal/infra/auth"
	"ashcosmetic/internal/infra/metrics"
	"ashcosmetic/internal/infra/persistence/memory"
	"ashcosmetic/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testApp struct {
	t      *testing.T
	echo   *echo.Echo
	cookie *stdhttp.Cookie
}

func newTestApp(t *testing.T, overrides ...func(*config.Config)) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Driver = config.StorageDriverMemory
	cfg.Session.TTL = time.Hour
	cfg.Session.CookieName = "session_id"
	cfg.Session.SameSite = "lax"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.CORS = &config.CORSConfig{AllowOrigins: []string{"http://localhost:8000"}}
	for _, override := range overrides {
		override(cfg)
	}

	logger := slog.New(slog.DiscardHandler)
	registry := metrics.NewRegistry()
	collector := metrics.NewCollector(registry)

	userRepo := memory.NewUserRepository()
	sessions := impl.NewSessionService(impl.SessionServiceParams{
		SessionRepo: memory.NewSessionRepository(),
		Tokens:      auth.NewTokenGenerator(),
		Config:      cfg,
		Logger:      logger,
	})
	accounts := impl.NewAccountService(impl.AccountServiceParams{
		UserRepo: userRepo,
		Sessions: sessions,
		Hasher:   auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Metrics:  collector,
		Logger:   logger,
	})
	wishlist := impl.NewWishlistService(impl.WishlistServiceParams{
		UserRepo: userRepo,
		Metrics:  collector,
		Logger:   logger,
	})
	products := impl.NewProductService(impl.ProductServiceParams{
		ProductRepo: memory.NewProductRepository(),
		Logger:      logger,
	})
	require.NoError(t, products.Seed(context.Background(), impl.DefaultCatalog()))

	sessionCookie := cookie.NewSessionCookie(cfg)
	routerParams := router.RouterParams{
		AccountHandler:      handler.NewAccountHandler(accounts, sessionCookie, logger),
		WishlistHandler:     handler.NewWishlistHandler(wishlist),
		ProductHandler:      handler.NewProductHandler(products),
		HealthHandler:       handler.NewHealthHandler(accounts, logger),
		SessionMiddleware:   middleware.NewSessionMiddleware(sessions, sessionCookie),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(cfg),
		Gatherer:            registry,
	}

	e := newEcho(cfg, logger, middleware.NewErrorMiddleware(logger, cfg), middleware.NewMetricsMiddleware(collector), routerParams)

	return &testApp{t: t, echo: e}
}

// do sends the request with the current session cookie and keeps any cookie the server sets.
func (a *testApp) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	a.t.Helper()

	var req *stdhttp.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name != "session_id" {
			continue
		}
		if c.MaxAge < 0 {
			a.cookie = nil
		} else {
			a.cookie = c
		}
	}

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func registration(name, email, password, confirm string) url.Values {
	return url.Values{"name": {name}, "email": {email}, "password": {password}, "confirm": {confirm}}
}

func TestServer_AccountFlow(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(stdhttp.MethodPost, "/submit", registration("Asha", "asha@example.com", "s3cret", "s3cret"))
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Registration successful!"}`, rec.Body.String())

	t.Run("registration failures", func(t *testing.T) {
		tests := []struct {
			form    url.Values
			message string
		}{
			{registration("Asha", "asha@example.com", "other", "other"), "Email already registered"},
			{registration("Ravi", "ravi@example.com", "a", "b"), "Passwords do not match"},
			{registration("", "ravi@example.com", "a", "a"), "All fields required"},
		}

		for _, tt := range tests {
			rec := app.do(stdhttp.MethodPost, "/submit", tt.form)
			assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decode(t, rec)["message"])
			assert.Equal(t, false, decode(t, rec)["success"])
		}
	})

	t.Run("login failures", func(t *testing.T) {
		tests := []struct {
			form    url.Values
			message string
		}{
			{url.Values{"email": {"nobody@example.com"}, "password": {"x"}}, "User not found"},
			{url.Values{"email": {"asha@example.com"}, "password": {"wrong"}}, "Invalid password"},
			{url.Values{"email": {"asha@example.com"}}, "Email & password required"},
		}

		for _, tt := range tests {
			rec := app.do(stdhttp.MethodPost, "/signin", tt.form)
			assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decode(t, rec)["message"])
		}
		assert.Nil(t, app.cookie)
	})

	rec = app.do(stdhttp.MethodGet, "/user", nil)
	assert.JSONEq(t, `{"loggedIn":false}`, rec.Body.String())

	rec = app.do(stdhttp.MethodPost, "/signin", url.Values{"email": {"asha@example.com"}, "password": {"s3cret"}})
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Login successful!"}`, rec.Body.String())
	require.NotNil(t, app.cookie)
	assert.True(t, app.cookie.HttpOnly)

	rec = app.do(stdhttp.MethodGet, "/user", nil)
	body := decode(t, rec)
	assert.Equal(t, true, body["loggedIn"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "Asha", user["name"])
	assert.Equal(t, "asha@example.com", user["email"])
	assert.Equal(t, []any{}, user["wishlist"])
	assert.NotContains(t, rec.Body.String(), "$2a$")

	stale := app.cookie
	rec = app.do(stdhttp.MethodPost, "/logout", nil)
	assert.JSONEq(t, `{"success":true,"message":"Logged out"}`, rec.Body.String())
	assert.Nil(t, app.cookie)

	rec = app.do(stdhttp.MethodGet, "/user", nil)
	assert.JSONEq(t, `{"loggedIn":false}`, rec.Body.String())

	// The server-side session is gone too, so replaying the old cookie does not log back in.
	app.cookie = stale
	rec = app.do(stdhttp.MethodGet, "/wishlist", nil)
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
}

func TestServer_WishlistFlow(t *testing.T) {
	app := newTestApp(t)

	t.Run("requires login", func(t *testing.T) {
		for _, route := range []struct{ method, path string }{
			{stdhttp.MethodGet, "/wishlist"},
			{stdhttp.MethodPost, "/wishlist/add"},
			{stdhttp.MethodPost, "/wishlist/remove"},
		} {
			rec := app.do(route.method, route.path, url.Values{"productId": {"prod1"}, "name": {"Clothes"}})
			assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code, route.path)
			assert.Equal(t, "Login required", decode(t, rec)["message"])
		}
	})

	app.do(stdhttp.MethodPost, "/submit", registration("Asha", "asha@example.com", "pw", "pw"))
	app.do(stdhttp.MethodPost, "/signin", url.Values{"email": {"asha@example.com"}, "password": {"pw"}})
	require.NotNil(t, app.cookie)

	add := func(productID, name string) map[string]any {
		rec := app.do(stdhttp.MethodPost, "/wishlist/add", url.Values{
			"productId": {productID}, "name": {name}, "image": {"images/x.jpg"}, "price": {"999"},
		})
		require.Equal(t, stdhttp.StatusOK, rec.Code)

		return decode(t, rec)
	}

	assert.Equal(t, "Added to wishlist", add("prod1", "Clothes")["message"])
	assert.Equal(t, "Added to wishlist", add("prod2", "Health Care")["message"])

	dup := add("prod1", "Clothes")
	assert.Equal(t, false, dup["success"])
	assert.Equal(t, "Already in wishlist", dup["message"])

	rec := app.do(stdhttp.MethodPost, "/wishlist/add", url.Values{"productId": {"prod3"}})
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "Product data missing", decode(t, rec)["message"])

	rec = app.do(stdhttp.MethodPost, "/wishlist/remove", url.Values{"productId": {"prod1"}})
	assert.JSONEq(t, `{"success":true,"message":"Removed from wishlist"}`, rec.Body.String())

	rec = app.do(stdhttp.MethodPost, "/wishlist/remove", url.Values{"productId": {"prod404"}})
	assert.Equal(t, stdhttp.StatusOK, rec.Code)

	rec = app.do(stdhttp.MethodGet, "/wishlist", nil)
	assert.JSONEq(t, `{"success":true,"wishlist":[{"productId":"prod2","name":"Health Care","image":"images/x.jpg","price":999}]}`, rec.Body.String())
}

func TestServer_CatalogHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(stdhttp.MethodGet, "/products", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["products"], 9)

	rec = app.do(stdhttp.MethodGet, "/products/prod4", nil)
	assert.Equal(t, "Electronics", decode(t, rec)["product"].(map[string]any)["name"])

	rec = app.do(stdhttp.MethodGet, "/products/prod10", nil)
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)

	app.do(stdhttp.MethodPost, "/submit", registration("Asha", "asha@example.com", "pw", "pw"))
	rec = app.do(stdhttp.MethodGet, "/health", nil)
	assert.JSONEq(t, `{"connected":true,"userCount":1}`, rec.Body.String())

	rec = app.do(stdhttp.MethodGet, "/does-not-exist", nil)
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])

	rec = app.do(stdhttp.MethodGet, "/metrics", nil)
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ashcosmetic_registrations_total{outcome="success"} 1`)
	assert.Contains(t, rec.Body.String(), `ashcosmetic_http_requests_total{method="GET",route="/products/:id",status_code="404"} 1`)
}

func TestServer_CORSAllowsCredentialsForListedOrigin(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(stdhttp.MethodOptions, "/signin", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:8000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, stdhttp.MethodPost)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:8000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestServer_CredentialEndpointsShareRateLimit(t *testing.T) {
	app := newTestApp(t, func(cfg *config.Config) {
		cfg.RateLimit = &config.RateLimitConfig{Enabled: true, Rate: 1, Burst: 2, ExpiresIn: time.Minute}
	})

	rec := app.do(stdhttp.MethodPost, "/submit", registration("Asha", "asha@example.com", "pw", "pw"))
	assert.Equal(t, stdhttp.StatusOK, rec.Code)

	rec = app.do(stdhttp.MethodPost, "/signin", url.Values{"email": {"asha@example.com"}, "password": {"wrong"}})
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)

	rec = app.do(stdhttp.MethodPost, "/signin", url.Values{"email": {"asha@example.com"}, "password": {"pw"}})
	assert.Equal(t, stdhttp.StatusTooManyRequests, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Too many requests, please try again later", body["message"])
	assert.Equal(t, "TOO_MANY_REQUESTS", body["error"].(map[string]any)["code"])
	assert.Nil(t, app.cookie, "a denied login sets no session")

	// Routes outside the credential endpoints are not limited.
	assert.Equal(t, stdhttp.StatusOK, app.do(stdhttp.MethodGet, "/products", nil).Code)
}
