package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logisocial/pkg/config"
)

func newEcho(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.Use(mw...)
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET(HealthPath, ok)
	e.GET("/api/users", ok)
	return e
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireStore(t *testing.T) {
	var down error
	e := newEcho(RequireStore(StoreCheckerFunc(func(ctx context.Context) error { return down })))

	assert.Equal(t, http.StatusOK, serve(e, "/api/users").Code)

	down = errors.New("no reachable servers")
	rec := serve(e, "/api/users")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"Database not connected","code":"SERVICE_UNAVAILABLE"}`, rec.Body.String())

	assert.Equal(t, http.StatusOK, serve(e, HealthPath).Code)
}

func TestRequireStoreNilChecker(t *testing.T) {
	e := newEcho(RequireStore(nil))
	assert.Equal(t, http.StatusServiceUnavailable, serve(e, "/api/users").Code)
}

func TestRateLimit(t *testing.T) {
	e := newEcho(RateLimit(config.RateLimitConfig{RPS: 1, Burst: 2}))

	assert.Equal(t, http.StatusOK, serve(e, "/api/users").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/api/users").Code)

	rec := serve(e, "/api/users")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	var body RateLimitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Rate limit exceeded", body.Error)
	assert.Equal(t, 1, body.RetryAfter)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, serve(e, HealthPath).Code)
}

func TestRateLimitDisabled(t *testing.T) {
	e := newEcho(RateLimit(config.RateLimitConfig{}))
	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, serve(e, "/api/users").Code)
	}
}

func TestRequestID(t *testing.T) {
	e := newEcho(RequestID())

	rec := serve(e, "/api/users")
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}
