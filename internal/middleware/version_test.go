package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestExtractVersionFromPath(t *testing.T) {
	assert.Equal(t, "v1", extractVersionFromPath("/v1/orders"))
	assert.Equal(t, "v12", extractVersionFromPath("/v12/orders"))
	assert.Equal(t, "v2", extractVersionFromPath("/v2"))
	assert.Equal(t, "", extractVersionFromPath("/health"))
	assert.Equal(t, "", extractVersionFromPath("/vault/x"))
	assert.Equal(t, "", extractVersionFromPath("/v0/x"))
}

func TestVersionRoute_SetsHeaders(t *testing.T) {
	e := echo.New()
	vm := NewVersionMiddleware()
	g := vm.VersionRoute(e, "v1")
	g.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
	assert.Equal(t, "Current stable API version", rec.Header().Get("X-API-Message"))
	assert.Empty(t, rec.Header().Get("X-API-Deprecated"))
}

func TestVersionHeader_Deprecated(t *testing.T) {
	e := echo.New()
	vm := NewVersionMiddleware()
	sunset := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	vm.AddVersion("v0", "deprecated", "Use v1", &sunset)
	g := vm.VersionRoute(e, "v0")
	g.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v0/ping", nil))

	assert.Equal(t, "true", rec.Header().Get("X-API-Deprecated"))
	assert.Contains(t, rec.Header().Get("Warning"), "2025-01-01")
}

func TestAPIVersionResolver(t *testing.T) {
	e := echo.New()
	vm := NewVersionMiddleware()
	e.Use(vm.APIVersionResolver())
	e.GET("/*", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("api_version").(string))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/orders", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "v1", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v3/orders", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unsupported API version")
}
