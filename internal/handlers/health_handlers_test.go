package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func performHealth(t *testing.T, handler echo.HandlerFunc) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		dbErr      error
		withCache  bool
		cacheErr   error
		wantCode   int
		wantStatus string
		wantCache  string
	}{
		{name: "all healthy", withCache: true, wantCode: http.StatusOK, wantStatus: "healthy", wantCache: "healthy"},
		{name: "cache disabled", wantCode: http.StatusOK, wantStatus: "healthy", wantCache: "disabled"},
		{name: "cache down", withCache: true, cacheErr: errors.New("dial tcp"), wantCode: http.StatusOK, wantStatus: "degraded", wantCache: "unhealthy"},
		{name: "database down", dbErr: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable, wantStatus: "unhealthy", wantCache: "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockPinger)
			db.On("Ping", mock.Anything).Return(tt.dbErr)

			var cache Pinger
			if tt.withCache {
				cacheMock := new(MockPinger)
				cacheMock.On("Ping", mock.Anything).Return(tt.cacheErr)
				cache = cacheMock
			}

			h := NewHealthHandlers(db, cache, "1.0.0")
			rec, body := performHealth(t, h.HealthCheck)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantStatus, body["status"])
			assert.Equal(t, "1.0.0", body["version"])
			services := body["services"].(map[string]interface{})
			assert.Equal(t, tt.wantCache, services["cache"])
		})
	}
}

func TestReadinessCheck(t *testing.T) {
	db := new(MockPinger)
	db.On("Ping", mock.Anything).Return(nil).Once()
	db.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()

	h := NewHealthHandlers(db, nil, "1.0.0")

	rec, body := performHealth(t, h.ReadinessCheck)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", body["status"])

	rec, body = performHealth(t, h.ReadinessCheck)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "not_ready", body["status"])

	db.AssertExpectations(t)
}
