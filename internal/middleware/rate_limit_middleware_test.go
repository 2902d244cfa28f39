package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propwise/manager-api/internal/utils"
)

type stubLimiter struct {
	err    error
	lastIP string
}

func (s *stubLimiter) CheckRequestRateLimit(_ context.Context, ip string) error {
	s.lastIP = ip
	return s.err
}

func newLimitedRouter(limiter *stubLimiter) *mux.Router {
	router := mux.NewRouter()
	router.Use(RateLimitMiddleware(limiter))
	router.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
	return router
}

func TestRateLimitMiddlewarePassesThrough(t *testing.T) {
	limiter := &stubLimiter{}
	router := newLimitedRouter(limiter)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "10.0.0.1", limiter.lastIP)
}

func TestRateLimitMiddlewareBlocks(t *testing.T) {
	limiter := &stubLimiter{err: utils.ErrRateLimitExceeded}
	router := newLimitedRouter(limiter)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp utils.FailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, "Too many requests.", resp.Message)
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "172.16.0.9:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 172.16.0.9")

	assert.Equal(t, "203.0.113.7", ClientIP(req))
}

func TestClientIPSingleForwardedHop(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", " 203.0.113.7 ")

	assert.Equal(t, "203.0.113.7", ClientIP(req))
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.2:9999"

	assert.Equal(t, "198.51.100.2", ClientIP(req))
}
