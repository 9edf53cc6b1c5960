package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dvxstudio/backend/pkg/middleware"
)

func TestRateLimitBlocksAfterMax(t *testing.T) {
	handler := middleware.RateLimit(3, time.Minute)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	))

	do := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/auth", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do())
	}
	assert.Equal(t, http.StatusTooManyRequests, do())
}

func TestRateLimitIsPerIP(t *testing.T) {
	handler := middleware.RateLimit(1, time.Minute)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	))

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/auth", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("198.51.100.1"))
	assert.Equal(t, http.StatusOK, do("198.51.100.2"))
}
