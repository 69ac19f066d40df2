package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/a2sh3r/mindflex/internal/auth"
	"github.com/a2sh3r/mindflex/internal/models"
)

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewUserRateLimiter(rate.Limit(0.001), 2)
	h := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(login, remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		if login != "" {
			req = req.WithContext(WithSession(req.Context(), auth.Session{Login: login, Role: models.RoleTutor}))
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("alice", "10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, do("alice", "10.0.0.2:1000"))
	assert.Equal(t, http.StatusTooManyRequests, do("alice", "10.0.0.3:1000"), "burst is per login")

	assert.Equal(t, http.StatusOK, do("bob", "10.0.0.1:1000"))

	assert.Equal(t, http.StatusOK, do("", "10.0.0.9:1000"))
	assert.Equal(t, http.StatusOK, do("", "10.0.0.9:2000"))
	assert.Equal(t, http.StatusTooManyRequests, do("", "10.0.0.9:3000"), "anonymous callers share a bucket per IP")
}

func TestUserLimiter_RetryAfterAndSweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewUserRateLimiter(rate.Every(10*time.Second), 1)
	limiter.now = func() time.Time { return now }
	limiter.lastSweep = now

	h := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	do := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1").Code)
	w := do("10.0.0.1:1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "10", w.Header().Get("Retry-After"))

	now = now.Add(10 * time.Second)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1").Code, "a rejected request does not consume a token")

	assert.Equal(t, http.StatusOK, do("10.0.0.2:1").Code)
	assert.Equal(t, 2, limiter.size())

	now = now.Add(limiterIdleTTL + time.Second)
	assert.Equal(t, http.StatusOK, do("10.0.0.3:1").Code)
	assert.Equal(t, 1, limiter.size())
}
