package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := &RateLimiter{clients: map[string]*clientLimit{}, requests: 2, window: time.Minute}
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("1.2.3.4"))
	assert.True(t, rl.allow("1.2.3.4"))
	assert.False(t, rl.allow("1.2.3.4"))
	assert.True(t, rl.allow("5.6.7.8"))

	now = now.Add(time.Minute + time.Second)
	assert.True(t, rl.allow("1.2.3.4"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := &RateLimiter{clients: map[string]*clientLimit{}, requests: 1, window: time.Minute}
	rl.now = time.Now
	handler := rl.Middleware(okHandler())

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestWriteLimiter_PerUserAndReadsExempt(t *testing.T) {
	wl := NewWriteLimiter(0.001, 1)
	handler := wl.Middleware(okHandler())
	alice := uuid.New()
	bob := uuid.New()

	send := func(method string, user uuid.UUID) int {
		req := httptest.NewRequest(method, "/api/posts", nil)
		req = req.WithContext(SetTestUserID(req.Context(), user))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send(http.MethodPost, alice))
	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost, alice))
	assert.Equal(t, http.StatusOK, send(http.MethodPost, bob))
	assert.Equal(t, http.StatusOK, send(http.MethodGet, alice))
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", getClientIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.7")
	assert.Equal(t, "198.51.100.7", getClientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", getClientIP(req))
}
