package httpmiddleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(h http.Handler, remoteAddr string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRateLimit_OverLimit(t *testing.T) {
	h := RateLimit(RateLimitConfig{Max: 2, Window: time.Hour})(okHandler())

	for i := range 2 {
		w := serve(h, "10.0.0.1:9999", nil)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}

	w := serve(h, "10.0.0.1:1111", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusTooManyRequests, body.Code)
	assert.Equal(t, "rate limit exceeded", body.Message)
}

func TestRateLimit_Keys(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RateLimitConfig
		first   map[string]string
		firstIP string
		second  map[string]string
		secIP   string
		limited bool
	}{
		{
			name:    "different remote addresses",
			firstIP: "10.0.0.1:1",
			secIP:   "10.0.0.2:1",
		},
		{
			name:    "same forwarded client behind different proxies",
			first:   map[string]string{"X-Forwarded-For": "203.0.113.50, 70.41.3.18"},
			firstIP: "192.168.1.1:1",
			second:  map[string]string{"X-Forwarded-For": "203.0.113.50"},
			secIP:   "192.168.1.2:1",
			limited: true,
		},
		{
			name:    "real ip header",
			first:   map[string]string{"X-Real-IP": "198.51.100.7"},
			firstIP: "192.168.1.1:1",
			second:  map[string]string{"X-Real-IP": "198.51.100.7"},
			secIP:   "192.168.1.9:1",
			limited: true,
		},
		{
			name: "custom key",
			cfg: RateLimitConfig{KeyFunc: func(r *http.Request) string {
				return r.Header.Get("Authorization")
			}},
			first:   map[string]string{"Authorization": "Bearer a"},
			firstIP: "10.0.0.1:1",
			second:  map[string]string{"Authorization": "Bearer b"},
			secIP:   "10.0.0.1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Max, cfg.Window = 1, time.Hour
			h := RateLimit(cfg)(okHandler())

			require.Equal(t, http.StatusOK, serve(h, tt.firstIP, tt.first).Code)
			want := http.StatusOK
			if tt.limited {
				want = http.StatusTooManyRequests
			}
			assert.Equal(t, want, serve(h, tt.secIP, tt.second).Code)
		})
	}
}

func TestWindow_Slides(t *testing.T) {
	size := time.Minute
	start := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	w := &window{start: start}

	for range 4 {
		_, _, ok := w.take(start.Add(10*time.Second), size, 4)
		require.True(t, ok)
	}
	_, _, ok := w.take(start.Add(50*time.Second), size, 4)
	assert.False(t, ok, "bucket is full")

	// Half way into the next bucket half of the previous count still applies.
	remaining, reset, ok := w.take(start.Add(90*time.Second), size, 4)
	require.True(t, ok)
	assert.Equal(t, 1, remaining)
	assert.Equal(t, start.Add(2*size), reset)

	// Two full windows later the client starts fresh.
	remaining, _, ok = w.take(start.Add(5*size), size, 4)
	require.True(t, ok)
	assert.Equal(t, 3, remaining)
}

func TestLimiter_Evict(t *testing.T) {
	l := newLimiter(RateLimitConfig{Max: 1, Window: time.Minute})
	now := time.Now()
	l.take("a", now)
	l.evict(now.Add(time.Minute))
	assert.Len(t, l.windows, 1)
	l.evict(now.Add(3 * time.Minute))
	assert.Empty(t, l.windows)
}
