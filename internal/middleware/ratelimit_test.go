package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSubmitRateLimiter(t *testing.T) {
	rl := NewSubmitRateLimiter(0.001, 2)
	handler := rl.Middleware()(okHandler())

	post := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/news", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	if got := post("10.0.0.1"); got != http.StatusOK {
		t.Fatalf("first post = %d", got)
	}
	if got := post("10.0.0.1"); got != http.StatusOK {
		t.Fatalf("second post = %d", got)
	}
	if got := post("10.0.0.1"); got != http.StatusTooManyRequests {
		t.Errorf("third post = %d, want %d", got, http.StatusTooManyRequests)
	}
	if got := post("10.0.0.2"); got != http.StatusOK {
		t.Errorf("other client = %d, want %d", got, http.StatusOK)
	}
}

func TestSubmitRateLimiter_IgnoresGet(t *testing.T) {
	rl := NewSubmitRateLimiter(0.001, 1)
	handler := rl.Middleware()(okHandler())

	for i := range 5 {
		req := httptest.NewRequest(http.MethodGet, "/news", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %d = %d", i, w.Code)
		}
	}
	if n := rl.cache.len(); n != 0 {
		t.Errorf("tracked clients = %d, want 0", n)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"remote addr", nil, "192.0.2.1:5555", "192.0.2.1"},
		{"remote addr without port", nil, "192.0.2.1", "192.0.2.1"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.7"}, "192.0.2.1:5555", "198.51.100.7"},
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "192.0.2.1:5555", "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLimiterCache_Bounded(t *testing.T) {
	lc := newLimiterCache[int](1, 1)
	for i := range maxTrackedClients + 5 {
		lc.get(i)
	}
	if n := lc.len(); n > maxTrackedClients {
		t.Errorf("cache size = %d, want <= %d", n, maxTrackedClients)
	}
}
