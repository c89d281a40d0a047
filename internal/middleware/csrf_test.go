package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestDefaultCSRFConfig(t *testing.T) {
	key := []byte("12345678901234567890123456789012")

	prod := DefaultCSRFConfig(key, false, 8080)
	if len(prod.TrustedOrigins) != 0 {
		t.Errorf("production TrustedOrigins = %v, want none", prod.TrustedOrigins)
	}

	dev := DefaultCSRFConfig(key, true, 9090)
	want := map[string]bool{"localhost:9090": true, "127.0.0.1:9090": true}
	if len(dev.TrustedOrigins) != len(want) {
		t.Fatalf("dev TrustedOrigins = %v", dev.TrustedOrigins)
	}
	for _, o := range dev.TrustedOrigins {
		if !want[o] {
			t.Errorf("unexpected trusted origin %q", o)
		}
	}
}

func TestCSRF_Requests(t *testing.T) {
	handler := CSRF(DefaultCSRFConfig([]byte("12345678901234567890123456789012"), false, 8080))(okHandler())

	tests := []struct {
		name    string
		method  string
		headers map[string]string
		want    int
	}{
		{"safe method passes", http.MethodGet, map[string]string{"Sec-Fetch-Site": "cross-site"}, http.StatusOK},
		{"same-origin post passes", http.MethodPost, map[string]string{"Sec-Fetch-Site": "same-origin"}, http.StatusOK},
		{"non-browser post passes", http.MethodPost, nil, http.StatusOK},
		{"cross-site post rejected", http.MethodPost, map[string]string{"Sec-Fetch-Site": "cross-site"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/news", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestCSRF_CustomErrorHandler(t *testing.T) {
	cfg := DefaultCSRFConfig([]byte("12345678901234567890123456789012"), false, 8080)
	cfg.ErrorHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodPost, "/falcons", nil)
	req.Header.Set("Sec-Fetch-Site", "cross-site")
	w := httptest.NewRecorder()

	CSRF(cfg)(okHandler()).ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
}
