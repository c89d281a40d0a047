// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestStaticCache(t *testing.T) {
	tests := []struct {
		name   string
		maxAge time.Duration
		want   string
	}{
		{name: "one hour", maxAge: time.Hour, want: "public, max-age=3600"},
		{name: "one week", maxAge: 7 * 24 * time.Hour, want: "public, max-age=604800"},
		{name: "sub-second rounds down", maxAge: 1500 * time.Millisecond, want: "public, max-age=1"},
		{name: "zero", maxAge: 0, want: "no-cache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := StaticCache(tt.maxAge)(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/static/dist/app.css", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Cache-Control"); got != tt.want {
				t.Errorf("Cache-Control = %q, want %q", got, tt.want)
			}
		})
	}
}
