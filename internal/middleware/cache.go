// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// StaticCache adds Cache-Control headers for static files. A zero maxAge
// asks browsers to revalidate every time.
func StaticCache(maxAge time.Duration) func(http.Handler) http.Handler {
	value := "no-cache"
	if maxAge > 0 {
		value = "public, max-age=" + strconv.Itoa(int(maxAge/time.Second))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", value)
			next.ServeHTTP(w, r)
		})
	}
}
