// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/olegiv/merwah-go/internal/notify"
	"github.com/olegiv/merwah-go/internal/render"
)

// notifyAndRedirect queues a notification and redirects to the given URL.
// Uses http.StatusSeeOther (303) for POST redirects.
func notifyAndRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url string, n notify.Notification) {
	renderer.Notify(r, n)
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// notifyError queues an error notification and redirects to the given URL.
func notifyError(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, url, title, message string) {
	notifyAndRedirect(w, r, renderer, url, notify.Notification{
		Title:       title,
		Description: message,
		Variant:     notify.VariantDestructive,
	})
}

// parseFormOrRedirect parses the request form and redirects with an error message on failure.
// Returns true if parsing succeeded, false if it failed (and redirect was performed).
func parseFormOrRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, redirectURL string) bool {
	if err := r.ParseForm(); err != nil {
		notifyError(w, r, renderer, redirectURL, "Error", "Invalid form data")
		return false
	}
	return true
}

// logAndHTTPError logs an error and writes an HTTP error response.
func logAndHTTPError(w http.ResponseWriter, message string, statusCode int, logMsg string, args ...any) {
	slog.Error(logMsg, args...)
	http.Error(w, message, statusCode)
}

// logAndInternalError logs an error and writes a 500 Internal Server Error response.
func logAndInternalError(w http.ResponseWriter, logMsg string, args ...any) {
	logAndHTTPError(w, "Internal Server Error", http.StatusInternalServerError, logMsg, args...)
}

// renderPage renders a template, answering 500 if rendering fails.
func renderPage(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, status int, name string, data render.TemplateData) {
	if err := renderer.RenderStatus(w, r, status, name, data); err != nil {
		logAndInternalError(w, LogRenderFailed, "error", err, "template", name)
	}
}
