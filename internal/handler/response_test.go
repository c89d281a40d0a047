// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olegiv/merwah-go/internal/content"
	"github.com/olegiv/merwah-go/internal/gateway"
	"github.com/olegiv/merwah-go/internal/notify"
)

func TestLogAndHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		statusCode int
		logMsg     string
	}{
		{"bad request", "Bad Request", http.StatusBadRequest, "validation failed"},
		{"not found", "Not Found", http.StatusNotFound, "resource missing"},
		{"internal error", "Internal Server Error", http.StatusInternalServerError, "database error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			logAndHTTPError(w, tt.message, tt.statusCode, tt.logMsg)

			if w.Code != tt.statusCode {
				t.Errorf("status code = %d, want %d", w.Code, tt.statusCode)
			}

			body := w.Body.String()
			if body == "" {
				t.Error("body should not be empty")
			}
		})
	}
}

func TestLogAndInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	logAndInternalError(w, "database connection failed", "error", errors.New("connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestSubmitFailure(t *testing.T) {
	gatewayErr := fmt.Errorf("creating falcon: %w", &gateway.SubmissionError{StatusCode: http.StatusInternalServerError})

	tests := []struct {
		name        string
		err         error
		notified    *notify.Notification
		wantStatus  int
		wantInvalid string
		wantTitle   string
	}{
		{
			name:        "validation",
			err:         &content.ValidationError{Fields: []string{"title", "content"}},
			notified:    &notify.Notification{Title: "Validation Error"},
			wantStatus:  http.StatusUnprocessableEntity,
			wantInvalid: "content",
			wantTitle:   "Validation Error",
		},
		{
			name:        "status",
			err:         fmt.Errorf("%w: x", content.ErrInvalidStatus),
			wantStatus:  http.StatusUnprocessableEntity,
			wantInvalid: FieldStatus,
			wantTitle:   "Validation Error",
		},
		{
			name:       "in flight",
			err:        content.ErrSubmitInFlight,
			wantStatus: http.StatusConflict,
			wantTitle:  "Please wait",
		},
		{
			name:       "gateway",
			err:        gatewayErr,
			notified:   &notify.Notification{Title: "Error", Description: "Failed to add falcon"},
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Error",
		},
		{
			name:       "unknown error without notification",
			err:        errors.New("boom"),
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out content.Capture
			if tt.notified != nil {
				out.Notify(*tt.notified)
			}

			status, invalid, n := submitFailure(&out, tt.err)

			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if tt.wantInvalid != "" && !invalid[tt.wantInvalid] {
				t.Errorf("invalid = %v, want %q marked", invalid, tt.wantInvalid)
			}
			if n == nil || n.Title != tt.wantTitle {
				t.Errorf("notification = %+v, want title %q", n, tt.wantTitle)
			}
		})
	}
}

func TestFormPage_HasError(t *testing.T) {
	p := FormPage[content.NewsDraft]{Invalid: map[string]bool{"title": true}}
	if !p.HasError("title") {
		t.Error("title should be marked")
	}
	if p.HasError("excerpt") {
		t.Error("excerpt should not be marked")
	}
	if (FormPage[content.NewsDraft]{}).HasError("title") {
		t.Error("nil map should report no errors")
	}
}
