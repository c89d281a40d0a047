// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrUnknownField is returned when a draft has no field with the given key.
	ErrUnknownField = errors.New("unknown draft field")
	// ErrSubmitInFlight is returned when a form is submitted while a previous submission is running.
	ErrSubmitInFlight = errors.New("submission already in progress")
	// ErrInvalidStatus is returned for a status the content type does not accept
	// or one that would move the draft backward.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrUnsupportedImage is returned when a chosen file cannot be decoded as an image.
	ErrUnsupportedImage = errors.New("unsupported image")
)

// ValidationError reports required fields that are empty.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return "validation failed: " + e.Reason
	}
	return "validation failed: missing " + strings.Join(e.Fields, ", ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	return slices.Contains(e.Fields, field)
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
