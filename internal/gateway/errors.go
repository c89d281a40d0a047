// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package gateway

import (
	"errors"
	"fmt"
)

// ErrGateway matches every error returned by the client.
var ErrGateway = errors.New("gateway error")

// NetworkError is returned when the request could not be completed.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error        { return e.Err }
func (e *NetworkError) Is(target error) bool { return target == ErrGateway }

// SubmissionError is returned when the gateway answers with a non-2xx status.
type SubmissionError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("gateway %s: unexpected status %d", e.Op, e.StatusCode)
}

func (e *SubmissionError) Is(target error) bool { return target == ErrGateway }

// DecodeError is returned when the response body is not the expected JSON.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("gateway %s: decoding response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error        { return e.Err }
func (e *DecodeError) Is(target error) bool { return target == ErrGateway }
