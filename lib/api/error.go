// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// GenericFailure is shown when a request fails without a usable server
// message: transport errors, timeouts, and empty error bodies.
const GenericFailure = "request failed, check your connection and try again"

// Error is an HTTP error response from the backend. Detail carries the
// server's message verbatim; validation failures (4xx) and unexpected
// server failures (5xx) are displayed identically.
type Error struct {
	Status    int
	Detail    string
	RequestID string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return e.Detail
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	var apiError *Error
	return errors.As(err, &apiError) && apiError.Status == http.StatusUnauthorized
}

// Message extracts the text a view should display for a failed
// operation: the server's detail when present, else the generic
// fallback. This is the single place the error taxonomy collapses to a
// user-facing string.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiError *Error
	if errors.As(err, &apiError) && apiError.Detail != "" {
		return apiError.Detail
	}
	return GenericFailure
}
