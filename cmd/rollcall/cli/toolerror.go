// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rollcall-hq/rollcall/lib/api"
)

// ErrorCategory classifies command errors so scripted callers can make
// programmatic decisions (retry, fix input, escalate) without parsing
// error message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// missing required parameters, wrong argument count, unparseable
	// values. Fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryUnauthenticated indicates no valid session: not logged
	// in, or the token was rejected. Log in and retry.
	CategoryUnauthenticated ErrorCategory = "unauthenticated"

	// CategoryNotFound indicates a referenced resource does not exist.
	// Retrying with the same parameters will not help.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryForbidden indicates the backend refused the operation
	// for this role or school.
	CategoryForbidden ErrorCategory = "forbidden"

	// CategoryConflict indicates the operation conflicts with existing
	// state: duplicate record, concurrent modification.
	CategoryConflict ErrorCategory = "conflict"

	// CategoryTransient indicates a temporary failure: network error,
	// timeout, rate limit. Back off and retry.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, backend 5xx. Report rather than retry.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by commands. It wraps an
// inner error, preserving the chain for debugging while adding the
// category for scripted handling.
type ToolError struct {
	Category ErrorCategory
	Err      error
}

// Error returns the underlying message; the category travels
// separately.
func (e *ToolError) Error() string { return e.Err.Error() }

// Unwrap allows errors.Is and errors.As to walk through the wrapper.
func (e *ToolError) Unwrap() error { return e.Err }

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Unauthenticated creates an unauthenticated error: no usable session.
func Unauthenticated(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryUnauthenticated, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Forbidden creates a forbidden error.
func Forbidden(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryForbidden, Err: fmt.Errorf(format, args...)}
}

// Conflict creates a conflict error.
func Conflict(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// FromAPI wraps a failed API call in the matching category, keeping
// the server's message (or the generic fallback) as the visible text.
func FromAPI(err error) *ToolError {
	message := errors.New(api.Message(err))

	var apiError *api.Error
	if !errors.As(err, &apiError) {
		return &ToolError{Category: CategoryTransient, Err: message}
	}
	switch {
	case apiError.Status == http.StatusUnauthorized:
		return &ToolError{Category: CategoryUnauthenticated, Err: message}
	case apiError.Status == http.StatusForbidden:
		return &ToolError{Category: CategoryForbidden, Err: message}
	case apiError.Status == http.StatusNotFound:
		return &ToolError{Category: CategoryNotFound, Err: message}
	case apiError.Status == http.StatusConflict:
		return &ToolError{Category: CategoryConflict, Err: message}
	case apiError.Status >= 500:
		return &ToolError{Category: CategoryInternal, Err: message}
	default:
		return &ToolError{Category: CategoryValidation, Err: message}
	}
}
