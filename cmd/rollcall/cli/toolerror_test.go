// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rollcall-hq/rollcall/lib/api"
)

func TestToolError_CategoryAndMessage(t *testing.T) {
	err := Validation("student ID is required")
	if err.Category != CategoryValidation {
		t.Errorf("Category = %q, want %q", err.Category, CategoryValidation)
	}
	if err.Error() != "student ID is required" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestToolError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	wrapped := &ToolError{Category: CategoryInternal, Err: fmt.Errorf("saving session: %w", inner)}

	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is should reach the inner error through ToolError")
	}

	var toolError *ToolError
	if !errors.As(error(wrapped), &toolError) {
		t.Error("errors.As should find the ToolError")
	}
}

func TestFromAPI_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorCategory
	}{
		{401, CategoryUnauthenticated},
		{403, CategoryForbidden},
		{404, CategoryNotFound},
		{409, CategoryConflict},
		{422, CategoryValidation},
		{400, CategoryValidation},
		{500, CategoryInternal},
		{503, CategoryInternal},
	}

	for _, test := range tests {
		err := FromAPI(&api.Error{Status: test.status, Detail: "nope"})
		if err.Category != test.want {
			t.Errorf("FromAPI(status %d).Category = %q, want %q", test.status, err.Category, test.want)
		}
	}
}

func TestFromAPI_KeepsServerDetail(t *testing.T) {
	err := FromAPI(&api.Error{Status: 401, Detail: "Invalid credentials"})
	if err.Error() != "Invalid credentials" {
		t.Errorf("Error() = %q, want server detail verbatim", err.Error())
	}
}

func TestFromAPI_NonAPIErrorIsTransient(t *testing.T) {
	err := FromAPI(errors.New("dial tcp: connection refused"))
	if err.Category != CategoryTransient {
		t.Errorf("Category = %q, want %q", err.Category, CategoryTransient)
	}
}
