// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"strings"
	"testing"
)

func TestDecodeResponse(t *testing.T) {
	var result struct {
		Name string `json:"name"`
	}
	if err := DecodeResponse(strings.NewReader(`{"name":"demo"}`), &result); err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if result.Name != "demo" {
		t.Errorf("Name = %q, want %q", result.Name, "demo")
	}
}

func TestDecodeResponseInvalidJSON(t *testing.T) {
	var result map[string]any
	if err := DecodeResponse(strings.NewReader("<html>not json"), &result); err == nil {
		t.Fatal("expected error for non-JSON body")
	}
}

func TestErrorDetailStructured(t *testing.T) {
	detail := ErrorDetail(strings.NewReader(`{"detail":"Invalid credentials"}`))
	if detail != "Invalid credentials" {
		t.Errorf("ErrorDetail = %q, want %q", detail, "Invalid credentials")
	}
}

func TestErrorDetailUnstructured(t *testing.T) {
	detail := ErrorDetail(strings.NewReader("502 Bad Gateway"))
	if detail != "502 Bad Gateway" {
		t.Errorf("ErrorDetail = %q, want raw body", detail)
	}
}

func TestErrorDetailEmptyDetailField(t *testing.T) {
	// A JSON body with an empty detail falls through to the raw text so
	// diagnostics are never silently blank when the body has content.
	detail := ErrorDetail(strings.NewReader(`{"detail":""}`))
	if detail != `{"detail":""}` {
		t.Errorf("ErrorDetail = %q", detail)
	}
}
