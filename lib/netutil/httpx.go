// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O helpers shared by the Rollcall API
// clients.
//
// All response body reads are bounded at MaxResponseSize so a
// misbehaving server cannot exhaust memory. The helpers are meant for
// JSON API responses, not streaming downloads.
package netutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxResponseSize is the bound on JSON API response body reads: 32 MB.
// Legitimate responses from the attendance API are orders of magnitude
// smaller; the limit only exists to cap pathological responses.
const MaxResponseSize int64 = 32 << 20

// ReadResponse reads a JSON API response body up to MaxResponseSize
// bytes. Use instead of io.ReadAll on HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// DecodeResponse reads a JSON API response body (bounded) and decodes
// it into v.
func DecodeResponse(body io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	return json.Unmarshal(data, v)
}

// ErrorDetail extracts the server's error message from an error
// response body. The attendance API reports errors as
// {"detail": "..."}; when the body is not that shape (HTML error
// pages, empty bodies), the raw text is returned so it can still
// appear in diagnostics. Read errors yield an empty string; a missing
// body is not worth masking the HTTP status that caused the call.
func ErrorDetail(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	var wire struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &wire); err == nil && wire.Detail != "" {
		return wire.Detail
	}
	return string(data)
}
