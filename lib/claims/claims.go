// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package claims decodes the payload of a backend-issued access token
// without verifying its signature. The client holds no signing key and
// never needs one: the token is opaque proof presented back to the
// backend, which does the real verification. Decoding here only feeds
// display (whoami, session expiry hints) and the bootstrap's optimistic
// role guess.
package claims

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the claim set the backend embeds in tenant and admin
// access tokens.
type Session struct {
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	SchoolID int    `json:"school_id,omitempty"`
	TenantID string `json:"tenant_id,omitempty"`
	jwt.RegisteredClaims
}

// Decode parses the token payload without signature verification.
func Decode(token string) (*Session, error) {
	var session Session
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &session); err != nil {
		return nil, fmt.Errorf("decoding access token: %w", err)
	}
	return &session, nil
}

// Expired reports whether the token's exp claim has passed. A token
// with no exp claim is treated as unexpired; the backend is the
// authority either way.
func (s *Session) Expired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}
	return now.After(s.ExpiresAt.Time)
}

// ExpiresIn returns the remaining lifetime, zero when already expired
// or when the token carries no exp claim.
func (s *Session) ExpiresIn(now time.Time) time.Duration {
	if s.ExpiresAt == nil {
		return 0
	}
	remaining := s.ExpiresAt.Time.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
