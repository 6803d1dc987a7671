// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package claims

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func TestDecode(t *testing.T) {
	expires := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	signed := mintToken(t, Session{
		Email:    "teacher@greenfield.example",
		Role:     "TEACHER",
		SchoolID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})

	session, err := Decode(signed)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if session.Role != "TEACHER" {
		t.Errorf("Role = %q", session.Role)
	}
	if session.SchoolID != 7 {
		t.Errorf("SchoolID = %d", session.SchoolID)
	}
	if session.Subject != "42" {
		t.Errorf("Subject = %q", session.Subject)
	}
	if !session.ExpiresAt.Time.Equal(expires) {
		t.Errorf("ExpiresAt = %v, want %v", session.ExpiresAt.Time, expires)
	}
}

func TestDecodeIgnoresSignature(t *testing.T) {
	signed := mintToken(t, Session{Role: "ADMIN"})
	tampered := signed[:len(signed)-4] + "AAAA"

	session, err := Decode(tampered)
	if err != nil {
		t.Fatalf("Decode after signature tamper: %v", err)
	}
	if session.Role != "ADMIN" {
		t.Errorf("Role = %q", session.Role)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestExpiry(t *testing.T) {
	now := time.Now()
	live := &Session{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
	}}
	dead := &Session{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
	}}
	forever := &Session{}

	if live.Expired(now) {
		t.Error("live token reported expired")
	}
	if !dead.Expired(now) {
		t.Error("expired token reported live")
	}
	if forever.Expired(now) {
		t.Error("token without exp reported expired")
	}
	if got := dead.ExpiresIn(now); got != 0 {
		t.Errorf("ExpiresIn for expired token = %v, want 0", got)
	}
	if got := live.ExpiresIn(now); got <= 0 {
		t.Errorf("ExpiresIn for live token = %v", got)
	}
}
