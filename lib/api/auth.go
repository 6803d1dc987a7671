// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"

	"github.com/rollcall-hq/rollcall/lib/schema"
	"github.com/rollcall-hq/rollcall/lib/secret"
)

// Login authenticates a tenant user. The password travels from its
// protected buffer straight into the request body; the returned token
// is NOT installed on the client; callers decide whether to adopt it.
func (client *Client) Login(ctx context.Context, email string, password *secret.Buffer) (*schema.LoginResponse, error) {
	body := schema.LoginRequest{Email: email, Password: password.String()}
	var result schema.LoginResponse
	if err := client.do(ctx, http.MethodPost, "/auth/login", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me returns the authenticated user's profile. Used by the session
// bootstrap to confirm or invalidate an optimistically restored
// session.
func (client *Client) Me(ctx context.Context) (*schema.User, error) {
	var result schema.User
	if err := client.do(ctx, http.MethodGet, "/auth/me", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ChangePassword changes the authenticated user's password.
func (client *Client) ChangePassword(ctx context.Context, current, next *secret.Buffer) error {
	body := schema.PasswordChange{
		CurrentPassword: current.String(),
		NewPassword:     next.String(),
	}
	return client.do(ctx, http.MethodPost, "/auth/change-password", nil, body, nil)
}

// NotifyLogout tells the backend the session is ending. Best-effort:
// local credential cleanup proceeds regardless, so the caller is free
// to ignore the error.
func (client *Client) NotifyLogout(ctx context.Context) error {
	return client.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}
