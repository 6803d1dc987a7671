// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rollcall-hq/rollcall/lib/schema"
	"github.com/rollcall-hq/rollcall/lib/secret"
)

// Login authenticates a platform administrator. As with the tenant
// client, the returned token is not installed automatically.
func (client *AdminClient) Login(ctx context.Context, email string, password *secret.Buffer) (*schema.AdminLoginResponse, error) {
	body := schema.LoginRequest{Email: email, Password: password.String()}
	var result schema.AdminLoginResponse
	if err := client.do(ctx, http.MethodPost, "/auth/login", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me returns the authenticated administrator's profile.
func (client *AdminClient) Me(ctx context.Context) (*schema.PlatformAdmin, error) {
	var result schema.PlatformAdmin
	if err := client.do(ctx, http.MethodGet, "/auth/me", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SystemStats returns platform-wide counts across all tenants.
func (client *AdminClient) SystemStats(ctx context.Context) (*schema.SystemStats, error) {
	var result schema.SystemStats
	if err := client.do(ctx, http.MethodGet, "/stats", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListSchools returns every tenant school on the platform.
func (client *AdminClient) ListSchools(ctx context.Context) ([]schema.SchoolSummary, error) {
	var result []schema.SchoolSummary
	if err := client.do(ctx, http.MethodGet, "/schools", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SuspendSchool disables a tenant. Its users can no longer log in
// until the school is reactivated.
func (client *AdminClient) SuspendSchool(ctx context.Context, id int) (*schema.SchoolSummary, error) {
	var result schema.SchoolSummary
	if err := client.do(ctx, http.MethodPut, fmt.Sprintf("/schools/%d/suspend", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ActivateSchool re-enables a suspended tenant.
func (client *AdminClient) ActivateSchool(ctx context.Context, id int) (*schema.SchoolSummary, error) {
	var result schema.SchoolSummary
	if err := client.do(ctx, http.MethodPut, fmt.Sprintf("/schools/%d/activate", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
