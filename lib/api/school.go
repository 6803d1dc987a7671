// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"

	"github.com/rollcall-hq/rollcall/lib/schema"
)

// CurrentSchool returns the school bound to the active tenant.
func (client *Client) CurrentSchool(ctx context.Context) (*schema.School, error) {
	var result schema.School
	if err := client.do(ctx, http.MethodGet, "/school/", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateSchool applies a partial update to the school profile.
func (client *Client) UpdateSchool(ctx context.Context, update schema.SchoolUpdate) (*schema.School, error) {
	var result schema.School
	if err := client.do(ctx, http.MethodPut, "/school/", nil, update, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SchoolStats returns headline counts for the school dashboard.
func (client *Client) SchoolStats(ctx context.Context) (*schema.SchoolStats, error) {
	var result schema.SchoolStats
	if err := client.do(ctx, http.MethodGet, "/school/stats", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
