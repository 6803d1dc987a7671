// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rollcall-hq/rollcall/lib/schema"
)

// ListGatePasses returns gate passes, optionally filtered by status.
func (client *Client) ListGatePasses(ctx context.Context, status schema.GatePassStatus) ([]schema.GatePass, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	var result []schema.GatePass
	if err := client.do(ctx, http.MethodGet, "/gate-pass/", query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetGatePass fetches one gate pass.
func (client *Client) GetGatePass(ctx context.Context, id int) (*schema.GatePass, error) {
	var result schema.GatePass
	if err := client.do(ctx, http.MethodGet, fmt.Sprintf("/gate-pass/%d", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateGatePass requests a pass for a student.
func (client *Client) CreateGatePass(ctx context.Context, create schema.GatePassCreate) (*schema.GatePass, error) {
	var result schema.GatePass
	if err := client.do(ctx, http.MethodPost, "/gate-pass/", nil, create, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ApproveGatePass records an approval. Whether the pass becomes
// approved outright or waits on a second approval is workflow the
// backend owns.
func (client *Client) ApproveGatePass(ctx context.Context, id int, notes string) (*schema.GatePass, error) {
	var result schema.GatePass
	body := schema.GatePassApproval{Notes: notes}
	if err := client.do(ctx, http.MethodPut, fmt.Sprintf("/gate-pass/%d/approve", id), nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DenyGatePass records a denial.
func (client *Client) DenyGatePass(ctx context.Context, id int, notes string) (*schema.GatePass, error) {
	var result schema.GatePass
	body := schema.GatePassApproval{Notes: notes}
	if err := client.do(ctx, http.MethodPut, fmt.Sprintf("/gate-pass/%d/deny", id), nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteGatePass cancels and removes a pass.
func (client *Client) DeleteGatePass(ctx context.Context, id int) error {
	return client.do(ctx, http.MethodDelete, fmt.Sprintf("/gate-pass/%d", id), nil, nil, nil)
}
