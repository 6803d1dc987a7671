// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rollcall-hq/rollcall/lib/schema"
)

// SecurityDashboard returns the gate-duty summary: expected student
// movement, pending passes, and visitors on site.
func (client *Client) SecurityDashboard(ctx context.Context) (*schema.SecurityDashboard, error) {
	var result schema.SecurityDashboard
	if err := client.do(ctx, http.MethodGet, "/security/dashboard", nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchPeople looks up students and staff by name or identifier for
// gate verification.
func (client *Client) SearchPeople(ctx context.Context, term string) ([]schema.PersonMatch, error) {
	query := url.Values{}
	query.Set("q", term)
	var result []schema.PersonMatch
	if err := client.do(ctx, http.MethodGet, "/security/search", query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// VerifyRFID resolves an RFID card scan to a person.
func (client *Client) VerifyRFID(ctx context.Context, cardID string) (*schema.PersonMatch, error) {
	query := url.Values{}
	query.Set("card_id", cardID)
	var result schema.PersonMatch
	if err := client.do(ctx, http.MethodGet, "/security/verify-rfid", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MarkGate records an entry or exit at the gate.
func (client *Client) MarkGate(ctx context.Context, mark schema.GateMark) error {
	return client.do(ctx, http.MethodPost, "/security/attendance/mark", nil, mark, nil)
}

// RecentGateActivity returns the latest gate events, newest first.
func (client *Client) RecentGateActivity(ctx context.Context, limit int) ([]schema.RecentActivity, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var result []schema.RecentActivity
	if err := client.do(ctx, http.MethodGet, "/security/recent", query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
