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

// VisitorFilter narrows a visitor listing.
type VisitorFilter struct {
	Status schema.VisitorStatus
	Date   string
}

// ListVisitors returns visitor records.
func (client *Client) ListVisitors(ctx context.Context, filter VisitorFilter) ([]schema.Visitor, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}
	var result []schema.Visitor
	if err := client.do(ctx, http.MethodGet, "/visitors/", query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetVisitor fetches one visitor record.
func (client *Client) GetVisitor(ctx context.Context, id int) (*schema.Visitor, error) {
	var result schema.Visitor
	if err := client.do(ctx, http.MethodGet, fmt.Sprintf("/visitors/%d", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterVisitor creates a walk-in visitor record at the gate.
func (client *Client) RegisterVisitor(ctx context.Context, create schema.VisitorCreate) (*schema.Visitor, error) {
	var result schema.Visitor
	if err := client.do(ctx, http.MethodPost, "/visitors/", nil, create, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PreRegisterVisitor registers an expected visitor ahead of arrival.
func (client *Client) PreRegisterVisitor(ctx context.Context, create schema.VisitorCreate) (*schema.Visitor, error) {
	var result schema.Visitor
	if err := client.do(ctx, http.MethodPost, "/visitors/pre-register", nil, create, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ApproveVisitor approves a pending visitor.
func (client *Client) ApproveVisitor(ctx context.Context, id int, notes string) (*schema.Visitor, error) {
	var result schema.Visitor
	body := schema.VisitorDecision{Notes: notes}
	if err := client.do(ctx, http.MethodPost, fmt.Sprintf("/visitors/%d/approve", id), nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DenyVisitor denies a pending visitor.
func (client *Client) DenyVisitor(ctx context.Context, id int, notes string) (*schema.Visitor, error) {
	var result schema.Visitor
	body := schema.VisitorDecision{Notes: notes}
	if err := client.do(ctx, http.MethodPost, fmt.Sprintf("/visitors/%d/deny", id), nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckInVisitor records arrival at the gate.
func (client *Client) CheckInVisitor(ctx context.Context, id int) (*schema.Visitor, error) {
	var result schema.Visitor
	if err := client.do(ctx, http.MethodPost, fmt.Sprintf("/visitors/%d/check-in", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckOutVisitor records departure.
func (client *Client) CheckOutVisitor(ctx context.Context, id int) (*schema.Visitor, error) {
	var result schema.Visitor
	if err := client.do(ctx, http.MethodPost, fmt.Sprintf("/visitors/%d/check-out", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
