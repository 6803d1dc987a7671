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

// UserFilter narrows a user listing. Zero values mean "no filter".
type UserFilter struct {
	Role   schema.Role
	Search string
}

// ListUsers returns the school's users.
func (client *Client) ListUsers(ctx context.Context, filter UserFilter) ([]schema.User, error) {
	query := url.Values{}
	if filter.Role != "" {
		query.Set("role", string(filter.Role))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	var result []schema.User
	if err := client.do(ctx, http.MethodGet, "/users/", query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListTeachers returns users with the teacher role.
func (client *Client) ListTeachers(ctx context.Context) ([]schema.User, error) {
	var result []schema.User
	if err := client.do(ctx, http.MethodGet, "/users/teachers/", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListParents returns users with the parent role.
func (client *Client) ListParents(ctx context.Context) ([]schema.User, error) {
	var result []schema.User
	if err := client.do(ctx, http.MethodGet, "/users/parents/", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetUser fetches one user by database ID.
func (client *Client) GetUser(ctx context.Context, id int) (*schema.User, error) {
	var result schema.User
	if err := client.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateUser creates a user account.
func (client *Client) CreateUser(ctx context.Context, create schema.UserCreate) (*schema.User, error) {
	var result schema.User
	if err := client.do(ctx, http.MethodPost, "/users/", nil, create, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateUser applies a partial update.
func (client *Client) UpdateUser(ctx context.Context, id int, update schema.UserUpdate) (*schema.User, error) {
	var result schema.User
	if err := client.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, update, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteUser removes a user account.
func (client *Client) DeleteUser(ctx context.Context, id int) error {
	return client.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}
