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

// StudentFilter narrows a student listing. Zero values mean "no
// filter".
type StudentFilter struct {
	Search    string
	ClassName string
	Section   string
}

// ListStudents returns the school's students.
func (client *Client) ListStudents(ctx context.Context, filter StudentFilter) ([]schema.Student, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.ClassName != "" {
		query.Set("class_name", filter.ClassName)
	}
	if filter.Section != "" {
		query.Set("section", filter.Section)
	}
	var result []schema.Student
	if err := client.do(ctx, http.MethodGet, "/students/", query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetStudent fetches one student by database ID.
func (client *Client) GetStudent(ctx context.Context, id int) (*schema.Student, error) {
	var result schema.Student
	if err := client.do(ctx, http.MethodGet, fmt.Sprintf("/students/%d", id), nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateStudent enrolls a student.
func (client *Client) CreateStudent(ctx context.Context, create schema.StudentCreate) (*schema.Student, error) {
	var result schema.Student
	if err := client.do(ctx, http.MethodPost, "/students/", nil, create, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateStudent applies a partial update.
func (client *Client) UpdateStudent(ctx context.Context, id int, update schema.StudentUpdate) (*schema.Student, error) {
	var result schema.Student
	if err := client.do(ctx, http.MethodPut, fmt.Sprintf("/students/%d", id), nil, update, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteStudent removes a student record.
func (client *Client) DeleteStudent(ctx context.Context, id int) error {
	return client.do(ctx, http.MethodDelete, fmt.Sprintf("/students/%d", id), nil, nil, nil)
}
