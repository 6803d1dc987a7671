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

// AttendanceFilter narrows an attendance listing.
type AttendanceFilter struct {
	Date      string // ISO date; empty means the backend's default (today)
	ClassName string
	Status    schema.AttendanceStatus
}

// ListAttendance returns attendance records for a date.
func (client *Client) ListAttendance(ctx context.Context, filter AttendanceFilter) ([]schema.Attendance, error) {
	query := url.Values{}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}
	if filter.ClassName != "" {
		query.Set("class_name", filter.ClassName)
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	var result []schema.Attendance
	if err := client.do(ctx, http.MethodGet, "/attendance/", query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkAttendance records a single student-day mark.
func (client *Client) MarkAttendance(ctx context.Context, record schema.AttendanceCreate) (*schema.Attendance, error) {
	var result schema.Attendance
	if err := client.do(ctx, http.MethodPost, "/attendance/", nil, record, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BulkMarkAttendance submits a whole class as a single request so the
// backend can apply the batch atomically. Never fan out per record.
func (client *Client) BulkMarkAttendance(ctx context.Context, records []schema.AttendanceCreate) error {
	return client.do(ctx, http.MethodPost, "/attendance/bulk", nil, schema.BulkAttendance{Records: records}, nil)
}

// AttendanceStats returns the school-wide summary for a date.
func (client *Client) AttendanceStats(ctx context.Context, date string) (*schema.AttendanceStats, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	var result schema.AttendanceStats
	if err := client.do(ctx, http.MethodGet, "/attendance/stats", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AttendanceByClass returns the per-class breakdown for a date.
func (client *Client) AttendanceByClass(ctx context.Context, date string) ([]schema.ClassAttendance, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	var result []schema.ClassAttendance
	if err := client.do(ctx, http.MethodGet, "/attendance/by-class", query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// StudentAttendance returns one student's attendance history.
func (client *Client) StudentAttendance(ctx context.Context, studentID int) ([]schema.Attendance, error) {
	var result []schema.Attendance
	if err := client.do(ctx, http.MethodGet, fmt.Sprintf("/attendance/student/%d", studentID), nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
