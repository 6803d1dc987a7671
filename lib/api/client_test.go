// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rollcall-hq/rollcall/lib/schema"
)

func TestRequestHeaders(t *testing.T) {
	var captured http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL})
	client.SetToken("tok-123")
	client.SetTenant("greenfield")

	if _, err := client.ListUsers(context.Background(), UserFilter{}); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if got := captured.Get("Authorization"); got != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer tok-123")
	}
	if got := captured.Get("X-Tenant-ID"); got != "greenfield" {
		t.Errorf("X-Tenant-ID = %q, want %q", got, "greenfield")
	}
	if captured.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID not set")
	}
	if got := captured.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q", got)
	}
}

func TestNoAuthHeadersBeforeLogin(t *testing.T) {
	var captured http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL})
	if _, err := client.ListUsers(context.Background(), UserFilter{}); err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if _, ok := captured["Authorization"]; ok {
		t.Error("Authorization header sent with no token installed")
	}
	if _, ok := captured["X-Tenant-Id"]; ok {
		t.Error("X-Tenant-ID header sent with no tenant installed")
	}
}

func TestUnauthorizedFiresHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail": "Could not validate credentials"}`)
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL})
	fired := 0
	client.SetOnUnauthorized(func() { fired++ })

	_, err := client.Me(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("expected 401 error, got %v", err)
	}
	if fired != 1 {
		t.Errorf("hook fired %d times, want 1", fired)
	}
}

func TestErrorDetailExtraction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"detail": "Invalid credentials"}`)
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL})
	_, err := client.Me(context.Background())

	var apiError *Error
	if !errors.As(err, &apiError) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if apiError.Status != http.StatusUnprocessableEntity {
		t.Errorf("Status = %d, want 422", apiError.Status)
	}
	if apiError.Detail != "Invalid credentials" {
		t.Errorf("Detail = %q, want server message verbatim", apiError.Detail)
	}
	if got := Message(err); got != "Invalid credentials" {
		t.Errorf("Message = %q", got)
	}
}

func TestMessageFallsBackToGeneric(t *testing.T) {
	if got := Message(errors.New("dial tcp: connection refused")); got != GenericFailure {
		t.Errorf("Message = %q, want generic fallback", got)
	}
	if got := Message(&Error{Status: 500}); got != GenericFailure {
		t.Errorf("Message for empty detail = %q, want generic fallback", got)
	}
	if got := Message(nil); got != "" {
		t.Errorf("Message(nil) = %q, want empty", got)
	}
}

func TestBulkMarkIsOneRequest(t *testing.T) {
	requests := 0
	var body schema.BulkAttendance
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/attendance/bulk" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding bulk body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL})
	records := []schema.AttendanceCreate{
		{StudentID: 1, Date: "2026-03-02", Status: schema.AttendancePresent},
		{StudentID: 2, Date: "2026-03-02", Status: schema.AttendanceAbsent},
		{StudentID: 3, Date: "2026-03-02", Status: schema.AttendanceLate},
	}
	if err := client.BulkMarkAttendance(context.Background(), records); err != nil {
		t.Fatalf("BulkMarkAttendance: %v", err)
	}
	if requests != 1 {
		t.Errorf("server saw %d requests, want exactly 1", requests)
	}
	if len(body.Records) != 3 {
		t.Errorf("payload carried %d records, want 3", len(body.Records))
	}
}

// failFirst drops the first request at the transport level, then
// forwards the rest normally.
type failFirst struct {
	calls int
}

func (f *failFirst) RoundTrip(r *http.Request) (*http.Response, error) {
	f.calls++
	if f.calls == 1 {
		return nil, errors.New("connection reset")
	}
	return http.DefaultTransport.RoundTrip(r)
}

func TestGetRetriesTransportFailureOnce(t *testing.T) {
	served := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	transport := &failFirst{}
	client := New(Options{
		BaseURL:    server.URL,
		HTTPClient: &http.Client{Transport: transport},
	})
	if _, err := client.ListStudents(context.Background(), StudentFilter{}); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if transport.calls != 2 {
		t.Errorf("transport saw %d attempts, want 2", transport.calls)
	}
	if served != 1 {
		t.Errorf("server handled %d requests, want 1", served)
	}
}

func TestPostNeverRetriesTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	transport := &failFirst{}
	client := New(Options{
		BaseURL:    server.URL,
		HTTPClient: &http.Client{Transport: transport},
	})
	_, err := client.MarkAttendance(context.Background(), schema.AttendanceCreate{
		StudentID: 1, Date: "2026-03-02", Status: schema.AttendancePresent,
	})
	if err == nil {
		t.Fatal("expected transport failure to surface")
	}
	if transport.calls != 1 {
		t.Errorf("transport saw %d attempts, want 1 (no retry for writes)", transport.calls)
	}
}

func TestHTTPErrorNotRetried(t *testing.T) {
	served := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(Options{BaseURL: server.URL})
	_, err := client.ListUsers(context.Background(), UserFilter{})
	var apiError *Error
	if !errors.As(err, &apiError) || apiError.Status != http.StatusBadGateway {
		t.Fatalf("expected 502 error, got %v", err)
	}
	if served != 1 {
		t.Errorf("server handled %d requests, want 1 (status errors never retry)", served)
	}
}

func TestAdminClientIndependentCredentials(t *testing.T) {
	var captured http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		fmt.Fprint(w, `{"total_schools": 4, "total_students": 900}`)
	}))
	defer server.Close()

	tenant := New(Options{BaseURL: server.URL})
	tenant.SetToken("tenant-token")
	tenant.SetTenant("greenfield")

	admin := NewAdmin(Options{BaseURL: server.URL})
	admin.SetToken("admin-token")

	if _, err := admin.SystemStats(context.Background()); err != nil {
		t.Fatalf("SystemStats: %v", err)
	}
	if got := captured.Get("Authorization"); got != "Bearer admin-token" {
		t.Errorf("admin request used %q, want its own token", got)
	}
	if _, ok := captured["X-Tenant-Id"]; ok {
		t.Error("admin request carried a tenant header")
	}
}
