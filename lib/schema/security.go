// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// SecurityDashboard is the gate-side snapshot returned by
// GET /security/dashboard. The list payloads are loosely typed on the
// backend; the console renders them as-is.
type SecurityDashboard struct {
	StudentsPresent int              `json:"students_present"`
	StaffPresent    int              `json:"staff_present"`
	VisitorsToday   int              `json:"visitors_today"`
	ActiveIncidents int              `json:"active_incidents"`
	RecentCheckins  []RecentActivity `json:"recent_checkins"`
}

// PersonMatch is one hit from GET /security/search or a verify lookup.
// Type is "student" or "staff".
type PersonMatch struct {
	ID         int    `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Type       string `json:"type"`
	IDNumber   string `json:"id_number,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	ClassName  string `json:"class_name,omitempty"`
}

// GateMark is the body for POST /security/attendance/mark: a gate
// check-in or check-out for a student or staff member.
type GateMark struct {
	PersonID   int    `json:"person_id"`
	PersonType string `json:"person_type"`
	CheckType  string `json:"check_type"`
	Method     string `json:"method"`
	Location   string `json:"location,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// RecentActivity is one row of the gate's recent check-in feed.
type RecentActivity struct {
	PersonName string `json:"person_name"`
	CheckType  string `json:"check_type"`
	Time       string `json:"time"`
	Method     string `json:"method"`
	Timestamp  string `json:"timestamp"`
}
