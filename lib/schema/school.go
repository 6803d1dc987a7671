// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// School is the tenant's school record, as returned by
// GET /schools/current. Slug is the stable tenant identifier carried
// in the X-Tenant-ID header.
type School struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	Address         string `json:"address,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email,omitempty"`
	Website         string `json:"website,omitempty"`
	PrincipalName   string `json:"principal_name,omitempty"`
	Timezone        string `json:"timezone"`
	SchoolStartTime string `json:"school_start_time"`
	SchoolEndTime   string `json:"school_end_time"`
	TotalStudents   int    `json:"total_students"`
	TotalTeachers   int    `json:"total_teachers"`
	IsActive        bool   `json:"is_active"`
	Plan            string `json:"subscription_plan"`
	CreatedAt       string `json:"created_at"`
}

// SchoolUpdate is the body for PUT /schools/current.
type SchoolUpdate struct {
	Name            *string `json:"name,omitempty"`
	Address         *string `json:"address,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	Website         *string `json:"website,omitempty"`
	PrincipalName   *string `json:"principal_name,omitempty"`
	Timezone        *string `json:"timezone,omitempty"`
	SchoolStartTime *string `json:"school_start_time,omitempty"`
	SchoolEndTime   *string `json:"school_end_time,omitempty"`
}

// SchoolStats is the snapshot returned by GET /schools/stats, shown on
// the admin dashboard.
type SchoolStats struct {
	TotalStudents     int `json:"total_students"`
	TotalTeachers     int `json:"total_teachers"`
	TotalStaff        int `json:"total_staff"`
	ActiveStudents    int `json:"active_students"`
	PresentToday      int `json:"present_today"`
	AbsentToday       int `json:"absent_today"`
	PendingGatePasses int `json:"pending_gate_passes"`
}
