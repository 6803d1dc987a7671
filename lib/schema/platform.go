// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// PlatformAdmin is a platform super-admin account, served by the
// /super-admin API root. Structurally independent from User: platform
// admins are not tenant users and the two credential scopes never mix.
type PlatformAdmin struct {
	ID         int    `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
	LastLogin  string `json:"last_login,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// AdminLoginResponse is the body returned by POST /super-admin/login.
type AdminLoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	Admin       PlatformAdmin `json:"admin"`
}

// SystemStats is the platform-wide snapshot from
// GET /super-admin/dashboard/stats.
type SystemStats struct {
	TotalSchools       int     `json:"total_schools"`
	ActiveSchools      int     `json:"active_schools"`
	TotalUsers         int     `json:"total_users"`
	ActiveUsers        int     `json:"active_users"`
	TotalStudents      int     `json:"total_students"`
	ActiveStudents     int     `json:"active_students"`
	SystemUptimeHours  float64 `json:"system_uptime_hours"`
	StorageUsedGB      float64 `json:"storage_used_gb"`
	StorageTotalGB     float64 `json:"storage_total_gb"`
	TotalSupportTicket int     `json:"total_support_tickets"`
	OpenSupportTicket  int     `json:"open_support_tickets"`
}

// SchoolSummary is one row of the platform admin's school list.
type SchoolSummary struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	TotalStudents int    `json:"total_students"`
	TotalTeachers int    `json:"total_teachers"`
	IsActive      bool   `json:"is_active"`
	Plan          string `json:"subscription_plan"`
	LastActivity  string `json:"last_activity,omitempty"`
	CreatedAt     string `json:"created_at"`
}
