// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// VisitorStatus is the gate workflow state of a visitor record.
type VisitorStatus string

const (
	VisitorPending    VisitorStatus = "pending"
	VisitorApproved   VisitorStatus = "approved"
	VisitorDenied     VisitorStatus = "denied"
	VisitorCheckedIn  VisitorStatus = "checked_in"
	VisitorCheckedOut VisitorStatus = "checked_out"
	VisitorExpired    VisitorStatus = "expired"
	VisitorCancelled  VisitorStatus = "cancelled"
)

// Visitor is a school visitor record. The backend computes FullName,
// IsOverdue, and the related display names; the console only renders
// them.
type Visitor struct {
	ID                 int           `json:"id"`
	SchoolID           int           `json:"school_id"`
	FirstName          string        `json:"first_name"`
	LastName           string        `json:"last_name"`
	FullName           string        `json:"full_name"`
	Email              string        `json:"email,omitempty"`
	Phone              string        `json:"phone"`
	VisitorType        string        `json:"visitor_type"`
	Purpose            string        `json:"purpose"`
	HostUserID         int           `json:"host_user_id,omitempty"`
	HostStudentID      int           `json:"host_student_id,omitempty"`
	RequestedEntryTime string        `json:"requested_entry_time"`
	ExpectedExitTime   string        `json:"expected_exit_time,omitempty"`
	ActualEntryTime    string        `json:"actual_entry_time,omitempty"`
	ActualExitTime     string        `json:"actual_exit_time,omitempty"`
	VehicleNumber      string        `json:"vehicle_number,omitempty"`
	CompanyName        string        `json:"company_name,omitempty"`
	Status             VisitorStatus `json:"status"`
	BadgeNumber        string        `json:"badge_number,omitempty"`
	IsBlacklisted      bool          `json:"is_blacklisted"`
	IsPreRegistered    bool          `json:"is_pre_registered"`
	IsOverdue          bool          `json:"is_overdue"`
	HostUserName       string        `json:"host_user_name,omitempty"`
	HostStudentName    string        `json:"host_student_name,omitempty"`
	ApprovedByName     string        `json:"approved_by_name,omitempty"`
	ApprovalNotes      string        `json:"approval_notes,omitempty"`
	CreatedAt          string        `json:"created_at"`
	UpdatedAt          string        `json:"updated_at"`
}

// VisitorCreate is the body for POST /visitors and
// POST /visitors/pre-register.
type VisitorCreate struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email,omitempty"`
	Phone              string `json:"phone"`
	VisitorType        string `json:"visitor_type,omitempty"`
	Purpose            string `json:"purpose"`
	HostUserID         int    `json:"host_user_id,omitempty"`
	HostStudentID      int    `json:"host_student_id,omitempty"`
	RequestedEntryTime string `json:"requested_entry_time"`
	ExpectedExitTime   string `json:"expected_exit_time,omitempty"`
	VehicleNumber      string `json:"vehicle_number,omitempty"`
	CompanyName        string `json:"company_name,omitempty"`
}

// VisitorDecision is the body for the visitor approve/deny endpoints.
type VisitorDecision struct {
	Notes string `json:"notes,omitempty"`
}
