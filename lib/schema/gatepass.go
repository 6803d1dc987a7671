// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// GatePassStatus is the approval workflow state of a gate pass.
type GatePassStatus string

const (
	GatePassPending   GatePassStatus = "pending"
	GatePassApproved  GatePassStatus = "approved"
	GatePassDenied    GatePassStatus = "denied"
	GatePassActive    GatePassStatus = "active"
	GatePassCompleted GatePassStatus = "completed"
	GatePassExpired   GatePassStatus = "expired"
	GatePassCancelled GatePassStatus = "cancelled"
)

// GatePass is a student exit/entry authorization record.
type GatePass struct {
	ID               int            `json:"id"`
	StudentID        int            `json:"student_id"`
	Student          StudentRef     `json:"student"`
	Type             string         `json:"type"`
	Reason           string         `json:"reason"`
	RequestedTime    string         `json:"requested_time"`
	ApprovedTime     string         `json:"approved_time,omitempty"`
	ExitTime         string         `json:"exit_time,omitempty"`
	ReturnTime       string         `json:"return_time,omitempty"`
	Status           GatePassStatus `json:"status"`
	GuardianApproval bool           `json:"guardian_approval"`
	AdminApproval    bool           `json:"admin_approval"`
	Notes            string         `json:"notes,omitempty"`
	ApprovedBy       string         `json:"approved_by,omitempty"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
}

// GatePassCreate is the body for POST /gate-pass.
type GatePassCreate struct {
	StudentID     int    `json:"student_id"`
	Type          string `json:"type"`
	Reason        string `json:"reason"`
	RequestedTime string `json:"requested_time"`
	Notes         string `json:"notes,omitempty"`
}

// GatePassApproval is the body for the approve and deny endpoints.
type GatePassApproval struct {
	Notes string `json:"notes,omitempty"`
}
