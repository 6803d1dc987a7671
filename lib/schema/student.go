// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Student is the tenant API's student record. StudentID is the
// school-assigned identifier printed on ID cards; ID is the database
// key used in URLs.
type Student struct {
	ID            int    `json:"id"`
	StudentID     string `json:"student_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	FullName      string `json:"full_name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	Address       string `json:"address,omitempty"`
	GuardianName  string `json:"guardian_name,omitempty"`
	GuardianPhone string `json:"guardian_phone,omitempty"`
	GuardianEmail string `json:"guardian_email,omitempty"`
	ClassName     string `json:"class_name,omitempty"`
	Section       string `json:"section,omitempty"`
	AdmissionDate string `json:"admission_date,omitempty"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

// StudentCreate is the request body for POST /students.
type StudentCreate struct {
	StudentID     string `json:"student_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	Address       string `json:"address,omitempty"`
	GuardianName  string `json:"guardian_name,omitempty"`
	GuardianPhone string `json:"guardian_phone,omitempty"`
	GuardianEmail string `json:"guardian_email,omitempty"`
	ClassName     string `json:"class_name,omitempty"`
	Section       string `json:"section,omitempty"`
	AdmissionDate string `json:"admission_date,omitempty"`
}

// StudentUpdate is the request body for PUT /students/{id}.
type StudentUpdate struct {
	StudentID     *string `json:"student_id,omitempty"`
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	GuardianName  *string `json:"guardian_name,omitempty"`
	GuardianPhone *string `json:"guardian_phone,omitempty"`
	GuardianEmail *string `json:"guardian_email,omitempty"`
	ClassName     *string `json:"class_name,omitempty"`
	Section       *string `json:"section,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// StudentRef is the abbreviated student embedded in attendance and
// gate pass responses.
type StudentRef struct {
	ID        int    `json:"id"`
	StudentID string `json:"student_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	ClassName string `json:"class_name"`
	Section   string `json:"section,omitempty"`
	Status    string `json:"status"`
}
