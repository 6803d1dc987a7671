// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// AttendanceStatus is a daily attendance mark. The backend stores these
// in lower case.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// ValidAttendanceStatus reports whether status is one of the four
// marks the backend accepts. Used for client-side form validation
// before a request is issued; the backend validates again.
func ValidAttendanceStatus(status AttendanceStatus) bool {
	switch status {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// Attendance is one student-day attendance record.
type Attendance struct {
	ID           int              `json:"id"`
	StudentID    int              `json:"student_id"`
	Student      StudentRef       `json:"student"`
	Date         string           `json:"date"`
	Status       AttendanceStatus `json:"status"`
	CheckInTime  string           `json:"check_in_time,omitempty"`
	CheckOutTime string           `json:"check_out_time,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	MarkedBy     string           `json:"marked_by"`
	CreatedAt    string           `json:"created_at"`
}

// AttendanceCreate is one record in a single or bulk marking request.
type AttendanceCreate struct {
	StudentID int              `json:"student_id"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Notes     string           `json:"notes,omitempty"`
}

// BulkAttendance is the body for POST /attendance/bulk. The whole
// class is submitted as one request so the backend applies it
// atomically; the console never fans a bulk marking out into
// per-student requests.
type BulkAttendance struct {
	Records []AttendanceCreate `json:"records"`
}

// AttendanceStats is the school-wide summary for one date.
type AttendanceStats struct {
	TotalStudents  int     `json:"total_students"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	Excused        int     `json:"excused"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// ClassAttendance is one row of the by-class attendance report.
type ClassAttendance struct {
	ClassName      string  `json:"class_name"`
	Section        string  `json:"section"`
	TotalStudents  int     `json:"total_students"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	AttendanceRate float64 `json:"attendance_rate"`
}
