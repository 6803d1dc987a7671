// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"github.com/rollcall-hq/rollcall/lib/schema"
)

// Action is a state transition request. The concrete types below are
// the full vocabulary; the reducer ignores anything it does not know.
type Action interface {
	action()
}

// --- tenant session ---

// LoginPending marks an interactive login in flight.
type LoginPending struct{}

// LoginFulfilled installs a fresh session from a successful login.
type LoginFulfilled struct {
	Token string
	User  schema.User
}

// LoginRejected records a failed login attempt.
type LoginRejected struct{ Message string }

// SessionRestored installs a persisted session optimistically. The
// phase becomes cached until the backend confirms or rejects it.
type SessionRestored struct {
	Token string
	User  *schema.User
}

// SessionConfirmed upgrades a cached session after the backend
// accepted its token, replacing the cached profile with a fresh one.
type SessionConfirmed struct{ User schema.User }

// SessionInvalidated tears the tenant session down. Dispatched on
// explicit logout, on a rejected confirmation, and by the 401 hook.
type SessionInvalidated struct{}

// TenantResolved records the active tenant.
type TenantResolved struct {
	ID     string
	Source string
}

// --- collection lifecycles ---

// UsersPending, UsersFulfilled, and UsersRejected are the user list
// lifecycle; the other collections follow the same trio.
type UsersPending struct{}
type UsersFulfilled struct{ Users []schema.User }
type UsersRejected struct{ Message string }

type StudentsPending struct{}
type StudentsFulfilled struct{ Students []schema.Student }
type StudentsRejected struct{ Message string }

type AttendancePending struct{}
type AttendanceFulfilled struct{ Records []schema.Attendance }
type AttendanceRejected struct{ Message string }

// AttendanceStatsLoaded attaches the daily summary and by-class
// breakdown without disturbing the record list.
type AttendanceStatsLoaded struct {
	Stats   *schema.AttendanceStats
	ByClass []schema.ClassAttendance
}

type GatePassesPending struct{}
type GatePassesFulfilled struct{ Passes []schema.GatePass }
type GatePassesRejected struct{ Message string }

// GatePassUpdated replaces one pass in place after an approve, deny,
// or edit, avoiding a full relist.
type GatePassUpdated struct{ Pass schema.GatePass }

type VisitorsPending struct{}
type VisitorsFulfilled struct{ Visitors []schema.Visitor }
type VisitorsRejected struct{ Message string }

// VisitorUpdated replaces one visitor in place after a decision or a
// gate check-in or check-out.
type VisitorUpdated struct{ Visitor schema.Visitor }

// --- platform admin ---

type AdminLoginPending struct{}
type AdminLoginFulfilled struct {
	Token string
	Admin schema.PlatformAdmin
}
type AdminLoginRejected struct{ Message string }

// AdminSessionRestored installs a persisted admin session
// optimistically, mirroring SessionRestored for the tenant surface.
type AdminSessionRestored struct {
	Token string
	Admin *schema.PlatformAdmin
}
type AdminSessionConfirmed struct{ Admin schema.PlatformAdmin }
type AdminSessionInvalidated struct{}

type AdminStatsLoaded struct{ Stats *schema.SystemStats }

type SchoolsPending struct{}
type SchoolsFulfilled struct{ Schools []schema.SchoolSummary }
type SchoolsRejected struct{ Message string }

// SchoolUpdated replaces one school row after a suspend or activate.
type SchoolUpdated struct{ School schema.SchoolSummary }

func (LoginPending) action()            {}
func (LoginFulfilled) action()          {}
func (LoginRejected) action()           {}
func (SessionRestored) action()         {}
func (SessionConfirmed) action()        {}
func (SessionInvalidated) action()      {}
func (TenantResolved) action()          {}
func (UsersPending) action()            {}
func (UsersFulfilled) action()          {}
func (UsersRejected) action()           {}
func (StudentsPending) action()         {}
func (StudentsFulfilled) action()       {}
func (StudentsRejected) action()        {}
func (AttendancePending) action()       {}
func (AttendanceFulfilled) action()     {}
func (AttendanceRejected) action()      {}
func (AttendanceStatsLoaded) action()   {}
func (GatePassesPending) action()       {}
func (GatePassesFulfilled) action()     {}
func (GatePassesRejected) action()      {}
func (GatePassUpdated) action()         {}
func (VisitorsPending) action()         {}
func (VisitorsFulfilled) action()       {}
func (VisitorsRejected) action()        {}
func (VisitorUpdated) action()          {}
func (AdminLoginPending) action()       {}
func (AdminLoginFulfilled) action()     {}
func (AdminLoginRejected) action()      {}
func (AdminSessionRestored) action()    {}
func (AdminSessionConfirmed) action()   {}
func (AdminSessionInvalidated) action() {}
func (AdminStatsLoaded) action()        {}
func (SchoolsPending) action()          {}
func (SchoolsFulfilled) action()        {}
func (SchoolsRejected) action()         {}
func (SchoolUpdated) action()           {}
