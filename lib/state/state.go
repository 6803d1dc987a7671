// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"github.com/rollcall-hq/rollcall/lib/schema"
)

// SessionPhase tracks how far the current session has been validated.
type SessionPhase string

const (
	// PhaseAnonymous means no credentials are held.
	PhaseAnonymous SessionPhase = "anonymous"
	// PhaseCached means a persisted session was restored optimistically
	// and has not yet been confirmed by the backend.
	PhaseCached SessionPhase = "cached"
	// PhaseConfirmed means the backend accepted the session's token.
	PhaseConfirmed SessionPhase = "confirmed"
)

// AuthState is the tenant session slice.
type AuthState struct {
	Phase   SessionPhase
	Token   string
	User    *schema.User
	Loading bool
	Error   string
}

// Authenticated reports whether the session holds a usable token tied
// to a known user, confirmed or merely cached. The flag and the user
// record move together: a token with no user is not a session.
func (a AuthState) Authenticated() bool {
	return a.Token != "" && a.User != nil && (a.Phase == PhaseCached || a.Phase == PhaseConfirmed)
}

// TenantState is the active-tenant slice.
type TenantState struct {
	ID string
	// Source records how the tenant was chosen: "flag", "stored", or
	// "default". Display only.
	Source string
}

// ListState is the shape shared by every collection slice. Stale items
// stay visible through a reload and through a failed reload.
type ListState[T any] struct {
	Loading bool
	Loaded  bool
	Items   []T
	Error   string
}

// AttendanceState carries the attendance records plus the derived
// summaries the dashboard shows alongside them.
type AttendanceState struct {
	ListState[schema.Attendance]
	Stats   *schema.AttendanceStats
	ByClass []schema.ClassAttendance
}

// AdminState is the platform-admin slice. It is wholly independent of
// the tenant slices: logging in or out of one surface never touches
// the other.
type AdminState struct {
	Phase   SessionPhase
	Token   string
	Admin   *schema.PlatformAdmin
	Loading bool
	Error   string
	Stats   *schema.SystemStats
	Schools ListState[schema.SchoolSummary]
}

// Authenticated mirrors [AuthState.Authenticated] for the admin scope.
func (a AdminState) Authenticated() bool {
	return a.Token != "" && a.Admin != nil && (a.Phase == PhaseCached || a.Phase == PhaseConfirmed)
}

// App is the whole application state. Values are treated as immutable
// snapshots: the reducer builds a new App, never mutates one in place.
type App struct {
	Auth       AuthState
	Tenant     TenantState
	Users      ListState[schema.User]
	Students   ListState[schema.Student]
	Attendance AttendanceState
	GatePasses ListState[schema.GatePass]
	Visitors   ListState[schema.Visitor]
	Admin      AdminState
}

// Initial returns the state before any action has been dispatched.
func Initial() App {
	return App{
		Auth:  AuthState{Phase: PhaseAnonymous},
		Admin: AdminState{Phase: PhaseAnonymous},
	}
}
