// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"github.com/rollcall-hq/rollcall/lib/schema"
)

// reduce is the pure transition function. It never mutates app; every
// branch returns a modified copy.
func reduce(app App, action Action) App {
	switch a := action.(type) {

	// tenant session
	case LoginPending:
		app.Auth.Loading = true
		app.Auth.Error = ""
	case LoginFulfilled:
		user := a.User
		app.Auth = AuthState{Phase: PhaseConfirmed, Token: a.Token, User: &user}
	case LoginRejected:
		// Login is auth-establishing: its failure takes any
		// optimistically restored session down with it.
		app.Auth = AuthState{Phase: PhaseAnonymous, Error: a.Message}
	case SessionRestored:
		app.Auth = AuthState{Phase: PhaseCached, Token: a.Token, User: a.User}
	case SessionConfirmed:
		user := a.User
		app.Auth.Phase = PhaseConfirmed
		app.Auth.User = &user
		app.Auth.Error = ""
	case SessionInvalidated:
		// Tenant data is meaningless without a session; drop it all.
		// The admin slice is untouched on purpose.
		admin := app.Admin
		tenant := app.Tenant
		app = Initial()
		app.Admin = admin
		app.Tenant = tenant
	case TenantResolved:
		app.Tenant = TenantState{ID: a.ID, Source: a.Source}

	// users
	case UsersPending:
		app.Users.Loading = true
		app.Users.Error = ""
	case UsersFulfilled:
		app.Users = ListState[schema.User]{Loaded: true, Items: a.Users}
	case UsersRejected:
		app.Users.Loading = false
		app.Users.Error = a.Message

	// students
	case StudentsPending:
		app.Students.Loading = true
		app.Students.Error = ""
	case StudentsFulfilled:
		app.Students = ListState[schema.Student]{Loaded: true, Items: a.Students}
	case StudentsRejected:
		app.Students.Loading = false
		app.Students.Error = a.Message

	// attendance
	case AttendancePending:
		app.Attendance.Loading = true
		app.Attendance.Error = ""
	case AttendanceFulfilled:
		app.Attendance.ListState = ListState[schema.Attendance]{Loaded: true, Items: a.Records}
	case AttendanceRejected:
		app.Attendance.Loading = false
		app.Attendance.Error = a.Message
	case AttendanceStatsLoaded:
		app.Attendance.Loading = false
		app.Attendance.Stats = a.Stats
		app.Attendance.ByClass = a.ByClass

	// gate passes
	case GatePassesPending:
		app.GatePasses.Loading = true
		app.GatePasses.Error = ""
	case GatePassesFulfilled:
		app.GatePasses = ListState[schema.GatePass]{Loaded: true, Items: a.Passes}
	case GatePassesRejected:
		app.GatePasses.Loading = false
		app.GatePasses.Error = a.Message
	case GatePassUpdated:
		app.GatePasses.Items = replaceByID(app.GatePasses.Items, a.Pass, func(p schema.GatePass) int { return p.ID })

	// visitors
	case VisitorsPending:
		app.Visitors.Loading = true
		app.Visitors.Error = ""
	case VisitorsFulfilled:
		app.Visitors = ListState[schema.Visitor]{Loaded: true, Items: a.Visitors}
	case VisitorsRejected:
		app.Visitors.Loading = false
		app.Visitors.Error = a.Message
	case VisitorUpdated:
		app.Visitors.Items = replaceByID(app.Visitors.Items, a.Visitor, func(v schema.Visitor) int { return v.ID })

	// platform admin
	case AdminLoginPending:
		app.Admin.Loading = true
		app.Admin.Error = ""
	case AdminLoginFulfilled:
		admin := a.Admin
		app.Admin = AdminState{Phase: PhaseConfirmed, Token: a.Token, Admin: &admin}
	case AdminLoginRejected:
		app.Admin.Phase = PhaseAnonymous
		app.Admin.Token = ""
		app.Admin.Admin = nil
		app.Admin.Loading = false
		app.Admin.Error = a.Message
	case AdminSessionRestored:
		app.Admin = AdminState{Phase: PhaseCached, Token: a.Token, Admin: a.Admin}
	case AdminSessionConfirmed:
		admin := a.Admin
		app.Admin.Phase = PhaseConfirmed
		app.Admin.Admin = &admin
		app.Admin.Error = ""
	case AdminSessionInvalidated:
		app.Admin = AdminState{Phase: PhaseAnonymous}
	case AdminStatsLoaded:
		app.Admin.Stats = a.Stats
	case SchoolsPending:
		app.Admin.Schools.Loading = true
		app.Admin.Schools.Error = ""
	case SchoolsFulfilled:
		app.Admin.Schools = ListState[schema.SchoolSummary]{Loaded: true, Items: a.Schools}
	case SchoolsRejected:
		app.Admin.Schools.Loading = false
		app.Admin.Schools.Error = a.Message
	case SchoolUpdated:
		app.Admin.Schools.Items = replaceByID(app.Admin.Schools.Items, a.School, func(s schema.SchoolSummary) int { return s.ID })
	}
	return app
}

// replaceByID swaps the element whose ID matches updated into a fresh
// slice. An unknown ID leaves the list as it was.
func replaceByID[T any](items []T, updated T, id func(T) int) []T {
	want := id(updated)
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		if id(out[i]) == want {
			out[i] = updated
			break
		}
	}
	return out
}
