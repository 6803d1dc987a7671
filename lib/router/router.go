// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package router decides where an authenticated (or anonymous) session
// lands. Decisions are pure functions of the state snapshot so they
// can be taken identically by the one-shot commands and the
// interactive console.
package router

import (
	"github.com/rollcall-hq/rollcall/lib/schema"
	"github.com/rollcall-hq/rollcall/lib/state"
)

// View names a console surface.
type View string

const (
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
	ViewSecurity  View = "security"
	ViewUsers     View = "users"
	ViewStudents  View = "students"
	ViewAttend    View = "attendance"
	ViewGatePass  View = "gatepass"
	ViewVisitors  View = "visitors"
	ViewSchool    View = "school"
)

// Landing returns the view a session starts on. Security guards land
// on the gate dashboard; everyone else lands on the general dashboard.
// A cached (not yet confirmed) session routes exactly like a confirmed
// one: the whole point of the optimistic restore is that the user is
// not parked on a loading screen.
func Landing(auth state.AuthState) View {
	if !auth.Authenticated() {
		return ViewLogin
	}
	if auth.User != nil && auth.User.Role == schema.RoleSecurity {
		return ViewSecurity
	}
	return ViewDashboard
}

// Decision is the outcome of a view request.
type Decision int

const (
	// Allow opens the requested view.
	Allow Decision = iota
	// RedirectLogin sends the scope to its login view.
	RedirectLogin
	// ShowLoading holds the view behind a neutral indicator while the
	// scope is still resolving, so an in-flight login never flashes a
	// redirect.
	ShowLoading
)

// Decide gates a view request. Access is permissive: any authenticated
// tenant user can open any tenant view, and the backend enforces the
// real authorization on every request. The only gates here are
// authentication itself and the scope's loading flag.
func Decide(auth state.AuthState, view View) Decision {
	if view == ViewLogin || auth.Authenticated() {
		return Allow
	}
	if auth.Loading {
		return ShowLoading
	}
	return RedirectLogin
}

// Allowed reports whether a session may open a view right now.
func Allowed(auth state.AuthState, view View) bool {
	return Decide(auth, view) == Allow
}
