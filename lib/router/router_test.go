// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"testing"

	"github.com/rollcall-hq/rollcall/lib/schema"
	"github.com/rollcall-hq/rollcall/lib/state"
)

func session(role schema.Role, phase state.SessionPhase) state.AuthState {
	return state.AuthState{
		Phase: phase,
		Token: "tok",
		User:  &schema.User{ID: 1, Role: role},
	}
}

func TestLanding(t *testing.T) {
	tests := []struct {
		name string
		auth state.AuthState
		want View
	}{
		{"anonymous", state.AuthState{Phase: state.PhaseAnonymous}, ViewLogin},
		{"security guard", session(schema.RoleSecurity, state.PhaseConfirmed), ViewSecurity},
		{"admin", session(schema.RoleAdmin, state.PhaseConfirmed), ViewDashboard},
		{"teacher", session(schema.RoleTeacher, state.PhaseConfirmed), ViewDashboard},
		{"parent", session(schema.RoleParent, state.PhaseConfirmed), ViewDashboard},
		{"cached session routes like confirmed", session(schema.RoleSecurity, state.PhaseCached), ViewSecurity},
		{"token without a user is no session", state.AuthState{Phase: state.PhaseCached, Token: "tok"}, ViewLogin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Landing(tt.auth); got != tt.want {
				t.Errorf("Landing = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecideThreeWay(t *testing.T) {
	tests := []struct {
		name string
		auth state.AuthState
		view View
		want Decision
	}{
		{"confirmed session", session(schema.RoleTeacher, state.PhaseConfirmed), ViewDashboard, Allow},
		{"cached session", session(schema.RoleTeacher, state.PhaseCached), ViewDashboard, Allow},
		{"anonymous on protected view", state.AuthState{Phase: state.PhaseAnonymous}, ViewDashboard, RedirectLogin},
		{"anonymous on login view", state.AuthState{Phase: state.PhaseAnonymous}, ViewLogin, Allow},
		{"pending login holds the decision", state.AuthState{Phase: state.PhaseAnonymous, Loading: true}, ViewDashboard, ShowLoading},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.auth, tt.view); got != tt.want {
				t.Errorf("Decide = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAllowedIsPermissiveForAuthenticated(t *testing.T) {
	views := []View{ViewDashboard, ViewSecurity, ViewUsers, ViewStudents, ViewAttend, ViewGatePass, ViewVisitors, ViewSchool}

	parent := session(schema.RoleParent, state.PhaseConfirmed)
	for _, view := range views {
		if !Allowed(parent, view) {
			t.Errorf("parent denied %q; access is backend-enforced, not client-enforced", view)
		}
	}

	anonymous := state.AuthState{Phase: state.PhaseAnonymous}
	for _, view := range views {
		if Allowed(anonymous, view) {
			t.Errorf("anonymous allowed %q", view)
		}
	}
	if !Allowed(anonymous, ViewLogin) {
		t.Error("anonymous denied the login view")
	}
}
