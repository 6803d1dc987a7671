// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rollcall-hq/rollcall/lib/schema"
	"github.com/rollcall-hq/rollcall/lib/state"
)

func storeWithSession(role schema.Role) *state.Store {
	store := state.NewStore()
	store.Dispatch(state.LoginFulfilled{
		Token: "tok",
		User:  schema.User{ID: 1, FirstName: "Asha", LastName: "N", Role: role},
	})
	store.Dispatch(state.TenantResolved{ID: "greenfield", Source: "stored"})
	return store
}

func TestLandingTabByRole(t *testing.T) {
	if m := New(storeWithSession(schema.RoleTeacher), nil); m.tab != TabOverview {
		t.Errorf("teacher lands on tab %d, want overview", m.tab)
	}
	if m := New(storeWithSession(schema.RoleSecurity), nil); m.tab != TabSecurity {
		t.Errorf("security lands on tab %d, want gate", m.tab)
	}
}

func TestRefreshRereadsSnapshot(t *testing.T) {
	store := storeWithSession(schema.RoleTeacher)
	m := New(store, nil)
	m.tab = TabStudents

	store.Dispatch(state.StudentsFulfilled{Students: []schema.Student{
		{ID: 1, FirstName: "Priya", LastName: "Raman", ClassName: "10", Section: "A"},
	}})

	updated, _ := m.Update(refreshMsg{})
	m = updated.(Model)
	if len(m.tabRows()) != 1 {
		t.Fatalf("rows = %d after refresh", len(m.tabRows()))
	}
	if !strings.Contains(m.tabRows()[0], "Priya Raman") {
		t.Errorf("row = %q", m.tabRows()[0])
	}
}

func TestFilterNarrowsRows(t *testing.T) {
	store := storeWithSession(schema.RoleTeacher)
	store.Dispatch(state.StudentsFulfilled{Students: []schema.Student{
		{ID: 1, FirstName: "Priya", LastName: "Raman"},
		{ID: 2, FirstName: "Dev", LastName: "Kumar"},
	}})
	m := New(store, nil)
	m.tab = TabStudents
	m.filter.Input = "kumar"

	visible := m.visibleRows()
	if len(visible) != 1 || !strings.Contains(visible[0], "Kumar") {
		t.Errorf("visible = %v", visible)
	}
}

func TestCursorClampsToFilteredRows(t *testing.T) {
	store := storeWithSession(schema.RoleTeacher)
	store.Dispatch(state.StudentsFulfilled{Students: []schema.Student{
		{ID: 1, FirstName: "Priya", LastName: "Raman"},
		{ID: 2, FirstName: "Dev", LastName: "Kumar"},
	}})
	m := New(store, nil)
	m.tab = TabStudents
	m.app = store.Snapshot()
	m.cursor = 5

	m.clampCursor()
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want last row", m.cursor)
	}

	m.filter.Input = "kumar"
	m.clampCursor()
	if m.cursor != 0 {
		t.Errorf("cursor = %d after filter", m.cursor)
	}
}

func TestFilterInputCapturesKeys(t *testing.T) {
	store := storeWithSession(schema.RoleTeacher)
	m := New(store, nil)
	m.filter.Active = true

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	m = updated.(Model)
	if m.filter.Input != "ab" {
		t.Errorf("Input = %q", m.filter.Input)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(Model)
	if m.filter.Input != "a" {
		t.Errorf("Input after backspace = %q", m.filter.Input)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(Model)
	if m.filter.Input != "" || m.filter.Active {
		t.Errorf("filter not cleared: %+v", m.filter)
	}
}

func TestErrorShownInStatusBar(t *testing.T) {
	store := storeWithSession(schema.RoleTeacher)
	store.Dispatch(state.UsersRejected{Message: "Could not load users"})
	m := New(store, nil)
	m.tab = TabUsers
	m.app = store.Snapshot()
	m.width = 80
	m.height = 24

	if !strings.Contains(m.View(), "Could not load users") {
		t.Error("server error message not rendered in status bar")
	}
}

func TestSignedOutConsoleShowsLoginNotice(t *testing.T) {
	store := storeWithSession(schema.RoleTeacher)
	m := New(store, nil)
	m.width = 80
	m.height = 24

	// A mid-session 401 purge drops the store to anonymous; the next
	// frame must land on the login notice, not on tenant data.
	store.Dispatch(state.SessionInvalidated{})
	updated, _ := m.Update(refreshMsg{})
	m = updated.(Model)

	frame := m.View()
	if !strings.Contains(frame, "rollcall login") {
		t.Errorf("signed-out frame = %q", frame)
	}
	if strings.Contains(frame, "greenfield") {
		t.Error("tenant data rendered after sign-out")
	}
}

func TestPendingLoginHoldsNeutralScreen(t *testing.T) {
	store := state.NewStore()
	store.Dispatch(state.LoginPending{})
	m := New(store, nil)
	m.width = 80
	m.height = 24

	frame := m.View()
	if strings.Contains(frame, "rollcall login") {
		t.Error("redirect flashed while login still pending")
	}
	if !strings.Contains(frame, "signing in") {
		t.Errorf("pending frame = %q", frame)
	}
}

func TestCachedSessionRendersImmediately(t *testing.T) {
	store := state.NewStore()
	user := schema.User{ID: 1, FirstName: "Asha", LastName: "N", Role: schema.RoleTeacher}
	store.Dispatch(state.SessionRestored{Token: "tok", User: &user})
	store.Dispatch(state.TenantResolved{ID: "greenfield", Source: "stored"})

	m := New(store, nil)
	m.width = 80
	m.height = 24

	frame := m.View()
	if !strings.Contains(frame, "Asha") {
		t.Error("cached session not rendered before confirmation")
	}
	if !strings.Contains(frame, "verifying") {
		t.Error("cached phase not indicated")
	}
}
