// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"sync"
	"testing"

	"github.com/rollcall-hq/rollcall/lib/schema"
)

func TestRejectedKeepsStaleData(t *testing.T) {
	store := NewStore()
	store.Dispatch(UsersFulfilled{Users: []schema.User{{ID: 1, Email: "a@x"}}})
	store.Dispatch(UsersPending{})
	app := store.Dispatch(UsersRejected{Message: "Could not load users"})

	if app.Users.Loading {
		t.Error("Loading still true after rejection")
	}
	if app.Users.Error != "Could not load users" {
		t.Errorf("Error = %q", app.Users.Error)
	}
	if len(app.Users.Items) != 1 {
		t.Errorf("stale items dropped: %d items", len(app.Users.Items))
	}
}

func TestFulfilledClearsPriorError(t *testing.T) {
	store := NewStore()
	store.Dispatch(StudentsPending{})
	store.Dispatch(StudentsRejected{Message: "boom"})
	store.Dispatch(StudentsPending{})
	app := store.Dispatch(StudentsFulfilled{Students: []schema.Student{{ID: 3}}})

	if app.Students.Error != "" {
		t.Errorf("Error = %q after fulfillment", app.Students.Error)
	}
	if app.Students.Loading || !app.Students.Loaded {
		t.Errorf("Loading/Loaded = %v/%v", app.Students.Loading, app.Students.Loaded)
	}
	if len(app.Students.Items) != 1 || app.Students.Items[0].ID != 3 {
		t.Errorf("Items = %+v", app.Students.Items)
	}
}

func TestPendingKeepsDataVisible(t *testing.T) {
	store := NewStore()
	store.Dispatch(GatePassesFulfilled{Passes: []schema.GatePass{{ID: 9}}})
	app := store.Dispatch(GatePassesPending{})

	if !app.GatePasses.Loading {
		t.Error("Loading not set")
	}
	if len(app.GatePasses.Items) != 1 {
		t.Error("reload cleared the visible list")
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := NewStore()
	user := schema.User{ID: 5, Role: schema.RoleTeacher}

	app := store.Dispatch(SessionRestored{Token: "cached-token", User: &user})
	if app.Auth.Phase != PhaseCached || !app.Auth.Authenticated() {
		t.Fatalf("after restore: phase %q, authenticated %v", app.Auth.Phase, app.Auth.Authenticated())
	}

	fresh := schema.User{ID: 5, Role: schema.RoleTeacher, FirstName: "Asha"}
	app = store.Dispatch(SessionConfirmed{User: fresh})
	if app.Auth.Phase != PhaseConfirmed {
		t.Errorf("phase = %q after confirmation", app.Auth.Phase)
	}
	if app.Auth.User.FirstName != "Asha" {
		t.Error("confirmation did not replace the cached profile")
	}
	if app.Auth.Token != "cached-token" {
		t.Error("confirmation replaced the token")
	}

	app = store.Dispatch(SessionInvalidated{})
	if app.Auth.Phase != PhaseAnonymous || app.Auth.Authenticated() {
		t.Errorf("after invalidation: phase %q", app.Auth.Phase)
	}
}

func TestAuthenticatedRequiresUserRecord(t *testing.T) {
	app := NewStore().Dispatch(SessionRestored{Token: "tok", User: nil})
	if app.Auth.Authenticated() {
		t.Error("session authenticated with no user record")
	}

	app = NewStore().Dispatch(AdminSessionRestored{Token: "tok", Admin: nil})
	if app.Admin.Authenticated() {
		t.Error("admin session authenticated with no admin record")
	}
}

func TestLoginRejectedClearsRestoredSession(t *testing.T) {
	store := NewStore()
	user := schema.User{ID: 5, Role: schema.RoleTeacher}
	store.Dispatch(SessionRestored{Token: "old-token", User: &user})
	store.Dispatch(LoginPending{})
	app := store.Dispatch(LoginRejected{Message: "Invalid credentials"})

	if app.Auth.Authenticated() || app.Auth.User != nil || app.Auth.Token != "" {
		t.Errorf("session survived a rejected login: %+v", app.Auth)
	}
	if app.Auth.Loading {
		t.Error("Loading still true after rejection")
	}
	if app.Auth.Error != "Invalid credentials" {
		t.Errorf("Error = %q", app.Auth.Error)
	}
}

func TestInvalidationClearsTenantDataOnly(t *testing.T) {
	store := NewStore()
	store.Dispatch(TenantResolved{ID: "greenfield", Source: "stored"})
	store.Dispatch(UsersFulfilled{Users: []schema.User{{ID: 1}}})
	admin := schema.PlatformAdmin{ID: 2, Email: "root@platform"}
	store.Dispatch(AdminLoginFulfilled{Token: "admin-tok", Admin: admin})

	app := store.Dispatch(SessionInvalidated{})
	if len(app.Users.Items) != 0 || app.Users.Loaded {
		t.Error("tenant data survived invalidation")
	}
	if app.Admin.Phase != PhaseConfirmed || app.Admin.Token != "admin-tok" {
		t.Error("admin session disturbed by tenant invalidation")
	}
	if app.Tenant.ID != "greenfield" {
		t.Error("tenant selection lost on invalidation")
	}
}

func TestAdminSessionIndependent(t *testing.T) {
	store := NewStore()
	user := schema.User{ID: 5, Role: schema.RoleAdmin}
	store.Dispatch(LoginFulfilled{Token: "tenant-tok", User: user})

	app := store.Dispatch(AdminSessionInvalidated{})
	if !app.Auth.Authenticated() {
		t.Error("tenant session disturbed by admin invalidation")
	}
}

func TestGatePassUpdatedReplacesInPlace(t *testing.T) {
	store := NewStore()
	store.Dispatch(GatePassesFulfilled{Passes: []schema.GatePass{
		{ID: 1, Status: schema.GatePassPending},
		{ID: 2, Status: schema.GatePassPending},
	}})
	app := store.Dispatch(GatePassUpdated{Pass: schema.GatePass{ID: 2, Status: schema.GatePassApproved}})

	if app.GatePasses.Items[0].Status != schema.GatePassPending {
		t.Error("untouched pass changed")
	}
	if app.GatePasses.Items[1].Status != schema.GatePassApproved {
		t.Error("updated pass not replaced")
	}

	app = store.Dispatch(GatePassUpdated{Pass: schema.GatePass{ID: 99}})
	if len(app.GatePasses.Items) != 2 {
		t.Error("unknown ID changed list length")
	}
}

func TestReducerDoesNotMutateSnapshots(t *testing.T) {
	store := NewStore()
	before := store.Dispatch(VisitorsFulfilled{Visitors: []schema.Visitor{
		{ID: 1, Status: schema.VisitorPending},
	}})
	store.Dispatch(VisitorUpdated{Visitor: schema.Visitor{ID: 1, Status: schema.VisitorCheckedIn}})

	if before.Visitors.Items[0].Status != schema.VisitorPending {
		t.Error("earlier snapshot mutated by later dispatch")
	}
}

func TestConcurrentDispatchSerializes(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Dispatch(UsersPending{})
		}()
		go func() {
			defer wg.Done()
			store.Dispatch(UsersFulfilled{Users: []schema.User{{ID: 1}}})
		}()
	}
	wg.Wait()

	app := store.Snapshot()
	// Whatever the interleaving, the slice is in exactly one coherent
	// lifecycle position.
	if app.Users.Loading && app.Users.Error != "" {
		t.Error("slice simultaneously loading and failed")
	}
}

func TestSubscribeAndCancel(t *testing.T) {
	store := NewStore()
	seen := 0
	cancel := store.Subscribe(func(App) { seen++ })

	store.Dispatch(UsersPending{})
	store.Dispatch(UsersRejected{Message: "x"})
	cancel()
	store.Dispatch(UsersPending{})

	if seen != 2 {
		t.Errorf("subscriber saw %d dispatches, want 2", seen)
	}
}
