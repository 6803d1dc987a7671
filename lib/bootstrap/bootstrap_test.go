// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rollcall-hq/rollcall/lib/api"
	"github.com/rollcall-hq/rollcall/lib/claims"
	"github.com/rollcall-hq/rollcall/lib/schema"
	"github.com/rollcall-hq/rollcall/lib/state"
	"github.com/rollcall-hq/rollcall/lib/tokenstore"
)

func newBootstrap(t *testing.T) *Bootstrap {
	t.Helper()
	tokens, err := tokenstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("opening token store: %v", err)
	}
	return &Bootstrap{
		Tokens: tokens,
		State:  state.NewStore(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func persistSession(t *testing.T, b *Bootstrap, scope tokenstore.Scope, token string, profile any) {
	t.Helper()
	encoded, err := json.Marshal(profile)
	if err != nil {
		t.Fatalf("encoding profile: %v", err)
	}
	err = b.Tokens.SetMany(scope, map[string]string{
		tokenstore.KeyToken: token,
		tokenstore.KeyUser:  string(encoded),
	})
	if err != nil {
		t.Fatalf("persisting session: %v", err)
	}
}

func TestRestoreWithoutStoredSession(t *testing.T) {
	b := newBootstrap(t)
	client := api.New(api.Options{BaseURL: "http://unused.invalid"})

	restored, err := b.Restore(client)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored {
		t.Error("restored with empty store")
	}
	if app := b.State.Snapshot(); app.Auth.Phase != state.PhaseAnonymous {
		t.Errorf("phase = %q", app.Auth.Phase)
	}
}

func TestRestoreThenConfirm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer stored-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"id": 5, "email": "t@x", "role": "TEACHER", "first_name": "Asha", "last_name": "N"}`)
	}))
	defer server.Close()

	b := newBootstrap(t)
	client := api.New(api.Options{BaseURL: server.URL})
	persistSession(t, b, tokenstore.ScopeTenant, "stored-token",
		schema.User{ID: 5, Role: schema.RoleTeacher})

	restored, err := b.Restore(client)
	if err != nil || !restored {
		t.Fatalf("Restore = %v, %v", restored, err)
	}

	// Phase one: on screen immediately from cache.
	app := b.State.Snapshot()
	if app.Auth.Phase != state.PhaseCached {
		t.Fatalf("phase after restore = %q", app.Auth.Phase)
	}
	if app.Auth.User == nil || app.Auth.User.ID != 5 {
		t.Fatal("cached profile not restored")
	}

	// Phase two: backend agrees.
	if err := b.Confirm(context.Background(), client); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	app = b.State.Snapshot()
	if app.Auth.Phase != state.PhaseConfirmed {
		t.Errorf("phase after confirm = %q", app.Auth.Phase)
	}
	if app.Auth.User.FirstName != "Asha" {
		t.Error("confirmed profile did not replace cached one")
	}

	// The refreshed profile is written back for the next restore.
	cached, ok, err := b.Tokens.Get(tokenstore.ScopeTenant, tokenstore.KeyUser)
	if err != nil || !ok {
		t.Fatalf("cached profile missing after confirm: %v", err)
	}
	var stored schema.User
	if err := json.Unmarshal([]byte(cached), &stored); err != nil || stored.FirstName != "Asha" {
		t.Errorf("stored profile = %q", cached)
	}
}

func TestRestoreWithoutCachedProfileFallsBackToTokenClaims(t *testing.T) {
	b := newBootstrap(t)
	client := api.New(api.Options{BaseURL: "http://unused.invalid"})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims.Session{
		Email: "guard@greenfield.example",
		Role:  "SECURITY",
	})
	signed, err := token.SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	if err := b.Tokens.Set(tokenstore.ScopeTenant, tokenstore.KeyToken, signed); err != nil {
		t.Fatalf("persisting token: %v", err)
	}

	restored, err := b.Restore(client)
	if err != nil || !restored {
		t.Fatalf("Restore = %v, %v", restored, err)
	}

	app := b.State.Snapshot()
	if !app.Auth.Authenticated() {
		t.Fatal("session not authenticated after claims fallback")
	}
	if app.Auth.User == nil || app.Auth.User.Role != schema.RoleSecurity {
		t.Errorf("restored user = %+v", app.Auth.User)
	}
}

func TestRestoreOpaqueTokenWithoutProfile(t *testing.T) {
	b := newBootstrap(t)
	client := api.New(api.Options{BaseURL: "http://unused.invalid"})
	if err := b.Tokens.Set(tokenstore.ScopeTenant, tokenstore.KeyToken, "opaque-token"); err != nil {
		t.Fatalf("persisting token: %v", err)
	}

	restored, err := b.Restore(client)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored {
		t.Error("restored a session with no identifiable user")
	}

	app := b.State.Snapshot()
	if app.Auth.Authenticated() || app.Auth.User != nil {
		t.Errorf("auth = %+v, want anonymous", app.Auth)
	}
}

func TestConfirmRejectionPurgesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail": "Could not validate credentials"}`)
	}))
	defer server.Close()

	b := newBootstrap(t)
	client := api.New(api.Options{BaseURL: server.URL})
	persistSession(t, b, tokenstore.ScopeTenant, "dead-token", schema.User{ID: 5})

	if restored, _ := b.Restore(client); !restored {
		t.Fatal("expected restore")
	}
	if err := b.Confirm(context.Background(), client); err == nil {
		t.Fatal("expected confirmation to fail")
	}

	if app := b.State.Snapshot(); app.Auth.Phase != state.PhaseAnonymous {
		t.Errorf("phase = %q, want anonymous after rejection", app.Auth.Phase)
	}
	if _, ok, _ := b.Tokens.Get(tokenstore.ScopeTenant, tokenstore.KeyToken); ok {
		t.Error("dead token survived the purge")
	}
}

func TestConfirmTransportFailureKeepsCachedSession(t *testing.T) {
	server := httptest.NewServer(nil)
	server.Close() // connection refused from here on

	b := newBootstrap(t)
	client := api.New(api.Options{BaseURL: server.URL})
	persistSession(t, b, tokenstore.ScopeTenant, "stored-token", schema.User{ID: 5})

	if restored, _ := b.Restore(client); !restored {
		t.Fatal("expected restore")
	}
	if err := b.Confirm(context.Background(), client); err == nil {
		t.Fatal("expected transport error")
	}

	if app := b.State.Snapshot(); app.Auth.Phase != state.PhaseCached {
		t.Errorf("phase = %q, want cached to survive a network failure", app.Auth.Phase)
	}
	if _, ok, _ := b.Tokens.Get(tokenstore.ScopeTenant, tokenstore.KeyToken); !ok {
		t.Error("token purged on a network failure")
	}
}

func TestUnauthorizedHookPurges(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	b := newBootstrap(t)
	client := api.New(api.Options{BaseURL: server.URL})
	persistSession(t, b, tokenstore.ScopeTenant, "stale", schema.User{ID: 1})
	if restored, _ := b.Restore(client); !restored {
		t.Fatal("expected restore")
	}
	b.InstallUnauthorizedPurge(client)

	if _, err := client.ListUsers(context.Background(), api.UserFilter{}); err == nil {
		t.Fatal("expected 401")
	}
	if app := b.State.Snapshot(); app.Auth.Phase != state.PhaseAnonymous {
		t.Errorf("phase = %q after mid-session 401", app.Auth.Phase)
	}
	if _, ok, _ := b.Tokens.Get(tokenstore.ScopeTenant, tokenstore.KeyToken); ok {
		t.Error("credentials survived mid-session 401")
	}
}

func TestAdminScopeIndependentOfTenantPurge(t *testing.T) {
	b := newBootstrap(t)
	tenantClient := api.New(api.Options{BaseURL: "http://unused.invalid"})
	persistSession(t, b, tokenstore.ScopeTenant, "tenant-tok", schema.User{ID: 1})
	persistSession(t, b, tokenstore.ScopeAdmin, "admin-tok", schema.PlatformAdmin{ID: 9})

	b.Invalidate(tenantClient)

	if _, ok, _ := b.Tokens.Get(tokenstore.ScopeAdmin, tokenstore.KeyToken); !ok {
		t.Error("admin credentials purged by tenant invalidation")
	}
	if _, ok, _ := b.Tokens.Get(tokenstore.ScopeTenant, tokenstore.KeyToken); ok {
		t.Error("tenant credentials survived invalidation")
	}
}

func TestResolveTenantPrecedence(t *testing.T) {
	b := newBootstrap(t)

	// Nothing stored: the configured default wins and is persisted.
	id, err := b.ResolveTenant("", "demo")
	if err != nil || id != "demo" {
		t.Fatalf("ResolveTenant = %q, %v", id, err)
	}
	if app := b.State.Snapshot(); app.Tenant.Source != "default" {
		t.Errorf("source = %q", app.Tenant.Source)
	}

	// The persisted value now beats the default.
	id, err = b.ResolveTenant("", "other-default")
	if err != nil || id != "demo" {
		t.Fatalf("ResolveTenant = %q, %v", id, err)
	}
	if app := b.State.Snapshot(); app.Tenant.Source != "stored" {
		t.Errorf("source = %q", app.Tenant.Source)
	}

	// An explicit flag beats both and becomes the new stored value.
	id, err = b.ResolveTenant("greenfield", "demo")
	if err != nil || id != "greenfield" {
		t.Fatalf("ResolveTenant = %q, %v", id, err)
	}
	stored, ok, _ := b.Tokens.Get(tokenstore.ScopeTenant, tokenstore.KeyTenant)
	if !ok || stored != "greenfield" {
		t.Errorf("stored tenant = %q", stored)
	}
}

func TestResolveTenantNoSelection(t *testing.T) {
	b := newBootstrap(t)
	if _, err := b.ResolveTenant("", ""); err == nil {
		t.Fatal("expected error when nothing selects a tenant")
	}
}
