// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package tokenstore

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return store
}

func TestSetGetClear(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set(ScopeTenant, KeyToken, "tok-123"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok, err := store.Get(ScopeTenant, KeyToken)
	if err != nil || !ok || value != "tok-123" {
		t.Fatalf("Get = (%q, %v, %v), want (tok-123, true, nil)", value, ok, err)
	}

	if err := store.Clear(ScopeTenant, KeyToken); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := store.Get(ScopeTenant, KeyToken); ok {
		t.Error("token still present after Clear")
	}
}

func TestScopesAreIndependent(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set(ScopeTenant, KeyToken, "tenant-token"); err != nil {
		t.Fatalf("Set tenant: %v", err)
	}
	if err := store.Set(ScopeAdmin, KeyToken, "admin-token"); err != nil {
		t.Fatalf("Set admin: %v", err)
	}

	// Wiping the tenant scope must leave the admin credential intact.
	if err := store.ClearScope(ScopeTenant); err != nil {
		t.Fatalf("ClearScope: %v", err)
	}
	if _, ok, _ := store.Get(ScopeTenant, KeyToken); ok {
		t.Error("tenant token survived ClearScope")
	}
	value, ok, err := store.Get(ScopeAdmin, KeyToken)
	if err != nil || !ok || value != "admin-token" {
		t.Errorf("admin token = (%q, %v, %v) after tenant purge", value, ok, err)
	}
}

func TestCredentialFileIsSealed(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Set(ScopeTenant, KeyToken, "very-secret-token"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "tenant.json.age"))
	if err != nil {
		t.Fatalf("reading sealed file: %v", err)
	}
	if bytes.Contains(raw, []byte("very-secret-token")) {
		t.Error("token stored in plaintext")
	}
}

func TestReopenWithSameIdentity(t *testing.T) {
	dir := t.TempDir()
	first, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := first.SetMany(ScopeTenant, map[string]string{
		KeyToken:  "tok",
		KeyTenant: "greenfield-high",
	}); err != nil {
		t.Fatalf("SetMany: %v", err)
	}

	// A second Open must parse the persisted identity and decrypt what
	// the first store wrote.
	second, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	tenant, ok, err := second.Get(ScopeTenant, KeyTenant)
	if err != nil || !ok || tenant != "greenfield-high" {
		t.Errorf("tenant after reopen = (%q, %v, %v)", tenant, ok, err)
	}
}

func TestClearLastKeyRemovesFile(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Set(ScopeAdmin, KeyToken, "tok"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Clear(ScopeAdmin, KeyToken); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "admin.json.age")); !os.IsNotExist(err) {
		t.Error("empty scope file left behind")
	}
}
