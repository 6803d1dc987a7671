// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package tokenstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"

	"github.com/rollcall-hq/rollcall/lib/secret"
)

// Scope selects one of the two independent credential files. The
// tenant-user session and the platform-admin session never share
// state; a 401 on one scope must not disturb the other.
type Scope string

const (
	// ScopeTenant holds the school user's credentials.
	ScopeTenant Scope = "tenant"
	// ScopeAdmin holds the platform super-admin's credentials.
	ScopeAdmin Scope = "admin"
)

// Well-known keys within a scope.
const (
	// KeyToken is the bearer access token.
	KeyToken = "access_token"
	// KeyUser is the cached user (or admin) record as JSON, used for
	// optimistic session restore before the backend confirms.
	KeyUser = "cached_user"
	// KeyTenant is the resolved tenant identifier (tenant scope only).
	KeyTenant = "tenant_id"
)

// Store is a keyed credential store over per-scope age-sealed files.
// All methods re-read the file, so concurrent rollcall invocations see
// each other's writes; last writer wins, which matches the single-user
// nature of a console session.
type Store struct {
	dir      string
	identity *age.X25519Identity
}

// Dir returns the credential directory: ROLLCALL_STATE_DIR if set,
// else $XDG_CONFIG_HOME/rollcall, else ~/.config/rollcall.
func Dir() string {
	if envDir := os.Getenv("ROLLCALL_STATE_DIR"); envDir != "" {
		return envDir
	}
	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback; this should rarely happen.
			return filepath.Join(os.TempDir(), "rollcall")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "rollcall")
}

// Open prepares a store rooted at dir, creating the directory (0700)
// and the sealing identity on first use.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating credential directory %s: %w", dir, err)
	}

	identity, err := loadOrCreateIdentity(filepath.Join(dir, "identity.age"))
	if err != nil {
		return nil, err
	}
	return &Store{dir: dir, identity: identity}, nil
}

// Set writes one key in the given scope, creating the scope file if
// needed.
func (store *Store) Set(scope Scope, key, value string) error {
	values, err := store.readScope(scope)
	if err != nil {
		return err
	}
	values[key] = value
	return store.writeScope(scope, values)
}

// SetMany writes several keys in one read-modify-write cycle.
func (store *Store) SetMany(scope Scope, entries map[string]string) error {
	values, err := store.readScope(scope)
	if err != nil {
		return err
	}
	for key, value := range entries {
		values[key] = value
	}
	return store.writeScope(scope, values)
}

// Get reads one key. The second return is false when the key (or the
// whole scope file) is absent.
func (store *Store) Get(scope Scope, key string) (string, bool, error) {
	values, err := store.readScope(scope)
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

// Clear removes the named keys from a scope. Clearing keys that are
// already absent is not an error.
func (store *Store) Clear(scope Scope, keys ...string) error {
	values, err := store.readScope(scope)
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(values, key)
	}
	if len(values) == 0 {
		return store.ClearScope(scope)
	}
	return store.writeScope(scope, values)
}

// ClearScope deletes a scope's credential file entirely. Used by
// logout and by the 401 purge path. The other scope is untouched.
func (store *Store) ClearScope(scope Scope) error {
	err := os.Remove(store.scopePath(scope))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s credentials: %w", scope, err)
	}
	return nil
}

func (store *Store) scopePath(scope Scope) string {
	return filepath.Join(store.dir, string(scope)+".json.age")
}

func (store *Store) readScope(scope Scope) (map[string]string, error) {
	sealed, err := os.ReadFile(store.scopePath(scope))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading %s credentials: %w", scope, err)
	}

	reader, err := age.Decrypt(bytes.NewReader(sealed), store.identity)
	if err != nil {
		return nil, fmt.Errorf("unsealing %s credentials: %w", scope, err)
	}
	plaintext, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("unsealing %s credentials: %w", scope, err)
	}
	defer secret.Zero(plaintext)

	values := map[string]string{}
	if err := json.Unmarshal(plaintext, &values); err != nil {
		return nil, fmt.Errorf("parsing %s credentials: %w", scope, err)
	}
	return values, nil
}

func (store *Store) writeScope(scope Scope, values map[string]string) error {
	plaintext, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshaling %s credentials: %w", scope, err)
	}
	defer secret.Zero(plaintext)

	var sealed bytes.Buffer
	writer, err := age.Encrypt(&sealed, store.identity.Recipient())
	if err != nil {
		return fmt.Errorf("sealing %s credentials: %w", scope, err)
	}
	if _, err := writer.Write(plaintext); err != nil {
		return fmt.Errorf("sealing %s credentials: %w", scope, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("sealing %s credentials: %w", scope, err)
	}

	if err := os.WriteFile(store.scopePath(scope), sealed.Bytes(), 0600); err != nil {
		return fmt.Errorf("writing %s credentials: %w", scope, err)
	}
	return nil
}

// loadOrCreateIdentity reads the age identity file, generating a fresh
// X25519 identity on first use.
func loadOrCreateIdentity(path string) (*age.X25519Identity, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		identity, parseErr := age.ParseX25519Identity(strings.TrimSpace(string(data)))
		if parseErr != nil {
			return nil, fmt.Errorf("parsing identity file %s: %w", path, parseErr)
		}
		return identity, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading identity file %s: %w", path, err)
	}

	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating identity: %w", err)
	}
	if err := os.WriteFile(path, []byte(identity.String()+"\n"), 0600); err != nil {
		return nil, fmt.Errorf("writing identity file %s: %w", path, err)
	}
	return identity, nil
}
