// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package bootstrap restores a persisted session at startup.
//
// Restore is optimistic and two-phase: phase one reads whatever the
// credential store holds and puts the session on screen immediately in
// the cached phase; phase two asks the backend who the token belongs
// to and either confirms the session or tears it down. A tenant user
// therefore never waits on a network round trip just to see their own
// dashboard again.
package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/rollcall-hq/rollcall/lib/api"
	"github.com/rollcall-hq/rollcall/lib/claims"
	"github.com/rollcall-hq/rollcall/lib/schema"
	"github.com/rollcall-hq/rollcall/lib/state"
	"github.com/rollcall-hq/rollcall/lib/tokenstore"
)

// Bootstrap wires the credential store, the state store, and the API
// clients together for startup and for the 401 purge path.
type Bootstrap struct {
	Tokens *tokenstore.Store
	State  *state.Store
	Logger *slog.Logger
}

// Restore performs phase one for the tenant scope: if a persisted
// token can be tied to a user, install it on the client and dispatch
// the cached session. Returns false when no session is stored.
//
// The cached session always carries a user record. When the cached
// profile is missing or unreadable, the token's own claims stand in
// for it; a token that identifies nobody is not a restorable session.
func (b *Bootstrap) Restore(client *api.Client) (bool, error) {
	token, ok, err := b.Tokens.Get(tokenstore.ScopeTenant, tokenstore.KeyToken)
	if err != nil {
		return false, err
	}
	if !ok || token == "" {
		return false, nil
	}

	var user *schema.User
	if cached, found, err := b.Tokens.Get(tokenstore.ScopeTenant, tokenstore.KeyUser); err == nil && found {
		var decoded schema.User
		if json.Unmarshal([]byte(cached), &decoded) == nil {
			user = &decoded
		}
	}
	if user == nil {
		decoded, err := claims.Decode(token)
		if err != nil {
			b.Logger.Debug("stored token carries no usable profile, not restoring")
			return false, nil
		}
		user = &schema.User{Email: decoded.Email, Role: schema.Role(decoded.Role)}
	}

	client.SetToken(token)
	b.State.Dispatch(state.SessionRestored{Token: token, User: user})
	b.Logger.Debug("session restored from cache", "email", user.Email)
	return true, nil
}

// Confirm performs phase two for the tenant scope. A 401 means the
// token is dead: the scope is purged and the session invalidated. Any
// other failure leaves the cached session standing, so a flaky network
// does not log the user out.
func (b *Bootstrap) Confirm(ctx context.Context, client *api.Client) error {
	user, err := client.Me(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			b.Logger.Info("persisted session rejected by backend")
			b.Invalidate(client)
			return err
		}
		b.Logger.Warn("session confirmation unreachable, keeping cached session", "error", err)
		return err
	}

	b.State.Dispatch(state.SessionConfirmed{User: *user})
	if encoded, err := json.Marshal(user); err == nil {
		if err := b.Tokens.Set(tokenstore.ScopeTenant, tokenstore.KeyUser, string(encoded)); err != nil {
			b.Logger.Warn("refreshing cached profile", "error", err)
		}
	}
	return nil
}

// Invalidate purges the tenant scope and clears the session. This is
// the single teardown path shared by logout, a rejected confirmation,
// and the 401 hook.
func (b *Bootstrap) Invalidate(client *api.Client) {
	if err := b.Tokens.ClearScope(tokenstore.ScopeTenant); err != nil {
		b.Logger.Warn("purging tenant credentials", "error", err)
	}
	client.SetToken("")
	b.State.Dispatch(state.SessionInvalidated{})
}

// InstallUnauthorizedPurge arranges for any 401 on the client to tear
// the tenant session down exactly like an explicit logout.
func (b *Bootstrap) InstallUnauthorizedPurge(client *api.Client) {
	client.SetOnUnauthorized(func() {
		b.Logger.Info("unauthorized response, purging session")
		b.Invalidate(client)
	})
}

// RestoreAdmin is phase one for the platform-admin scope.
func (b *Bootstrap) RestoreAdmin(client *api.AdminClient) (bool, error) {
	token, ok, err := b.Tokens.Get(tokenstore.ScopeAdmin, tokenstore.KeyToken)
	if err != nil {
		return false, err
	}
	if !ok || token == "" {
		return false, nil
	}

	var admin *schema.PlatformAdmin
	if cached, found, err := b.Tokens.Get(tokenstore.ScopeAdmin, tokenstore.KeyUser); err == nil && found {
		var decoded schema.PlatformAdmin
		if json.Unmarshal([]byte(cached), &decoded) == nil {
			admin = &decoded
		}
	}
	if admin == nil {
		decoded, err := claims.Decode(token)
		if err != nil {
			b.Logger.Debug("stored admin token carries no usable profile, not restoring")
			return false, nil
		}
		admin = &schema.PlatformAdmin{Email: decoded.Email, Role: decoded.Role}
	}

	client.SetToken(token)
	b.State.Dispatch(state.AdminSessionRestored{Token: token, Admin: admin})
	return true, nil
}

// ConfirmAdmin is phase two for the platform-admin scope.
func (b *Bootstrap) ConfirmAdmin(ctx context.Context, client *api.AdminClient) error {
	admin, err := client.Me(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			b.Logger.Info("persisted admin session rejected by backend")
			b.InvalidateAdmin(client)
			return err
		}
		b.Logger.Warn("admin session confirmation unreachable, keeping cached session", "error", err)
		return err
	}

	b.State.Dispatch(state.AdminSessionConfirmed{Admin: *admin})
	if encoded, err := json.Marshal(admin); err == nil {
		if err := b.Tokens.Set(tokenstore.ScopeAdmin, tokenstore.KeyUser, string(encoded)); err != nil {
			b.Logger.Warn("refreshing cached admin profile", "error", err)
		}
	}
	return nil
}

// InvalidateAdmin purges the admin scope. The tenant scope is never
// touched here.
func (b *Bootstrap) InvalidateAdmin(client *api.AdminClient) {
	if err := b.Tokens.ClearScope(tokenstore.ScopeAdmin); err != nil {
		b.Logger.Warn("purging admin credentials", "error", err)
	}
	client.SetToken("")
	b.State.Dispatch(state.AdminSessionInvalidated{})
}

// InstallAdminUnauthorizedPurge mirrors InstallUnauthorizedPurge for
// the admin client.
func (b *Bootstrap) InstallAdminUnauthorizedPurge(client *api.AdminClient) {
	client.SetOnUnauthorized(func() {
		b.Logger.Info("unauthorized admin response, purging session")
		b.InvalidateAdmin(client)
	})
}

// ResolveTenant picks the active tenant identifier. Precedence:
// explicit flag, then the stored value from the last session, then the
// configured default. The winner is written back to the store so the
// next invocation starts from it.
func (b *Bootstrap) ResolveTenant(flagValue, configDefault string) (string, error) {
	id := flagValue
	source := "flag"
	if id == "" {
		stored, ok, err := b.Tokens.Get(tokenstore.ScopeTenant, tokenstore.KeyTenant)
		if err != nil {
			return "", err
		}
		if ok && stored != "" {
			id, source = stored, "stored"
		}
	}
	if id == "" {
		id, source = configDefault, "default"
	}
	if id == "" {
		return "", fmt.Errorf("no tenant selected: pass --tenant or set a default in the config file")
	}

	if err := b.Tokens.Set(tokenstore.ScopeTenant, tokenstore.KeyTenant, id); err != nil {
		return "", fmt.Errorf("persisting tenant selection: %w", err)
	}
	b.State.Dispatch(state.TenantResolved{ID: id, Source: source})
	b.Logger.Debug("tenant resolved", "tenant", id, "source", source)
	return id, nil
}
