// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"time"

	"github.com/rollcall-hq/rollcall/lib/api"
	"github.com/rollcall-hq/rollcall/lib/bootstrap"
	"github.com/rollcall-hq/rollcall/lib/config"
	"github.com/rollcall-hq/rollcall/lib/state"
	"github.com/rollcall-hq/rollcall/lib/tokenstore"
)

// SessionFlags is the embeddable parameter bundle shared by every
// command that talks to the backend.
type SessionFlags struct {
	Tenant     string `flag:"tenant" desc:"tenant identifier (school slug)"`
	ConfigPath string `flag:"config" desc:"path to the config file (overrides ROLLCALL_CONFIG)"`
}

// Session is the assembled runtime a command operates in: config,
// credential store, state store, and the tenant API client with any
// persisted session already restored onto it.
type Session struct {
	Config   *config.Config
	Tokens   *tokenstore.Store
	State    *state.Store
	Boot     *bootstrap.Bootstrap
	Client   *api.Client
	TenantID string

	// Restored is true when a persisted token was found and installed.
	Restored bool
}

// LoadSession builds the tenant session: load config, open the
// credential store, resolve the tenant, restore any persisted token,
// and arm the 401 purge hook. The restored session is optimistic;
// commands just issue their call and let the backend be the judge.
func LoadSession(flags SessionFlags, logger *slog.Logger) (*Session, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, Validation("%v", err)
	}

	tokens, err := tokenstore.Open(tokenstore.Dir())
	if err != nil {
		return nil, Internal("%v", err)
	}

	stateStore := state.NewStore()
	boot := &bootstrap.Bootstrap{Tokens: tokens, State: stateStore, Logger: logger}

	client := api.New(api.Options{
		BaseURL: cfg.API.BaseURL + cfg.API.TenantPrefix,
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	})

	tenantID, err := boot.ResolveTenant(flags.Tenant, cfg.Tenant.Default)
	if err != nil {
		return nil, Validation("%v", err)
	}
	client.SetTenant(tenantID)

	restored, err := boot.Restore(client)
	if err != nil {
		return nil, Internal("restoring session: %v", err)
	}
	boot.InstallUnauthorizedPurge(client)

	return &Session{
		Config:   cfg,
		Tokens:   tokens,
		State:    stateStore,
		Boot:     boot,
		Client:   client,
		TenantID: tenantID,
		Restored: restored,
	}, nil
}

// RequireAuth returns an error when no session is restored. Commands
// that need a token call this before touching the backend so the user
// gets "log in first" instead of a bare 401.
func (s *Session) RequireAuth() error {
	if !s.Restored {
		return Unauthenticated("not logged in: run 'rollcall login' first")
	}
	return nil
}

// AdminSession is the platform-admin counterpart of [Session].
type AdminSession struct {
	Config   *config.Config
	Tokens   *tokenstore.Store
	State    *state.Store
	Boot     *bootstrap.Bootstrap
	Client   *api.AdminClient
	Restored bool
}

// LoadAdminSession builds the platform-admin session. It shares the
// credential directory with the tenant session but reads only the
// admin scope; neither surface can see the other's token.
func LoadAdminSession(flags SessionFlags, logger *slog.Logger) (*AdminSession, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, Validation("%v", err)
	}

	tokens, err := tokenstore.Open(tokenstore.Dir())
	if err != nil {
		return nil, Internal("%v", err)
	}

	stateStore := state.NewStore()
	boot := &bootstrap.Bootstrap{Tokens: tokens, State: stateStore, Logger: logger}

	client := api.NewAdmin(api.Options{
		BaseURL: cfg.API.BaseURL + cfg.API.AdminPrefix,
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	})

	restored, err := boot.RestoreAdmin(client)
	if err != nil {
		return nil, Internal("restoring admin session: %v", err)
	}
	boot.InstallAdminUnauthorizedPurge(client)

	return &AdminSession{
		Config:   cfg,
		Tokens:   tokens,
		State:    stateStore,
		Boot:     boot,
		Client:   client,
		Restored: restored,
	}, nil
}

// RequireAuth mirrors [Session.RequireAuth] for the admin surface.
func (s *AdminSession) RequireAuth() error {
	if !s.Restored {
		return Unauthenticated("not logged in: run 'rollcall admin login' first")
	}
	return nil
}

func loadConfig(flags SessionFlags) (*config.Config, error) {
	if flags.ConfigPath != "" {
		return config.LoadFile(flags.ConfigPath)
	}
	return config.Load()
}
