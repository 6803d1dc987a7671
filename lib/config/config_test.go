// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rollcall.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFileBaseValues(t *testing.T) {
	path := writeConfig(t, `
environment: development
api:
  base_url: https://api.example.test
tenant:
  default: northside
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.test" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Tenant.Default != "northside" {
		t.Errorf("Tenant.Default = %q", cfg.Tenant.Default)
	}
	// Unset fields keep the built-in defaults.
	if cfg.API.TenantPrefix != "/api/v1" {
		t.Errorf("TenantPrefix = %q", cfg.API.TenantPrefix)
	}
	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d", cfg.API.TimeoutSeconds)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
environment: production
api:
  base_url: http://localhost:8000
production:
  api:
    base_url: https://api.rollcall.example
    timeout_seconds: 10
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.API.BaseURL != "https://api.rollcall.example" {
		t.Errorf("BaseURL = %q, override not applied", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, override not applied", cfg.API.TimeoutSeconds)
	}
}

func TestOverridesForOtherEnvironmentIgnored(t *testing.T) {
	path := writeConfig(t, `
environment: development
api:
  base_url: http://localhost:8000
production:
  api:
    base_url: https://api.rollcall.example
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %q, production override leaked into development", cfg.API.BaseURL)
	}
}

func TestVariableExpansion(t *testing.T) {
	t.Setenv("ROLLCALL_TEST_HOST", "api.internal.test")
	path := writeConfig(t, `
api:
  base_url: https://${ROLLCALL_TEST_HOST}
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.API.BaseURL != "https://api.internal.test" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
}

func TestValidationRejectsBadURL(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: ftp://nope
`)
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected validation error for non-http URL")
	}
}

func TestLoadWithoutEnvReturnsDefaults(t *testing.T) {
	t.Setenv("ROLLCALL_CONFIG", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" || cfg.Tenant.Default != "demo" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
