// Copyright 2026 The Rollcall Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the Rollcall
// console.
//
// Configuration is read from a single file named by the ROLLCALL_CONFIG
// environment variable or a --config flag. There is no automatic file
// discovery; when no file is named, the built-in development defaults
// apply. The file may contain environment-specific sections
// (development, staging, production) that override base values when the
// environment matches, and ${VAR} patterns in the base URL are expanded
// after loading.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development against a dev backend.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for live school deployments.
	Production Environment = "production"
)

// Config is the console configuration.
type Config struct {
	// Environment identifies the deployment type.
	Environment Environment `yaml:"environment"`

	// API configures the backend endpoints.
	API APIConfig `yaml:"api"`

	// Tenant configures tenant identifier resolution.
	Tenant TenantConfig `yaml:"tenant"`

	// Per-environment overrides, applied after the base values.
	Development *Overrides `yaml:"development,omitempty"`
	Staging     *Overrides `yaml:"staging,omitempty"`
	Production  *Overrides `yaml:"production,omitempty"`
}

// APIConfig configures the backend API endpoints.
type APIConfig struct {
	// BaseURL is the backend origin, e.g. "https://api.rollcall.app".
	BaseURL string `yaml:"base_url"`

	// TenantPrefix is the tenant API path prefix under BaseURL.
	TenantPrefix string `yaml:"tenant_prefix"`

	// AdminPrefix is the platform-admin API path prefix under BaseURL.
	AdminPrefix string `yaml:"admin_prefix"`

	// TimeoutSeconds bounds every request. Default 30.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// TenantConfig configures tenant resolution.
type TenantConfig struct {
	// Default is the tenant identifier used when neither the --tenant
	// flag nor a stored value is present.
	Default string `yaml:"default"`
}

// Overrides contains the fields that can be overridden per environment.
type Overrides struct {
	API    *APIConfig    `yaml:"api,omitempty"`
	Tenant *TenantConfig `yaml:"tenant,omitempty"`
}

// Default returns the development defaults. These are a working base
// for a local backend; a deployment names its real endpoints in the
// config file.
func Default() *Config {
	return &Config{
		Environment: Development,
		API: APIConfig{
			BaseURL:        "http://localhost:8000",
			TenantPrefix:   "/api/v1",
			AdminPrefix:    "/api/v1/super-admin",
			TimeoutSeconds: 30,
		},
		Tenant: TenantConfig{
			Default: "demo",
		},
	}
}

// Load reads configuration from the path in ROLLCALL_CONFIG. When the
// variable is unset the built-in defaults are returned, so the console
// works out of the box against a local backend.
func Load() (*Config, error) {
	configPath := os.Getenv("ROLLCALL_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile reads configuration from a specific file path. The file is
// the single source of truth; environment variables do not override
// its values. The only expansion performed is ${VAR} in the base URL.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	cfg.API.BaseURL = expandVariables(cfg.API.BaseURL)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnvironmentOverrides merges the section matching Environment
// over the base values.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}

	if overrides.API != nil {
		if overrides.API.BaseURL != "" {
			c.API.BaseURL = overrides.API.BaseURL
		}
		if overrides.API.TenantPrefix != "" {
			c.API.TenantPrefix = overrides.API.TenantPrefix
		}
		if overrides.API.AdminPrefix != "" {
			c.API.AdminPrefix = overrides.API.AdminPrefix
		}
		if overrides.API.TimeoutSeconds != 0 {
			c.API.TimeoutSeconds = overrides.API.TimeoutSeconds
		}
	}
	if overrides.Tenant != nil && overrides.Tenant.Default != "" {
		c.Tenant.Default = overrides.Tenant.Default
	}
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	switch c.Environment {
	case Development, Staging, Production:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns.
func expandVariables(value string) string {
	return os.Expand(value, func(name string) string {
		if idx := strings.Index(name, ":-"); idx >= 0 {
			if env := os.Getenv(name[:idx]); env != "" {
				return env
			}
			return name[idx+2:]
		}
		return os.Getenv(name)
	})
}
