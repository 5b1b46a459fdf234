// Copyright (c) 2026 Glossa. All rights reserved.
// Author: dev@glossa.app

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, providers) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Glossa API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"5500"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL). When empty, the server falls back to
	// the volatile in-memory stores; accounts and history reset on restart.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). When empty, translation caching is disabled.
	RedisURL string `env:"REDIS_URL"`

	// SessionSecret signs session tokens (HS256). Must be non-empty.
	SessionSecret string `env:"SESSION_SECRET,required"`

	// Translation providers. Primary endpoints are document-style
	// (LibreTranslate shape) and are tried strictly in list order; the backup
	// endpoint is the free-form query-string provider tried exactly once
	// after all primaries are exhausted.
	PrimaryProviders []string      `env:"TRANSLATE_PRIMARY_ENDPOINTS" envSeparator:"," envDefault:"https://translate.argosopentech.com/translate,https://libretranslate.de/translate"`
	BackupProvider   string        `env:"TRANSLATE_BACKUP_ENDPOINT"   envDefault:"https://translate.googleapis.com/translate_a/single"`
	ProviderTimeout  time.Duration `env:"TRANSLATE_PROVIDER_TIMEOUT"  envDefault:"5500ms"`

	// CacheTTL is how long accepted translations stay in the Redis cache.
	CacheTTL time.Duration `env:"TRANSLATE_CACHE_TTL" envDefault:"24h"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigin reports whether the origin may make cross-origin requests
// in production. The platform domain is always allowed; additional origins
// come from EXTRA_ORIGINS (comma-separated).
func (c *Config) AllowedOrigin(origin string) bool {
	if strings.HasSuffix(origin, "glossa.app") {
		return true
	}
	for _, extra := range strings.Split(c.ExtraOrigins, ",") {
		if extra != "" && origin == strings.TrimSpace(extra) {
			return true
		}
	}
	return false
}
