// Copyright (c) 2026 Folio. All rights reserved.
// Author: code@chalkfarm.mx

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
  - DI-Friendly: Passed to core components (DB, Redis, ISBNdb client) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
A missing ISBNDB_WEBSERVICE_API_KEY aborts startup rather than failing lazily
on the first remote lookup.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/chalkfarm/folio/pkg/slice"
)

// # Configuration Schema

// Config holds all runtime configuration for the Folio API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Remote bibliographic service (isbndb.com)
	ISBNdbAPIKey  string        `env:"ISBNDB_WEBSERVICE_API_KEY,required"`
	ISBNdbBaseURL string        `env:"ISBNDB_BASE_URL" envDefault:"https://api2.isbndb.com"`
	ISBNdbTimeout time.Duration `env:"ISBNDB_TIMEOUT"  envDefault:"10s"`

	// StaticDir is the root directory for the /css /js /fonts /media routes.
	StaticDir string `env:"STATIC_DIR" envDefault:"./staticfiles"`

	// ExtraOrigins is a comma-separated list of origins allowed to call the
	// API in production besides the first-party domains, e.g. a partner
	// catalog frontend. See [Config.AllowedOrigins].
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

// AllowedOrigins returns the parsed EXTRA_ORIGINS list. Whitespace around
// entries is tolerated; empty entries are dropped.
func (c *Config) AllowedOrigins() []string {
	return slice.Filter(
		slice.Map(strings.Split(c.ExtraOrigins, ","), strings.TrimSpace),
		func(origin string) bool { return origin != "" },
	)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
