// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

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
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Consumo API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`
	Testing     bool   `env:"TESTING"      envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis) used by the authorization gate's identity cache.
	RedisURL string `env:"REDIS_URL,required"`

	// Token signing secret (HS256) and default access-token lifetime.
	JWTSecret       string `env:"JWT_SECRET,required"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES" envDefault:"30"`

	// Blob storage base URL for user/product/blog images.
	BlobBaseURL string `env:"BLOB_BASE_URL" envDefault:"https://bucket.lucantel.es/consume-images/"`

	// AccessLogPath is the append-only file that receives resource-access records.
	AccessLogPath string `env:"ACCESS_LOG_PATH" envDefault:"./logs/access.log"`
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

// TokenTTL returns the configured default access-token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// MaskedDatabaseURL returns the database DSN with its credential replaced by
// asterisks, safe to include in startup logs. Passwords never reach the logs.
func (c *Config) MaskedDatabaseURL() string {
	return MaskDSN(c.DatabaseURL)
}

// MaskDSN hides the password component of a URL-style DSN.
// Inputs that do not parse as URLs are returned fully masked rather than leaked.
func MaskDSN(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return "****"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "****")
		}
	}

	// url.String escapes the asterisks; undo that for readability.
	masked, err := url.PathUnescape(parsed.String())
	if err != nil {
		return parsed.String()
	}
	return masked
}
