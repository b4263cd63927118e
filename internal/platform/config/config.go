// Copyright (c) 2026 Yomira. All rights reserved.
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

Once loaded, configuration is read-only and passed to components through
their constructors.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Dataset sources.
const (
	DatasetSourceFile     = "file"
	DatasetSourcePostgres = "postgres"
)

// Key-value backends used for favorites and theme persistence.
const (
	KVBackendMemory   = "memory"
	KVBackendSQLite   = "sqlite"
	KVBackendRedis    = "redis"
	KVBackendPostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the directory API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Restaurant dataset
	DatasetSource string `env:"DATASET_SOURCE" envDefault:"file"`
	DatasetPath   string `env:"DATASET_PATH"   envDefault:"./data/restaurants.json"`

	// Favorites / theme persistence
	KVBackend      string `env:"KV_BACKEND"       envDefault:"sqlite"`
	SQLitePath     string `env:"SQLITE_PATH"      envDefault:"./data/directory.db"`
	RedisURL       string `env:"REDIS_URL"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"directory:"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Cross-Origin Resource Sharing, comma-separated origin suffixes
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field requirements env tags cannot express.
func (c *Config) Validate() error {
	switch c.DatasetSource {
	case DatasetSourceFile:
		if c.DatasetPath == "" {
			return fmt.Errorf("config: DATASET_PATH is required for the file dataset source")
		}
	case DatasetSourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the postgres dataset source")
		}
	default:
		return fmt.Errorf("config: unknown DATASET_SOURCE %q", c.DatasetSource)
	}

	switch c.KVBackend {
	case KVBackendMemory:
	case KVBackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("config: SQLITE_PATH is required for the sqlite backend")
		}
	case KVBackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config: REDIS_URL is required for the redis backend")
		}
	case KVBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("config: unknown KV_BACKEND %q", c.KVBackend)
	}

	return nil
}

// UsesPostgres reports whether any component needs the PostgreSQL pool.
func (c *Config) UsesPostgres() bool {
	return c.DatasetSource == DatasetSourcePostgres || c.KVBackend == KVBackendPostgres
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
