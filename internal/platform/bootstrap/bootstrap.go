// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package bootstrap opens the storage backends selected by [config.Config].

Both the API server and the operator CLI start the same way:

 1. Connect to PostgreSQL and run migrations, when any component needs it.
 2. Open the key-value backend (memory, sqlite, redis or postgres).
 3. Pick the dataset source (file or postgres).

Callers own the returned [Backends] and must Close it.
*/
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/restaurants/internal/platform/config"
	"github.com/taibuivan/restaurants/internal/platform/kv"
	"github.com/taibuivan/restaurants/internal/platform/migration"
	pgstore "github.com/taibuivan/restaurants/internal/platform/postgres"
	redisstore "github.com/taibuivan/restaurants/internal/platform/redis"
	"github.com/taibuivan/restaurants/internal/platform/sqlite"
	"github.com/taibuivan/restaurants/internal/restaurant"
)

// Backends holds every opened connection. Unused ones stay nil.
type Backends struct {
	Pool   *pgxpool.Pool
	Redis  *goredis.Client
	SQLite *sql.DB

	// KV is the preference store for favorites and theme.
	KV kv.Store

	logger *slog.Logger
}

// Open connects everything cfg asks for. On failure, whatever was already
// opened is closed again.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backends, error) {
	backends := &Backends{logger: logger}

	if err := backends.open(ctx, cfg); err != nil {
		backends.Close()
		return nil, err
	}
	return backends, nil
}

func (backends *Backends) open(ctx context.Context, cfg *config.Config) error {
	// # PostgreSQL
	if cfg.UsesPostgres() {
		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, backends.logger)
		if err != nil {
			return fmt.Errorf("bootstrap: connect to postgres: %w", err)
		}
		backends.Pool = pool

		if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, backends.logger); err != nil {
			return fmt.Errorf("bootstrap: run migrations: %w", err)
		}
	}

	// # Key-value backend
	switch cfg.KVBackend {
	case config.KVBackendMemory:
		backends.KV = kv.NewMemoryStore()

	case config.KVBackendSQLite:
		if cfg.SQLitePath != sqlite.MemoryPath {
			if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
				return fmt.Errorf("bootstrap: create sqlite directory: %w", err)
			}
		}
		db, err := sqlite.Open(ctx, cfg.SQLitePath, backends.logger)
		if err != nil {
			return err
		}
		backends.SQLite = db

		store := kv.NewSQLiteStore(db)
		if err := store.Init(ctx); err != nil {
			return err
		}
		backends.KV = store

	case config.KVBackendRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisURL, backends.logger)
		if err != nil {
			return fmt.Errorf("bootstrap: connect to redis: %w", err)
		}
		backends.Redis = client
		backends.KV = kv.NewRedisStore(client, cfg.RedisKeyPrefix)

	case config.KVBackendPostgres:
		backends.KV = kv.NewPostgresStore(backends.Pool)

	default:
		return fmt.Errorf("bootstrap: unknown kv backend %q", cfg.KVBackend)
	}

	backends.logger.Info("kv_backend_ready", slog.String("backend", cfg.KVBackend))
	return nil
}

// Source returns the dataset source selected by cfg.
func (backends *Backends) Source(cfg *config.Config) restaurant.Source {
	if cfg.DatasetSource == config.DatasetSourcePostgres && backends.Pool != nil {
		return restaurant.NewPostgresSource(backends.Pool)
	}
	return restaurant.NewFileSource(cfg.DatasetPath)
}

// Close releases every opened connection. A nil receiver is a no-op.
func (backends *Backends) Close() {
	if backends == nil {
		return
	}
	if backends.Redis != nil {
		if err := backends.Redis.Close(); err != nil {
			backends.logger.Error("redis_close_failed", slog.Any("error", err))
		}
	}
	if backends.SQLite != nil {
		if err := backends.SQLite.Close(); err != nil {
			backends.logger.Error("sqlite_close_failed", slog.Any("error", err))
		}
	}
	if backends.Pool != nil {
		backends.Pool.Close()
	}
}
