// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package kv defines the small key-value contract used to persist user
preferences (favorites, theme) and its backends.

Backends:

  - [MemoryStore]: process-local map, lost on restart.
  - [SQLiteStore]: local database file, the default.
  - [RedisStore]: shared across directory instances.
  - [PostgresStore]: shared, for deployments that already run PostgreSQL.

Every write is synchronous. There is no TTL and no eviction: a value lives
until it is overwritten or the storage is cleared externally.
*/
package kv

import (
	"context"

	"github.com/taibuivan/restaurants/internal/platform/apperr"
)

// ErrNotFound is returned by [Store.Get] when the key has never been written.
var ErrNotFound = apperr.NotFound("Key")

// Store is a string-to-string persistent map.
type Store interface {
	// Get returns the value stored under key, or [ErrNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
