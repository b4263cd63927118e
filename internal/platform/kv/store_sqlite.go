// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/taibuivan/restaurants/internal/platform/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStore persists values in a single table of a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps db. Call [SQLiteStore.Init] before first use.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Init creates the kv table if it does not exist.
func (store *SQLiteStore) Init(ctx context.Context) error {
	if _, err := store.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("kv: create sqlite schema: %w", err)
	}
	return nil
}

// Get implements [Store].
func (store *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := store.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("kv_sqlite_get_failed: %w", err)
	}
	return value, nil
}

// Set implements [Store].
func (store *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := store.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("kv_sqlite_set_failed: %w", err)
	}
	return nil
}

// Ping implements [Store].
func (store *SQLiteStore) Ping(ctx context.Context) error {
	return sqlite.Ping(ctx, store.db)
}
