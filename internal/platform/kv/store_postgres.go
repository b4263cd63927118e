// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/restaurants/internal/platform/database/schema"
	"github.com/taibuivan/restaurants/internal/platform/dberr"
	pgstore "github.com/taibuivan/restaurants/internal/platform/postgres"
)

// PostgresStore implements [Store] on the core.kv table created by migrations.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a store on an existing pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Get implements [Store].
func (store *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	table := schema.CoreKV
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, table.Value, table.Table, table.Key)

	var value string
	if err := store.db.QueryRow(ctx, query, key).Scan(&value); err != nil {
		wrapped := dberr.Wrap(err, "kv_get")
		if errors.Is(wrapped, dberr.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", wrapped
	}
	return value, nil
}

// Set implements [Store].
func (store *PostgresStore) Set(ctx context.Context, key, value string) error {
	table := schema.CoreKV
	query := fmt.Sprintf(`
		INSERT INTO %s (%s) VALUES ($1, $2, now())
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s`,
		table.Table, strings.Join(table.Columns(), ", "),
		table.Key, table.Value, table.Value, table.UpdatedAt, table.UpdatedAt,
	)
	if _, err := store.db.Exec(ctx, query, key, value); err != nil {
		return dberr.Wrap(err, "kv_set")
	}
	return nil
}

// Ping implements [Store].
func (store *PostgresStore) Ping(ctx context.Context) error {
	return pgstore.Ping(ctx, store.db)
}
