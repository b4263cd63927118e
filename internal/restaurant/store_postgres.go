// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package restaurant

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/restaurants/internal/platform/constants"
	"github.com/taibuivan/restaurants/internal/platform/database/schema"
	"github.com/taibuivan/restaurants/internal/platform/dberr"
)

// PostgresSource loads the dataset from core.restaurant, ordered by position.
type PostgresSource struct {
	db *pgxpool.Pool
}

// NewPostgresSource creates a source on an existing pool.
func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

// Load implements [Source].
func (source *PostgresSource) Load(ctx context.Context) ([]Restaurant, error) {
	table := schema.CoreRestaurant
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		strings.Join(table.RecordColumns(), ", "), table.Table, table.Position)

	rows, err := source.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_restaurants")
	}
	defer rows.Close()

	records := make([]Restaurant, 0)
	for rows.Next() {
		var r Restaurant
		if err := rows.Scan(
			&r.Name, &r.Address, &r.City, &r.Neighborhood, &r.FoodType, &r.Type, &r.Occasion,
			&r.Region, &r.State, &r.Priority, &r.Menu, &r.Status, &r.Reservation,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_restaurant")
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_restaurants")
	}

	return records, nil
}

/*
Replace swaps the whole dataset in one transaction.

Parameters:
  - ctx: context.Context
  - records: []Restaurant (stored with their slice index as position)

Returns:
  - int64: Rows written
  - error: Transaction or copy failures
*/
func (source *PostgresSource) Replace(ctx context.Context, records []Restaurant) (int64, error) {
	tx, err := source.db.Begin(ctx)
	if err != nil {
		return 0, dberr.Wrap(err, "begin_replace_restaurants")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	table := schema.CoreRestaurant
	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, table.Table)); err != nil {
		return 0, dberr.Wrap(err, "clear_restaurants")
	}

	written, err := tx.CopyFrom(ctx,
		pgx.Identifier{constants.SchemaCore, table.Relation},
		table.Columns(),
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{
				i, r.Name, r.Address, r.City, r.Neighborhood, r.FoodType, r.Type, r.Occasion,
				r.Region, r.State, r.Priority, r.Menu, r.Status, r.Reservation,
			}, nil
		}),
	)
	if err != nil {
		return 0, dberr.Wrap(err, "copy_restaurants")
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, dberr.Wrap(err, "commit_replace_restaurants")
	}
	return written, nil
}
