// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package restaurant_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/restaurants/internal/platform/migration"
	pgstore "github.com/taibuivan/restaurants/internal/platform/postgres"
	"github.com/taibuivan/restaurants/internal/restaurant"
)

/*
TestPostgresSource_ReplaceAndLoad round-trips the dataset through core.restaurant
when TEST_DATABASE_URL is set.
*/
func TestPostgresSource_ReplaceAndLoad(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	require.NoError(t, migration.RunUp(dsn, "../../data/migrations", logger))
	pool, err := pgstore.NewPool(ctx, dsn, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	source := restaurant.NewPostgresSource(pool)
	records := []restaurant.Restaurant{
		{Name: "Zeta", City: "Recife"},
		{Name: "Alfa", City: "Olinda", Reservation: restaurant.ReservationYes},
	}

	written, err := source.Replace(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, int64(2), written)

	loaded, err := source.Load(ctx)
	require.NoError(t, err)
	// Position order, not alphabetical
	assert.Equal(t, records, loaded)
}
