// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bootstrap_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/restaurants/internal/platform/bootstrap"
	"github.com/taibuivan/restaurants/internal/platform/config"
	"github.com/taibuivan/restaurants/internal/platform/kv"
	"github.com/taibuivan/restaurants/internal/restaurant"
)

var discard = slog.New(slog.NewJSONHandler(io.Discard, nil))

/*
TestOpen_Backends opens each non-postgres key-value backend.
*/
func TestOpen_Backends(t *testing.T) {
	server := miniredis.RunT(t)

	tests := []struct {
		name string
		cfg  config.Config
		want any
	}{
		{"memory", config.Config{KVBackend: config.KVBackendMemory}, &kv.MemoryStore{}},
		{"sqlite", config.Config{KVBackend: config.KVBackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "nested", "directory.db")}, &kv.SQLiteStore{}},
		{"redis", config.Config{KVBackend: config.KVBackendRedis, RedisURL: "redis://" + server.Addr(), RedisKeyPrefix: "test:"}, &kv.RedisStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			backends, err := bootstrap.Open(ctx, &tt.cfg, discard)
			require.NoError(t, err)
			t.Cleanup(backends.Close)

			assert.IsType(t, tt.want, backends.KV)
			assert.Nil(t, backends.Pool)

			require.NoError(t, backends.KV.Set(ctx, "k", "v"))
			value, err := backends.KV.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "v", value)
		})
	}
}

/*
TestOpen_Failures surfaces unreachable or unknown backends.
*/
func TestOpen_Failures(t *testing.T) {
	_, err := bootstrap.Open(context.Background(), &config.Config{KVBackend: "etcd"}, discard)
	assert.Error(t, err)

	_, err = bootstrap.Open(context.Background(), &config.Config{KVBackend: config.KVBackendRedis, RedisURL: "not-a-url"}, discard)
	assert.Error(t, err)
}

/*
TestSource picks the file source without a pool.
*/
func TestSource(t *testing.T) {
	cfg := &config.Config{KVBackend: config.KVBackendMemory, DatasetSource: config.DatasetSourceFile, DatasetPath: "restaurants.json"}
	backends, err := bootstrap.Open(context.Background(), cfg, discard)
	require.NoError(t, err)
	defer backends.Close()

	assert.IsType(t, &restaurant.FileSource{}, backends.Source(cfg))
}
