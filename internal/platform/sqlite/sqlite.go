// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sqlite opens the local, file-backed SQLite database that plays the role
of browser local storage for a single directory instance.

It uses the pure-Go modernc.org/sqlite driver, so no cgo toolchain is needed.
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"
)

const (
	// busyTimeoutMillis lets concurrent writers wait instead of failing with SQLITE_BUSY.
	busyTimeoutMillis = 5000
	pingTimeout       = 2 * time.Second
)

// MemoryPath opens a private in-memory database (used in tests and ephemeral runs).
const MemoryPath = ":memory:"

// Open creates the database handle for path and validates it with a ping.
//
// # Parameters
//   - ctx: Context for the initial ping.
//   - path: Filesystem path, or [MemoryPath].
//   - logger: Structured logger for connection events.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}

	// SQLite serialises writers; one connection keeps in-memory databases
	// alive and avoids lock contention on files.
	db.SetMaxOpenConns(1)

	if err := Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite database opened", slog.String("path", path))
	return db, nil
}

// Ping verifies that the database handle is usable.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}

func dsn(path string) string {
	if path == MemoryPath {
		return path
	}
	pragmas := []string{
		fmt.Sprintf("_pragma=busy_timeout(%d)", busyTimeoutMillis),
		"_pragma=journal_mode(WAL)",
	}
	return "file:" + path + "?" + strings.Join(pragmas, "&")
}
