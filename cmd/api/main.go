// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the restaurant directory HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open storage backends (PostgreSQL + migrations when needed, key-value store).
//  4. Load the restaurant catalog.
//  5. Restore favorites and theme preference.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/restaurants/internal/api"
	"github.com/taibuivan/restaurants/internal/directory"
	"github.com/taibuivan/restaurants/internal/favorites"
	"github.com/taibuivan/restaurants/internal/platform/bootstrap"
	"github.com/taibuivan/restaurants/internal/platform/config"
	"github.com/taibuivan/restaurants/internal/platform/constants"
	pgstore "github.com/taibuivan/restaurants/internal/platform/postgres"
	"github.com/taibuivan/restaurants/internal/restaurant"
	"github.com/taibuivan/restaurants/internal/theme"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("dataset_source", cfg.DatasetSource),
		slog.String("kv_backend", cfg.KVBackend),
	)

	// Startup deadline so misconfiguration is caught quickly rather than
	// hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Storage ────────────────────────────────────────────────────────
	backends, err := bootstrap.Open(startupCtx, cfg, log)
	must(log, err, "open storage backends")
	defer func() {
		log.Info("closing storage backends")
		backends.Close()
	}()

	// ── 4. Catalog ────────────────────────────────────────────────────────
	catalog, err := restaurant.LoadCatalog(startupCtx, backends.Source(cfg), log)
	must(log, err, "load restaurant catalog")

	// ── 5. Preferences ────────────────────────────────────────────────────
	favoriteStore := favorites.NewStore(backends.KV, log)
	favoriteStore.Load(startupCtx)

	preference := theme.NewPreference(backends.KV, log)
	preference.Load(startupCtx)

	// ── 6. Wiring ─────────────────────────────────────────────────────────
	checks := []api.HealthCheck{{Name: cfg.KVBackend, Check: backends.KV.Ping}}
	if backends.Pool != nil && cfg.KVBackend != config.KVBackendPostgres {
		checks = append(checks, api.HealthCheck{
			Name:  "postgres",
			Check: func(ctx context.Context) error { return pgstore.Ping(ctx, backends.Pool) },
		})
	}
	liveness, readiness := api.NewHealthHandlers(checks, log)

	session := directory.NewSession(catalog, favoriteStore, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Directory: directory.NewHandler(session),
		Theme:     theme.NewHandler(preference),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// newLogger builds the JSON logger tagged with the application name.
func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
