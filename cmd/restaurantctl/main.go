// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command restaurantctl is the operator CLI of the restaurant directory.
//
// It shares configuration (environment variables) and storage wiring with the
// API server:
//
//	restaurantctl import planilha.csv --out data/restaurants.json
//	restaurantctl stats
//	restaurantctl filter --city "São Paulo" -q bar
//	restaurantctl validate-menus
//	restaurantctl favorites prune
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/restaurants/internal/platform/bootstrap"
	"github.com/taibuivan/restaurants/internal/platform/config"
	"github.com/taibuivan/restaurants/internal/platform/constants"
	"github.com/taibuivan/restaurants/internal/restaurant"
)

// cli carries state shared by every subcommand.
type cli struct {
	cfg    *config.Config
	logger *slog.Logger

	datasetPath string
	verbose     bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand assembles the command tree.
func newRootCommand() *cobra.Command {
	state := &cli{}

	root := &cobra.Command{
		Use:           "restaurantctl",
		Short:         "Operate the restaurant directory dataset and preferences",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&state.datasetPath, "dataset", "", "dataset file (json, yaml or csv); overrides DATASET_PATH")
	root.PersistentFlags().BoolVarP(&state.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newImportCommand(state),
		newStatsCommand(state),
		newFilterCommand(state),
		newValidateMenusCommand(state),
		newFavoritesCommand(state),
	)
	return root
}

// init loads configuration and the logger before any subcommand runs.
func (state *cli) init(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if state.verbose {
		level = slog.LevelDebug
	}
	state.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName+"-ctl"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if state.datasetPath != "" {
		cfg.DatasetPath = state.datasetPath
		cfg.DatasetSource = config.DatasetSourceFile
	}
	state.cfg = cfg
	return nil
}

/*
open loads the catalog and opens the storage backends it needs.

A file dataset needs no backend, so backends are only opened for a postgres
dataset or when needKV is set. The returned backends may be nil; closing nil
is safe.
*/
func (state *cli) open(ctx context.Context, needKV bool) (*bootstrap.Backends, *restaurant.Catalog, error) {
	var backends *bootstrap.Backends
	source := restaurant.Source(restaurant.NewFileSource(state.cfg.DatasetPath))

	if needKV || state.cfg.DatasetSource == config.DatasetSourcePostgres {
		opened, err := bootstrap.Open(ctx, state.cfg, state.logger)
		if err != nil {
			return nil, nil, err
		}
		backends = opened
		source = backends.Source(state.cfg)
	}

	catalog, err := restaurant.LoadCatalog(ctx, source, state.logger)
	if err != nil {
		backends.Close()
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}
	return backends, catalog, nil
}
