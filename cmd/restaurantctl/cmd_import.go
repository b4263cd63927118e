// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/restaurants/internal/platform/bootstrap"
	"github.com/taibuivan/restaurants/internal/platform/config"
	"github.com/taibuivan/restaurants/internal/restaurant"
)

func newImportCommand(state *cli) *cobra.Command {
	var (
		outPath    string
		toPostgres bool
	)

	cmd := &cobra.Command{
		Use:   "import <spreadsheet.csv>",
		Short: "Convert a spreadsheet export into the directory dataset",
		Long: `Reads a CSV export of the restaurant spreadsheet, skipping template and
incomplete rows, and writes it as a JSON or YAML dataset (by --out extension)
or replaces the core.restaurant table with --postgres.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" && !toPostgres {
				return fmt.Errorf("one of --out or --postgres is required")
			}

			records, err := restaurant.NewFileSource(args[0]).Load(cmd.Context())
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := writeDataset(outPath, records); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d restaurants to %s\n", len(records), outPath)
			}

			if toPostgres {
				cfg := *state.cfg
				cfg.DatasetSource = config.DatasetSourcePostgres
				cfg.KVBackend = config.KVBackendMemory
				if err := cfg.Validate(); err != nil {
					return err
				}

				backends, err := bootstrap.Open(cmd.Context(), &cfg, state.logger)
				if err != nil {
					return err
				}
				defer backends.Close()

				written, err := restaurant.NewPostgresSource(backends.Pool).Replace(cmd.Context(), records)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "replaced core.restaurant with %d rows\n", written)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output dataset file (.json, .yaml or .yml)")
	cmd.Flags().BoolVar(&toPostgres, "postgres", false, "replace the dataset table in DATABASE_URL")
	return cmd
}

// writeDataset encodes records to path, replacing it atomically.
func writeDataset(path string, records []restaurant.Restaurant) error {
	format, err := restaurant.FormatFromPath(path)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}

	if err := restaurant.Encode(file, records, format); err != nil {
		_ = file.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	return os.Rename(tmp, path)
}
