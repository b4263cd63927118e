// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taibuivan/restaurants/internal/menucheck"
	"github.com/taibuivan/restaurants/internal/platform/constants"
)

func newValidateMenusCommand(state *cli) *cobra.Command {
	var (
		concurrency int
		rps         float64
		strict      bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "validate-menus",
		Short: "Check that every menu link answers HTTP 200",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backends, catalog, err := state.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer backends.Close()

			checker := menucheck.NewChecker(state.logger,
				menucheck.WithConcurrency(concurrency),
				menucheck.WithRate(rps),
			)
			results, err := checker.Check(cmd.Context(), catalog.All())
			if err != nil {
				return err
			}

			invalid := 0
			for _, result := range results {
				if !result.Valid {
					invalid++
				}
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(results); err != nil {
					return err
				}
			} else {
				writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(writer, "STATUS\tNAME\tURL")
				for _, result := range results {
					status := "ok"
					if !result.Valid {
						status = "broken"
					}
					fmt.Fprintf(writer, "%s\t%s\t%s\n", status, result.Name, result.URL)
				}
				if err := writer.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d checked, %d broken\n", len(results), invalid)
			}

			if strict && invalid > 0 {
				return fmt.Errorf("%d broken menu links", invalid)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", constants.MenuCheckConcurrency, "parallel probes")
	cmd.Flags().Float64Var(&rps, "rps", constants.MenuCheckRPS, "probes per second, 0 for unlimited")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any link is broken")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}
