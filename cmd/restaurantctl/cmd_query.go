// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taibuivan/restaurants/internal/filter"
	"github.com/taibuivan/restaurants/internal/favorites"
	"github.com/taibuivan/restaurants/internal/restaurant"
)

func newStatsCommand(state *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print headline statistics over the whole dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backends, catalog, err := state.open(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer backends.Close()

			stats := filter.ComputeStatistics(catalog.All())
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "total\t%d\n", stats.Total)
			fmt.Fprintf(writer, "visited\t%d\n", stats.Visited)
			fmt.Fprintf(writer, "pending\t%d\n", stats.Pending)
			fmt.Fprintf(writer, "with reservation\t%d\n", stats.WithReservation)
			return writer.Flush()
		},
	}
}

func newFilterCommand(state *cli) *cobra.Command {
	var (
		selectors     = map[filter.Field]*string{}
		search        string
		favoritesOnly bool
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List restaurants matching selectors and a name search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backends, catalog, err := state.open(cmd.Context(), favoritesOnly)
			if err != nil {
				return err
			}
			defer backends.Close()

			records := catalog.All()
			options := filter.DeriveAll(records)

			query := filter.NewState()
			for _, field := range filter.Fields {
				value := *selectors[field]
				if err := filter.ValidateSelector(field, value, options); err != nil {
					return fmt.Errorf("--%s %q is not a known value", flagName(field), value)
				}
				query = query.With(field, value)
			}
			query.Search = search
			query.FavoritesOnly = favoritesOnly

			var membership filter.Membership
			if favoritesOnly {
				store := favorites.NewStore(backends.KV, state.logger)
				store.Load(cmd.Context())
				membership = store
			}

			result := filter.Apply(records, query, membership)
			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}
			return printTable(cmd.OutOrStdout(), result, len(records))
		},
	}

	for _, field := range filter.Fields {
		value := new(string)
		selectors[field] = value
		cmd.Flags().StringVar(value, flagName(field), filter.All, "exact "+string(field)+" value")
	}
	cmd.Flags().StringVarP(&search, "search", "q", "", "case-insensitive name search")
	cmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "only favorites from the configured KV backend")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print matching records as JSON")
	return cmd
}

// flagName maps a field to its kebab-case flag.
func flagName(field filter.Field) string {
	if field == filter.FieldFoodType {
		return "food-type"
	}
	return string(field)
}

// printTable writes one row per restaurant and a summary line.
func printTable(out io.Writer, records []restaurant.Restaurant, total int) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tCITY\tNEIGHBORHOOD\tFOOD TYPE\tSTATUS")
	for _, record := range records {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			record.Name, record.City, record.Neighborhood, record.FoodType, record.Status)
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d of %d restaurants\n", len(records), total)
	return err
}
