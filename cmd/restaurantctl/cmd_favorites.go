// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/restaurants/internal/favorites"
)

func newFavoritesCommand(state *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Inspect and maintain the persisted favorites set",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print favorite ids and names in insertion order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				backends, catalog, err := state.open(cmd.Context(), true)
				if err != nil {
					return err
				}
				defer backends.Close()

				store := favorites.NewStore(backends.KV, state.logger)
				store.Load(cmd.Context())

				for _, id := range store.List() {
					name := "(missing from dataset)"
					if record, ok := catalog.Find(id); ok {
						name = record.Name
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "prune",
			Short: "Drop favorites whose restaurant is no longer in the dataset",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				backends, catalog, err := state.open(cmd.Context(), true)
				if err != nil {
					return err
				}
				defer backends.Close()

				store := favorites.NewStore(backends.KV, state.logger)
				store.Load(cmd.Context())

				removed, err := store.Prune(cmd.Context(), catalog)
				if err != nil {
					return err
				}
				for _, id := range removed {
					fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d removed, %d kept\n", len(removed), store.Len())
				return nil
			},
		},
	)
	return cmd
}
