// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package restaurant

import (
	"context"
	"fmt"
	"log/slog"
)

// Source produces the raw, ordered record list. Ids are assigned later by
// [NewCatalog], so sources never need to know about identity.
type Source interface {
	/*
		Load reads every record in dataset order.

		Parameters:
		  - ctx: context.Context

		Returns:
		  - []Restaurant: Records in source order
		  - error: I/O or decoding failures
	*/
	Load(ctx context.Context) ([]Restaurant, error)
}

// LoadCatalog reads source once and freezes the result.
func LoadCatalog(ctx context.Context, source Source, logger *slog.Logger) (*Catalog, error) {
	records, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("restaurant: load catalog: %w", err)
	}

	catalog := NewCatalog(records)
	logger.Info("catalog_loaded",
		slog.Int("records", catalog.Len()),
		slog.String("fingerprint", catalog.Fingerprint()),
	)
	return catalog, nil
}
