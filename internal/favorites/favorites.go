// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package favorites maintains the persisted set of favorite restaurant ids.

The set lives in memory and is written back to a [kv.Store] as a JSON array
after every toggle. Load failures never reach the caller: a missing, unreadable
or malformed value yields an empty set and a warning log.

Architecture:

  - Store: owned by the composition root and injected where needed.
  - Identity: synthetic restaurant ids, never display names.
*/
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibuivan/restaurants/internal/platform/constants"
	"github.com/taibuivan/restaurants/internal/platform/kv"
)

// Catalog answers whether an id still belongs to the dataset.
type Catalog interface {
	Contains(id string) bool
}

// Store is the authoritative favorites set.
//
// # Concurrency
//
// All methods are safe for concurrent use.
type Store struct {
	backend kv.Store
	logger  *slog.Logger

	mu    sync.RWMutex
	ids   []string
	index map[string]struct{}
}

// NewStore creates an empty set backed by backend. Call [Store.Load] to
// restore the persisted value.
func NewStore(backend kv.Store, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger,
		ids:     make([]string, 0),
		index:   make(map[string]struct{}),
	}
}

/*
Load replaces the in-memory set with the persisted one.

A missing key, a backend error or a payload that is not a JSON array of
strings all leave the set empty. Only the last two are logged.
*/
func (store *Store) Load(ctx context.Context) {
	ids, err := store.read(ctx)

	store.mu.Lock()
	defer store.mu.Unlock()

	store.ids = make([]string, 0, len(ids))
	store.index = make(map[string]struct{}, len(ids))

	if err != nil {
		store.logger.Warn("favorites_load_failed",
			slog.String("key", constants.StorageKeyFavorites),
			slog.Any("error", err),
		)
		return
	}

	for _, id := range ids {
		if _, dup := store.index[id]; dup {
			continue
		}
		store.index[id] = struct{}{}
		store.ids = append(store.ids, id)
	}

	store.logger.Debug("favorites_loaded", slog.Int("count", len(store.ids)))
}

func (store *Store) read(ctx context.Context) ([]string, error) {
	raw, err := store.backend.Get(ctx, constants.StorageKeyFavorites)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("favorites: read: %w", err)
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("favorites: decode: %w", err)
	}
	return ids, nil
}

/*
Toggle adds id when absent and removes it when present, then writes the
whole set back synchronously.

Returns:
  - bool: Whether id is a favorite after the call
  - error: The write failure, if any; the in-memory change is kept regardless
*/
func (store *Store) Toggle(ctx context.Context, id string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	_, present := store.index[id]
	if present {
		delete(store.index, id)
		store.ids = remove(store.ids, id)
	} else {
		store.index[id] = struct{}{}
		store.ids = append(store.ids, id)
	}

	return !present, store.persistLocked(ctx)
}

/*
Prune drops every id the catalog no longer contains and persists the result
when anything changed.

Returns:
  - []string: The removed ids, in former insertion order
  - error: The write failure, if any
*/
func (store *Store) Prune(ctx context.Context, catalog Catalog) ([]string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	kept := make([]string, 0, len(store.ids))
	removed := make([]string, 0)
	for _, id := range store.ids {
		if catalog.Contains(id) {
			kept = append(kept, id)
			continue
		}
		removed = append(removed, id)
		delete(store.index, id)
	}

	if len(removed) == 0 {
		return removed, nil
	}
	store.ids = kept
	return removed, store.persistLocked(ctx)
}

// persistLocked writes the set; callers hold mu.
func (store *Store) persistLocked(ctx context.Context) error {
	payload, err := json.Marshal(store.ids)
	if err != nil {
		return fmt.Errorf("favorites: encode: %w", err)
	}

	if err := store.backend.Set(ctx, constants.StorageKeyFavorites, string(payload)); err != nil {
		store.logger.Warn("favorites_save_failed",
			slog.String("key", constants.StorageKeyFavorites),
			slog.Any("error", err),
		)
		return fmt.Errorf("favorites: write: %w", err)
	}
	return nil
}

// Contains reports whether id is a favorite.
func (store *Store) Contains(id string) bool {
	store.mu.RLock()
	defer store.mu.RUnlock()

	_, ok := store.index[id]
	return ok
}

// List returns the favorite ids in insertion order.
func (store *Store) List() []string {
	store.mu.RLock()
	defer store.mu.RUnlock()

	out := make([]string, len(store.ids))
	copy(out, store.ids)
	return out
}

// Len returns the number of favorites.
func (store *Store) Len() int {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return len(store.ids)
}

func remove(ids []string, target string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
