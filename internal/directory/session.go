// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package directory connects the catalog, the favorites set and the filter
engine into the directory's rendering contract.

A [Session] owns one filter state and applies presentation events to it.
Nothing is recomputed implicitly: after a mutation the caller asks for
[Session.Recompute], which stores and returns the fresh [View].

Flow:

	event (SetSelector, SetSearch, ToggleFavorite, ...) -> Recompute -> View
*/
package directory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/restaurants/internal/favorites"
	"github.com/taibuivan/restaurants/internal/filter"
	"github.com/taibuivan/restaurants/internal/platform/apperr"
	"github.com/taibuivan/restaurants/internal/restaurant"
	"github.com/taibuivan/restaurants/pkg/slice"
)

// Session is the single-user directory state.
//
// # Concurrency
//
// Events are serialised by a mutex, one at a time, like a UI event loop.
type Session struct {
	catalog   *restaurant.Catalog
	favorites *favorites.Store
	logger    *slog.Logger

	mu    sync.Mutex
	state filter.State
	last  View

	cacheMu      sync.Mutex
	cachedFor    string
	cachedOption filter.Options
}

// NewSession starts with the reset filter state and an initial view.
func NewSession(catalog *restaurant.Catalog, favoriteStore *favorites.Store, logger *slog.Logger) *Session {
	session := &Session{
		catalog:   catalog,
		favorites: favoriteStore,
		logger:    logger,
		state:     filter.NewState(),
	}
	session.last = session.Query(session.state)
	return session
}

// Catalog returns the read-only catalog.
func (session *Session) Catalog() *restaurant.Catalog { return session.catalog }

// Options returns the option lists, derived once per catalog fingerprint.
func (session *Session) Options() filter.Options {
	session.cacheMu.Lock()
	defer session.cacheMu.Unlock()

	fingerprint := session.catalog.Fingerprint()
	if session.cachedFor != fingerprint {
		session.cachedOption = filter.DeriveAll(session.catalog.All())
		session.cachedFor = fingerprint
		session.logger.Debug("filter_options_derived", slog.String("fingerprint", fingerprint))
	}
	return session.cachedOption
}

// Statistics returns the headline counters over the whole catalog.
func (session *Session) Statistics() filter.Statistics {
	return filter.ComputeStatistics(session.catalog.All())
}

// State returns the current filter state.
func (session *Session) State() filter.State {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.state
}

// View returns the view stored by the last recompute.
func (session *Session) View() View {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.last
}

// # Presentation Events

// SetSelector assigns value to field. Any value is accepted; values outside
// the option list match nothing.
func (session *Session) SetSelector(field filter.Field, value string) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.state = session.state.With(field, value)
}

// SetSearch replaces the search term.
func (session *Session) SetSearch(term string) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.state.Search = term
}

// SetFavoritesOnly sets the favorites-only flag.
func (session *Session) SetFavoritesOnly(enabled bool) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.state.FavoritesOnly = enabled
}

// ClearFilters resets the filter state. Favorites are untouched.
func (session *Session) ClearFilters() {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.state = session.state.Reset()
}

/*
ToggleFavorite flips the favorite flag of a catalog record.

Write failures are logged by the favorites store and not reported here:
the in-memory set already reflects the toggle.

Returns:
  - bool: Whether id is a favorite after the call
  - error: apperr.NotFound when id is not in the catalog
*/
func (session *Session) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	if !session.catalog.Contains(id) {
		return false, apperr.NotFound("Restaurant")
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	// The store logs favorites_save_failed itself.
	isFavorite, _ := session.favorites.Toggle(ctx, id)
	return isFavorite, nil
}

// Recompute derives the view from the current state and stores it.
func (session *Session) Recompute() View {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.last = session.Query(session.state)
	return session.last
}

// Query computes a view for state without touching the session state.
func (session *Session) Query(state filter.State) View {
	records := session.catalog.All()
	visible := filter.Apply(records, state, session.favorites)

	cards := slice.Map(visible, func(record restaurant.Restaurant) Card {
		return newCard(record, session.favorites)
	})

	return View{
		Restaurants:      cards,
		Options:          session.Options(),
		Stats:            filter.ComputeStatistics(records),
		State:            state,
		HasActiveFilters: state.IsActive(),
		FavoritesCount:   session.favorites.Len(),
		Shown:            len(cards),
		Total:            len(records),
	}
}

// Card returns the card of the record matching identifier (id or slug).
func (session *Session) Card(identifier string) (Card, error) {
	record, err := session.catalog.Get(identifier)
	if err != nil {
		return Card{}, err
	}
	return newCard(record, session.favorites), nil
}

// FavoriteCards lists the favorite records in insertion order, skipping ids
// the catalog no longer contains.
func (session *Session) FavoriteCards() []Card {
	cards := make([]Card, 0, session.favorites.Len())
	for _, id := range session.favorites.List() {
		if record, ok := session.catalog.Find(id); ok {
			cards = append(cards, newCard(record, session.favorites))
		}
	}
	return cards
}

// FavoriteIDs lists the raw favorite ids in insertion order.
func (session *Session) FavoriteIDs() []string {
	return session.favorites.List()
}
