// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package menucheck_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/restaurants/internal/menucheck"
	"github.com/taibuivan/restaurants/internal/restaurant"
)

var discard = slog.New(slog.NewJSONHandler(io.Discard, nil))

func newMenuServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Redirect(w, r, "/ok", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

/*
TestCheck_ResultsInRecordOrder covers valid, redirected, missing and skipped menus.
*/
func TestCheck_ResultsInRecordOrder(t *testing.T) {
	var hits atomic.Int32
	server := newMenuServer(t, &hits)

	records := restaurant.NewCatalog([]restaurant.Restaurant{
		{Name: "A", Menu: server.URL + "/ok"},
		{Name: "B", Menu: restaurant.MenuUnavailable},
		{Name: "C", Menu: server.URL + "/gone"},
		{Name: "D"},
		{Name: "E", Menu: server.URL + "/moved"},
		{Name: "F", Menu: "::not a url"},
	}).All()

	checker := menucheck.NewChecker(discard, menucheck.WithConcurrency(2), menucheck.WithRate(0))
	results, err := checker.Check(context.Background(), records)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "A", results[0].Name)
	assert.True(t, results[0].Valid)
	assert.Equal(t, records[0].ID, results[0].ID)

	assert.Equal(t, "C", results[1].Name)
	assert.False(t, results[1].Valid)
	assert.Equal(t, http.StatusNotFound, results[1].StatusCode)

	assert.Equal(t, "E", results[2].Name)
	assert.True(t, results[2].Valid)

	assert.Equal(t, "F", results[3].Name)
	assert.False(t, results[3].Valid)
	assert.NotEmpty(t, results[3].Error)

	// ok, gone, moved and its redirect target
	assert.Equal(t, int32(4), hits.Load())
}

/*
TestCheck_Cancelled aborts the run.
*/
func TestCheck_Cancelled(t *testing.T) {
	var hits atomic.Int32
	server := newMenuServer(t, &hits)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := menucheck.NewChecker(discard)
	_, err := checker.Check(ctx, []restaurant.Restaurant{{Name: "A", Menu: server.URL + "/ok"}})
	assert.ErrorIs(t, err, context.Canceled)
}

/*
TestCheck_NothingToProbe returns an empty result.
*/
func TestCheck_NothingToProbe(t *testing.T) {
	results, err := menucheck.NewChecker(discard).Check(context.Background(), []restaurant.Restaurant{{Name: "A"}})
	require.NoError(t, err)
	assert.Empty(t, results)
}
