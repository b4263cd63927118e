// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package menucheck probes restaurant menu links.

A link is valid when a HEAD request, following redirects, answers 200 within
[constants.MenuCheckTimeout]. Probes run in parallel up to a fixed limit and
are paced by a token bucket so a large dataset does not hammer one host.
*/
package menucheck

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/taibuivan/restaurants/internal/platform/constants"
	"github.com/taibuivan/restaurants/internal/restaurant"
)

// Result is the outcome of one probe.
type Result struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Valid      bool   `json:"valid"`
	StatusCode int    `json:"statusCode,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Checker runs menu probes.
type Checker struct {
	client      *http.Client
	limiter     *rate.Limiter
	concurrency int
	logger      *slog.Logger
}

// Option customises a [Checker].
type Option func(*Checker)

// WithHTTPClient replaces the default client.
func WithHTTPClient(client *http.Client) Option {
	return func(checker *Checker) { checker.client = client }
}

// WithConcurrency caps in-flight probes.
func WithConcurrency(limit int) Option {
	return func(checker *Checker) {
		if limit > 0 {
			checker.concurrency = limit
		}
	}
}

// WithRate paces probes to rps with a burst of one per worker.
// A non-positive rps disables pacing.
func WithRate(rps float64) Option {
	return func(checker *Checker) {
		if rps <= 0 {
			checker.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		checker.limiter = rate.NewLimiter(rate.Limit(rps), max(checker.concurrency, 1))
	}
}

// NewChecker builds a checker with the default limits.
func NewChecker(logger *slog.Logger, options ...Option) *Checker {
	checker := &Checker{
		client:      &http.Client{},
		concurrency: constants.MenuCheckConcurrency,
		logger:      logger,
	}
	checker.limiter = rate.NewLimiter(rate.Limit(constants.MenuCheckRPS), checker.concurrency)

	for _, option := range options {
		option(checker)
	}
	return checker
}

/*
Check probes the menu of every record that has one.

Records without a usable link are skipped. Results follow record order.
A failing probe is a result, not an error; only context cancellation aborts
the run.

Parameters:
  - ctx: context.Context
  - records: []restaurant.Restaurant

Returns:
  - []Result: One entry per probed record
  - error: The context error when the run was cancelled
*/
func (checker *Checker) Check(ctx context.Context, records []restaurant.Restaurant) ([]Result, error) {
	targets := make([]restaurant.Restaurant, 0, len(records))
	for _, record := range records {
		if record.HasMenu() {
			targets = append(targets, record)
		}
	}

	results := make([]Result, len(targets))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(checker.concurrency)

	for i, record := range targets {
		group.Go(func() error {
			if err := checker.limiter.Wait(groupCtx); err != nil {
				return err
			}
			results[i] = checker.probe(groupCtx, record)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("menucheck: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("menucheck: %w", err)
	}

	invalid := 0
	for _, result := range results {
		if !result.Valid {
			invalid++
		}
	}
	checker.logger.Info("menu_check_completed",
		slog.Int("checked", len(results)),
		slog.Int("invalid", invalid),
	)
	return results, nil
}

func (checker *Checker) probe(ctx context.Context, record restaurant.Restaurant) Result {
	result := Result{ID: record.ID, Name: record.Name, URL: record.Menu}

	probeCtx, cancel := context.WithTimeout(ctx, constants.MenuCheckTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(probeCtx, http.MethodHead, record.Menu, nil)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	request.Header.Set("User-Agent", constants.AppName+"/"+constants.AppVersion)

	response, err := checker.client.Do(request)
	if err != nil {
		result.Error = err.Error()
		checker.logger.Debug("menu_probe_failed", slog.String("url", record.Menu), slog.Any("error", err))
		return result
	}
	defer response.Body.Close()

	result.StatusCode = response.StatusCode
	result.Valid = response.StatusCode == http.StatusOK
	return result
}
