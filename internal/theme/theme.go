// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package theme persists the dark/light display preference.
//
// The filter engine never reads it; it exists for presentation layers.
package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibuivan/restaurants/internal/platform/constants"
	"github.com/taibuivan/restaurants/internal/platform/kv"
	"github.com/taibuivan/restaurants/internal/platform/validate"
)

// Theme values.
const (
	Dark  = "dark"
	Light = "light"

	// Default applies when nothing usable is stored.
	Default = Dark
)

// Preference holds the current theme and writes every change through.
type Preference struct {
	backend kv.Store
	logger  *slog.Logger

	mu      sync.RWMutex
	current string
}

// NewPreference starts at [Default]; call [Preference.Load] to restore.
func NewPreference(backend kv.Store, logger *slog.Logger) *Preference {
	return &Preference{backend: backend, logger: logger, current: Default}
}

// Load restores the stored theme. Unknown or unreadable values fall back to
// [Default].
func (preference *Preference) Load(ctx context.Context) {
	value, err := preference.backend.Get(ctx, constants.StorageKeyTheme)

	preference.mu.Lock()
	defer preference.mu.Unlock()

	switch {
	case errors.Is(err, kv.ErrNotFound):
		preference.current = Default
	case err != nil:
		preference.logger.Warn("theme_load_failed", slog.Any("error", err))
		preference.current = Default
	case value == Dark || value == Light:
		preference.current = value
	default:
		preference.logger.Warn("theme_value_unknown", slog.String("value", value))
		preference.current = Default
	}
}

// Current returns the active theme.
func (preference *Preference) Current() string {
	preference.mu.RLock()
	defer preference.mu.RUnlock()
	return preference.current
}

// Set validates and stores value.
func (preference *Preference) Set(ctx context.Context, value string) error {
	validator := &validate.Validator{}
	if err := validator.OneOf("theme", value, Dark, Light).Err(); err != nil {
		return err
	}

	preference.mu.Lock()
	defer preference.mu.Unlock()
	return preference.storeLocked(ctx, value)
}

// Toggle flips between dark and light and returns the new theme.
func (preference *Preference) Toggle(ctx context.Context) (string, error) {
	preference.mu.Lock()
	defer preference.mu.Unlock()

	next := Light
	if preference.current == Light {
		next = Dark
	}
	return next, preference.storeLocked(ctx, next)
}

// storeLocked keeps value in memory even when the write fails.
func (preference *Preference) storeLocked(ctx context.Context, value string) error {
	preference.current = value
	if err := preference.backend.Set(ctx, constants.StorageKeyTheme, value); err != nil {
		preference.logger.Warn("theme_save_failed", slog.Any("error", err))
		return fmt.Errorf("theme: write: %w", err)
	}
	return nil
}
