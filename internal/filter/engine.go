// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/taibuivan/restaurants/internal/platform/validate"
	"github.com/taibuivan/restaurants/internal/restaurant"
	"github.com/taibuivan/restaurants/pkg/slice"
)

// Membership answers whether a record id is in a favorites set.
type Membership interface {
	Contains(id string) bool
}

// Options holds the selectable values of every dimension, each starting
// with [All].
type Options struct {
	City         []string `json:"city"`
	FoodType     []string `json:"foodType"`
	Neighborhood []string `json:"neighborhood"`
	Type         []string `json:"type"`
}

// For returns the option list of field.
func (options Options) For(field Field) []string {
	switch field {
	case FieldCity:
		return options.City
	case FieldFoodType:
		return options.FoodType
	case FieldNeighborhood:
		return options.Neighborhood
	case FieldType:
		return options.Type
	}
	return []string{All}
}

// Statistics are the headline counters, always over the full dataset.
type Statistics struct {
	Total           int `json:"total"`
	Visited         int `json:"visited"`
	Pending         int `json:"pending"`
	WithReservation int `json:"withReservation"`
}

/*
DeriveOptions lists [All] followed by the distinct non-empty values of field,
in first-occurrence order.

A record whose value literally equals [All] does not contribute a second
sentinel.
*/
func DeriveOptions(records []restaurant.Restaurant, field Field) []string {
	options := []string{All}
	seen := map[string]struct{}{All: {}}

	for _, record := range records {
		value := field.Value(record)
		if value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		options = append(options, value)
	}
	return options
}

// DeriveAll computes the option lists of every dimension.
func DeriveAll(records []restaurant.Restaurant) Options {
	return Options{
		City:         DeriveOptions(records, FieldCity),
		FoodType:     DeriveOptions(records, FieldFoodType),
		Neighborhood: DeriveOptions(records, FieldNeighborhood),
		Type:         DeriveOptions(records, FieldType),
	}
}

/*
Apply returns the records that satisfy every active predicate, in input order.

Predicates, evaluated in order with short-circuit:
 1. city, food type, neighborhood and style each equal the selector or the selector is [All]
 2. the search term is a case-insensitive substring of the name
 3. with favorites-only set, the record id is in favorites (nil is the empty set)

Parameters:
  - records: []restaurant.Restaurant
  - state: State
  - favorites: Membership (may be nil)

Returns:
  - []restaurant.Restaurant: A new slice, never nil
*/
func Apply(records []restaurant.Restaurant, state State, favorites Membership) []restaurant.Restaurant {
	// Caser keeps internal state, one per call.
	folder := cases.Fold()
	needle := ""
	if state.Search != "" {
		needle = folder.String(state.Search)
	}

	if records == nil {
		return []restaurant.Restaurant{}
	}

	return slice.Filter(records, func(record restaurant.Restaurant) bool {
		for _, field := range Fields {
			if !selectorMatches(state.Selector(field), field.Value(record)) {
				return false
			}
		}
		if needle != "" && !strings.Contains(folder.String(record.Name), needle) {
			return false
		}
		if state.FavoritesOnly {
			return favorites != nil && favorites.Contains(record.ID)
		}
		return true
	})
}

// selectorMatches treats an empty selector like [All].
func selectorMatches(selector, value string) bool {
	return selector == All || selector == "" || selector == value
}

// ComputeStatistics counts over the full, unfiltered record list.
func ComputeStatistics(records []restaurant.Restaurant) Statistics {
	return Statistics{
		Total:           len(records),
		Visited:         slice.Count(records, restaurant.Restaurant.IsVisited),
		Pending:         slice.Count(records, restaurant.Restaurant.IsPending),
		WithReservation: slice.Count(records, restaurant.Restaurant.AcceptsReservation),
	}
}

// ValidateSelector rejects a value outside {All} ∪ options of field.
func ValidateSelector(field Field, value string, options Options) error {
	validator := &validate.Validator{}
	validator.OneOf(string(field), value, options.For(field)...)
	return validator.Err()
}
