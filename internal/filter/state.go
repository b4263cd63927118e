// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter

// State is the set of active filter values.
//
// It is a plain value: transitions are direct field assignment and there is
// no ordering between fields.
type State struct {
	City          string `json:"city"`
	FoodType      string `json:"foodType"`
	Neighborhood  string `json:"neighborhood"`
	Type          string `json:"type"`
	Search        string `json:"search"`
	FavoritesOnly bool   `json:"favoritesOnly"`
}

// NewState returns the reset state: every selector at [All], empty search,
// favorites-only cleared.
func NewState() State {
	return State{
		City:         All,
		FoodType:     All,
		Neighborhood: All,
		Type:         All,
	}
}

// Reset returns the reset state. The receiver is ignored; favorites are
// never touched by a reset.
func (State) Reset() State { return NewState() }

// Selector returns the current value of field.
func (state State) Selector(field Field) string {
	switch field {
	case FieldCity:
		return state.City
	case FieldFoodType:
		return state.FoodType
	case FieldNeighborhood:
		return state.Neighborhood
	case FieldType:
		return state.Type
	}
	return All
}

// With returns a copy of state with field set to value.
// An empty value is read as [All].
func (state State) With(field Field, value string) State {
	if value == "" {
		value = All
	}
	switch field {
	case FieldCity:
		state.City = value
	case FieldFoodType:
		state.FoodType = value
	case FieldNeighborhood:
		state.Neighborhood = value
	case FieldType:
		state.Type = value
	}
	return state
}

// IsActive reports whether any filter narrows the result.
func (state State) IsActive() bool {
	for _, field := range Fields {
		if selector := state.Selector(field); selector != All && selector != "" {
			return true
		}
	}
	return state.Search != "" || state.FavoritesOnly
}
