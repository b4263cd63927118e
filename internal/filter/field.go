// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package filter implements the directory's filter engine.

Everything here is a pure function over a record slice: option derivation,
the filter predicate conjunction and the headline statistics. The engine
keeps no state of its own; callers own the [State] and the favorites set.

Selectors hold either [All] or an exact-match value. Unknown values are not
errors for the engine, they simply match nothing. Validation against the
derived option lists is available through [ValidateSelector] for transport
layers that want to reject them.
*/
package filter

import (
	"fmt"

	"github.com/taibuivan/restaurants/internal/restaurant"
)

// All is the selector sentinel meaning "no constraint on this field".
const All = "Todos"

// Field names one of the four selector dimensions.
type Field string

// Selector dimensions, in display order.
const (
	FieldCity         Field = "city"
	FieldFoodType     Field = "foodType"
	FieldNeighborhood Field = "neighborhood"
	FieldType         Field = "type"
)

// Fields lists every selector dimension in display order.
var Fields = []Field{FieldCity, FieldFoodType, FieldNeighborhood, FieldType}

// ParseField converts a wire name into a [Field].
func ParseField(name string) (Field, error) {
	for _, field := range Fields {
		if string(field) == name {
			return field, nil
		}
	}
	return "", fmt.Errorf("filter: unknown field %q", name)
}

// Value extracts the field's raw value from a record.
func (field Field) Value(record restaurant.Restaurant) string {
	switch field {
	case FieldCity:
		return record.City
	case FieldFoodType:
		return record.FoodType
	case FieldNeighborhood:
		return record.Neighborhood
	case FieldType:
		return record.Type
	}
	return ""
}
