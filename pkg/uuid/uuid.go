// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides the identifier schemes used across the directory.

  - Random, time-ordered Version 7 values for request correlation.
  - Deterministic, name-based Version 5 values for restaurant identity:
    the same immutable fields always produce the same id, so favorites
    survive restarts and dataset reloads.
*/
package uuid

import (
	"strings"

	"github.com/google/uuid"
)

// RestaurantNamespace scopes name-based restaurant ids.
var RestaurantNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:restaurant-directory:restaurant"))

// # Generators

// New generates a new UUIDv7 string, falling back to a random v4 value if
// the clock sequence cannot be read.
func New() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// FromFields derives a stable UUIDv5 from parts within namespace.
//
// Parts are joined with a unit separator so ("ab", "c") and ("a", "bc") differ.
func FromFields(namespace uuid.UUID, parts ...string) string {
	return uuid.NewSHA1(namespace, []byte(strings.Join(parts, "\x1f"))).String()
}

// IsValid reports whether s parses as a UUID of any version.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
