// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/restaurants/pkg/uuid"
)

/*
TestFromFields_Deterministic checks stability and separator handling.
*/
func TestFromFields_Deterministic(t *testing.T) {
	first := uuid.FromFields(uuid.RestaurantNamespace, "Maní", "R. Joaquim Antunes, 210")
	second := uuid.FromFields(uuid.RestaurantNamespace, "Maní", "R. Joaquim Antunes, 210")

	assert.Equal(t, first, second)
	assert.True(t, uuid.IsValid(first))

	assert.NotEqual(t,
		uuid.FromFields(uuid.RestaurantNamespace, "ab", "c"),
		uuid.FromFields(uuid.RestaurantNamespace, "a", "bc"),
	)
}

/*
TestNew_Unique checks that v7 ids are valid and distinct.
*/
func TestNew_Unique(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.NotEqual(t, a, b)
	assert.True(t, uuid.IsValid(a))
	assert.False(t, uuid.IsValid("mani"))
}
