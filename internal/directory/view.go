// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"github.com/taibuivan/restaurants/internal/filter"
	"github.com/taibuivan/restaurants/internal/restaurant"
)

// Card is a restaurant enriched with the flags a card renders.
type Card struct {
	restaurant.Restaurant

	HasMenuLink  bool `json:"hasMenu"`
	Reservable   bool `json:"acceptsReservation"`
	HighPriority bool `json:"isHighPriority"`
	Visited      bool `json:"isVisited"`
	Favorite     bool `json:"isFavorite"`
}

// View is everything a presentation layer needs to render the directory.
type View struct {
	Restaurants      []Card            `json:"restaurants"`
	Options          filter.Options    `json:"options"`
	Stats            filter.Statistics `json:"stats"`
	State            filter.State      `json:"state"`
	HasActiveFilters bool              `json:"hasActiveFilters"`
	FavoritesCount   int               `json:"favoritesCount"`
	Shown            int               `json:"shown"`
	Total            int               `json:"total"`
}

// newCard derives the card flags of record.
func newCard(record restaurant.Restaurant, favorites filter.Membership) Card {
	return Card{
		Restaurant:   record,
		HasMenuLink:  record.HasMenu(),
		Reservable:   record.AcceptsReservation(),
		HighPriority: record.IsHighPriority(),
		Visited:      record.IsVisited(),
		Favorite:     favorites != nil && favorites.Contains(record.ID),
	}
}
