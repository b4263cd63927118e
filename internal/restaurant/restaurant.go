// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package restaurant defines the directory's record model and the immutable
[Catalog] loaded once at startup.

Core Responsibility:

  - Record: a flat restaurant entry whose classification fields are free text.
  - Identity: a stable synthetic id derived from immutable fields at load time.
  - Loading: JSON, YAML and CSV files, or a PostgreSQL table.

Nothing in this package mutates a catalog after construction.
*/
package restaurant

// # Dataset Sentinels

const (
	// StatusVisited marks a restaurant that has already been visited.
	StatusVisited = "FOMOS"

	// StatusPending marks a restaurant still on the to-visit list.
	StatusPending = "PENDING"

	// ReservationYes marks a restaurant that accepts reservations.
	ReservationYes = "SIM"

	// MenuUnavailable is stored in the menu field when no menu link exists.
	MenuUnavailable = "Indisponivel"

	// PriorityHigh flags a restaurant to visit first.
	PriorityHigh = "HIGH"
)

// # Core Entity

// Restaurant is one entry of the directory.
//
// Every classification field may be empty; an empty field simply never
// matches an exact selector and never contributes a selector option.
type Restaurant struct {
	// ID is assigned by [NewCatalog]; any value present in the source is ignored.
	ID string `json:"id" yaml:"-"`
	// Slug is a URL-friendly form of Name. Not guaranteed unique.
	Slug string `json:"slug" yaml:"-"`

	Name         string `json:"name" yaml:"name"`
	Address      string `json:"address" yaml:"address"`
	City         string `json:"city" yaml:"city"`
	Neighborhood string `json:"neighborhood" yaml:"neighborhood"`
	FoodType     string `json:"foodType" yaml:"foodType"`
	Type         string `json:"type" yaml:"type"` // Style, e.g. SOFISTICADO / FITNESS
	Occasion     string `json:"occasion" yaml:"occasion"`
	Region       string `json:"region" yaml:"region"`
	State        string `json:"state" yaml:"state"`
	Priority     string `json:"priority" yaml:"priority"`
	Menu         string `json:"menu" yaml:"menu"` // URL, MenuUnavailable, or empty
	Status       string `json:"status" yaml:"status"`
	Reservation  string `json:"reservation" yaml:"reservation"`
}

// IsVisited reports whether the status equals [StatusVisited].
func (r Restaurant) IsVisited() bool { return r.Status == StatusVisited }

// IsPending reports whether the status equals [StatusPending].
func (r Restaurant) IsPending() bool { return r.Status == StatusPending }

// AcceptsReservation reports whether the reservation field equals [ReservationYes].
func (r Restaurant) AcceptsReservation() bool { return r.Reservation == ReservationYes }

// IsHighPriority reports whether the priority field equals [PriorityHigh].
func (r Restaurant) IsHighPriority() bool { return r.Priority == PriorityHigh }

// HasMenu reports whether Menu holds a usable link.
func (r Restaurant) HasMenu() bool {
	return r.Menu != "" && r.Menu != MenuUnavailable
}
