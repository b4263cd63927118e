// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the relational tables and columns so SQL is built from
// one definition per table.
package schema

// CoreRestaurantTable represents the 'core.restaurant' table
type CoreRestaurantTable struct {
	Table        string
	Relation     string // unqualified, for COPY identifiers
	Position     string
	Name         string
	Address      string
	City         string
	Neighborhood string
	FoodType     string
	Type         string
	Occasion     string
	Region       string
	State        string
	Priority     string
	Menu         string
	Status       string
	Reservation  string
}

// CoreRestaurant is the schema definition for core.restaurant
var CoreRestaurant = CoreRestaurantTable{
	Table:        "core.restaurant",
	Relation:     "restaurant",
	Position:     "position",
	Name:         "name",
	Address:      "address",
	City:         "city",
	Neighborhood: "neighborhood",
	FoodType:     "food_type",
	Type:         "type",
	Occasion:     "occasion",
	Region:       "region",
	State:        "state",
	Priority:     "priority",
	Menu:         "menu",
	Status:       "status",
	Reservation:  "reservation",
}

// RecordColumns lists the record fields in scan order, without position.
func (t CoreRestaurantTable) RecordColumns() []string {
	return []string{
		t.Name, t.Address, t.City, t.Neighborhood, t.FoodType, t.Type, t.Occasion,
		t.Region, t.State, t.Priority, t.Menu, t.Status, t.Reservation,
	}
}

// Columns lists every column, position first.
func (t CoreRestaurantTable) Columns() []string {
	return append([]string{t.Position}, t.RecordColumns()...)
}
