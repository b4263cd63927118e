// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package restaurant

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// templateMarker flags placeholder rows left in spreadsheet exports.
const templateMarker = "TEMPLATE"

// CSV column headers of the spreadsheet export.
const (
	ColumnName         = "Name"
	ColumnAddress      = "Address"
	ColumnCity         = "City"
	ColumnNeighborhood = "Neighborhood"
	ColumnFoodType     = "Food Type"
	ColumnMenu         = "Menu"
	ColumnOccasion     = "Occasion"
	ColumnType         = "Type"
	ColumnStatus       = "Trip Status"
	ColumnReservation  = "Reservation"
	ColumnRegion       = "Region"
	ColumnState        = "State"
	ColumnPriority     = "Priority"
)

// ReadCSV parses a spreadsheet export.
//
// Rows are skipped when the name is empty or the template marker, or when the
// city is empty or the template marker. All values are trimmed. Only the Name
// and City columns are mandatory; other missing columns read as empty.
func ReadCSV(reader io.Reader) ([]Restaurant, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return []Restaurant{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("restaurant: read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{ColumnName, ColumnCity} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("restaurant: csv is missing the %q column", required)
		}
	}

	records := make([]Restaurant, 0)
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("restaurant: read csv row: %w", err)
		}

		cell := func(column string) string {
			index, ok := columns[column]
			if !ok || index >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[index])
		}

		name, city := cell(ColumnName), cell(ColumnCity)
		if name == "" || name == templateMarker || city == "" || city == templateMarker {
			continue
		}

		records = append(records, Restaurant{
			Name:         name,
			Address:      cell(ColumnAddress),
			City:         city,
			Neighborhood: cell(ColumnNeighborhood),
			FoodType:     cell(ColumnFoodType),
			Menu:         cell(ColumnMenu),
			Occasion:     cell(ColumnOccasion),
			Type:         cell(ColumnType),
			Status:       cell(ColumnStatus),
			Reservation:  cell(ColumnReservation),
			Region:       cell(ColumnRegion),
			State:        cell(ColumnState),
			Priority:     cell(ColumnPriority),
		})
	}

	return records, nil
}
