// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/restaurants/internal/filter"
	"github.com/taibuivan/restaurants/internal/platform/apperr"
	"github.com/taibuivan/restaurants/internal/restaurant"
)

// set is a minimal Membership for tests.
type set map[string]bool

func (s set) Contains(id string) bool { return s[id] }

func names(records []restaurant.Restaurant) []string {
	out := make([]string, len(records))
	for i, record := range records {
		out[i] = record.Name
	}
	return out
}

func catalogRecords() []restaurant.Restaurant {
	return restaurant.NewCatalog([]restaurant.Restaurant{
		{Name: "Mocotó", City: "São Paulo", Neighborhood: "Vila Medeiros", FoodType: "Brasileira", Type: "TRADICIONAL", Status: restaurant.StatusVisited},
		{Name: "Maní", City: "São Paulo", Neighborhood: "Jardim Paulistano", FoodType: "Contemporânea", Type: "SOFISTICADO", Status: restaurant.StatusPending, Reservation: restaurant.ReservationYes},
		{Name: "Raw Bowl", City: "Recife", Neighborhood: "Espinheiro", FoodType: "Saudável", Type: "FITNESS", Status: restaurant.StatusPending},
		{Name: "Casa do Porco", City: "São Paulo", FoodType: "Brasileira", Status: "TALVEZ", Reservation: restaurant.ReservationYes},
		{Name: "Oficina do Sabor", City: "Olinda", FoodType: "Nordestina"},
	}).All()
}

/*
TestScenario_CityFoodTypeSearch walks the reference two-record scenario.
*/
func TestScenario_CityFoodTypeSearch(t *testing.T) {
	records := []restaurant.Restaurant{
		{Name: "A", City: "X", FoodType: "F1"},
		{Name: "B", City: "Y", FoodType: "F1"},
	}

	state := filter.NewState().With(filter.FieldCity, "X")
	assert.Equal(t, []string{"A"}, names(filter.Apply(records, state, nil)))

	state = filter.NewState().With(filter.FieldFoodType, "F1")
	assert.Equal(t, []string{"A", "B"}, names(filter.Apply(records, state, nil)))

	state = filter.NewState()
	state.Search = "b"
	assert.Equal(t, []string{"B"}, names(filter.Apply(records, state, nil)))
}

/*
TestScenario_FavoritesOnly ignores other fields once favorites-only is the only filter.
*/
func TestScenario_FavoritesOnly(t *testing.T) {
	records := restaurant.NewCatalog([]restaurant.Restaurant{
		{Name: "A", City: "X"},
		{Name: "B", City: "Y"},
	}).All()

	state := filter.NewState()
	state.FavoritesOnly = true

	result := filter.Apply(records, state, set{records[0].ID: true})
	assert.Equal(t, []string{"A"}, names(result))

	// Nil membership is the empty set
	assert.Empty(t, filter.Apply(records, state, nil))
}

/*
TestApply_Predicates covers each predicate and their conjunction.
*/
func TestApply_Predicates(t *testing.T) {
	records := catalogRecords()

	tests := []struct {
		name  string
		state filter.State
		want  []string
	}{
		{"city", filter.NewState().With(filter.FieldCity, "São Paulo"), []string{"Mocotó", "Maní", "Casa do Porco"}},
		{"city_and_food", filter.NewState().With(filter.FieldCity, "São Paulo").With(filter.FieldFoodType, "Brasileira"), []string{"Mocotó", "Casa do Porco"}},
		{"neighborhood", filter.NewState().With(filter.FieldNeighborhood, "Espinheiro"), []string{"Raw Bowl"}},
		{"style", filter.NewState().With(filter.FieldType, "SOFISTICADO"), []string{"Maní"}},
		{"unknown_value", filter.NewState().With(filter.FieldCity, "Lisboa"), []string{}},
		{"empty_selector_is_all", filter.State{}, []string{"Mocotó", "Maní", "Raw Bowl", "Casa do Porco", "Oficina do Sabor"}},
		{"search_accents", filter.State{Search: "MOCOTÓ"}, []string{"Mocotó"}},
		{"search_substring", filter.State{Search: "do"}, []string{"Casa do Porco", "Oficina do Sabor"}},
		{"search_and_city", filter.State{City: "Olinda", Search: "casa"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(filter.Apply(records, tt.state, nil)))
		})
	}
}

/*
TestApply_SearchUsesFullCaseFolding pins Unicode folding: "ß" matches "ss"
and the Kelvin sign matches "k", which plain lowercasing would miss.
*/
func TestApply_SearchUsesFullCaseFolding(t *testing.T) {
	records := restaurant.NewCatalog([]restaurant.Restaurant{
		{Name: "Weißbier Stube", City: "Blumenau"},
		{Name: "\u212Aaffee Haus", City: "Blumenau"},
		{Name: "Mocotó", City: "São Paulo"},
	}).All()

	tests := []struct {
		search string
		want   []string
	}{
		{"WEISS", []string{"Weißbier Stube"}},
		{"weiß", []string{"Weißbier Stube"}},
		{"kaffee", []string{"\u212Aaffee Haus"}},
		{"MOCOTÓ", []string{"Mocotó"}},
		{"mocoto", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			assert.Equal(t, tt.want, names(filter.Apply(records, filter.State{Search: tt.search}, nil)))
		})
	}
}

/*
TestApply_MissingFieldNeverMatchesExactSelector keeps records with empty fields
out of narrowed results while they still appear under All.
*/
func TestApply_MissingFieldNeverMatchesExactSelector(t *testing.T) {
	records := catalogRecords()

	for _, option := range filter.DeriveOptions(records, filter.FieldNeighborhood)[1:] {
		result := filter.Apply(records, filter.NewState().With(filter.FieldNeighborhood, option), nil)
		assert.NotContains(t, names(result), "Casa do Porco")
	}
	assert.Contains(t, names(filter.Apply(records, filter.NewState(), nil)), "Casa do Porco")
}

/*
TestApply_Idempotent applies the filter to its own output.
*/
func TestApply_Idempotent(t *testing.T) {
	records := catalogRecords()
	favorites := set{records[1].ID: true, records[3].ID: true}

	states := []filter.State{
		filter.NewState(),
		filter.NewState().With(filter.FieldCity, "São Paulo"),
		{City: filter.All, FoodType: filter.All, Neighborhood: filter.All, Type: filter.All, Search: "a", FavoritesOnly: true},
		{Search: "zzz"},
	}

	for _, state := range states {
		once := filter.Apply(records, state, favorites)
		twice := filter.Apply(once, state, favorites)
		assert.Equal(t, once, twice)
	}
}

/*
TestApply_ResetReturnsEverything checks identity under the reset state.
*/
func TestApply_ResetReturnsEverything(t *testing.T) {
	records := catalogRecords()

	state := filter.State{City: "Recife", Search: "x", FavoritesOnly: true}.Reset()
	assert.False(t, state.IsActive())

	result := filter.Apply(records, state, set{})
	assert.Equal(t, records, result)

	// Output is a new slice
	result[0].Name = "changed"
	assert.Equal(t, "Mocotó", records[0].Name)

	assert.NotNil(t, filter.Apply(nil, state, nil))
}

/*
TestDeriveOptions_FirstOccurrenceOrder keeps dataset order and drops empties.
*/
func TestDeriveOptions_FirstOccurrenceOrder(t *testing.T) {
	records := catalogRecords()

	assert.Equal(t,
		[]string{filter.All, "São Paulo", "Recife", "Olinda"},
		filter.DeriveOptions(records, filter.FieldCity))
	assert.Equal(t,
		[]string{filter.All, "Vila Medeiros", "Jardim Paulistano", "Espinheiro"},
		filter.DeriveOptions(records, filter.FieldNeighborhood))
	assert.Equal(t, []string{filter.All}, filter.DeriveOptions(nil, filter.FieldType))
}

/*
TestDeriveOptions_SentinelGuard never emits the sentinel as a real value.
*/
func TestDeriveOptions_SentinelGuard(t *testing.T) {
	records := []restaurant.Restaurant{
		{Name: "A", City: filter.All},
		{Name: "B", City: "X"},
	}

	options := filter.DeriveOptions(records, filter.FieldCity)
	assert.Equal(t, []string{filter.All, "X"}, options)
}

/*
TestDeriveAll fills every dimension.
*/
func TestDeriveAll(t *testing.T) {
	options := filter.DeriveAll(catalogRecords())

	for _, field := range filter.Fields {
		list := options.For(field)
		require.NotEmpty(t, list)
		assert.Equal(t, filter.All, list[0], string(field))
	}
	assert.Equal(t, []string{filter.All, "TRADICIONAL", "SOFISTICADO", "FITNESS"}, options.Type)
}

/*
TestComputeStatistics counts over the full list.
*/
func TestComputeStatistics(t *testing.T) {
	records := catalogRecords()
	stats := filter.ComputeStatistics(records)

	assert.Equal(t, filter.Statistics{Total: 5, Visited: 1, Pending: 2, WithReservation: 2}, stats)
	assert.LessOrEqual(t, stats.Visited+stats.Pending, stats.Total)

	assert.Equal(t, filter.Statistics{}, filter.ComputeStatistics(nil))
}

/*
TestValidateSelector accepts only All and derived values.
*/
func TestValidateSelector(t *testing.T) {
	options := filter.DeriveAll(catalogRecords())

	assert.NoError(t, filter.ValidateSelector(filter.FieldCity, filter.All, options))
	assert.NoError(t, filter.ValidateSelector(filter.FieldCity, "Recife", options))

	err := filter.ValidateSelector(filter.FieldCity, "Lisboa", options)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "city", appErr.Details[0].Field)
}
