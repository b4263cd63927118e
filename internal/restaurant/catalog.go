// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package restaurant

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/taibuivan/restaurants/internal/platform/apperr"
	"github.com/taibuivan/restaurants/pkg/slug"
	idgen "github.com/taibuivan/restaurants/pkg/uuid"
)

// catalogNamespace scopes catalog fingerprints.
var catalogNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:restaurant-directory:catalog"))

// Catalog is the immutable, ordered collection of restaurants.
//
// # Concurrency
//
// A Catalog is never modified after [NewCatalog] returns and is safe for
// concurrent readers.
type Catalog struct {
	records     []Restaurant
	byID        map[string]int
	bySlug      map[string]int
	fingerprint string
}

// NewCatalog assigns identity to records and freezes them in source order.
//
// # Identity
//
// The id is a UUIDv5 of name, address, city and neighborhood. Records that
// share all four fields get their ordinal occurrence mixed in, so ids stay
// unique and stable as long as the dataset is unchanged.
func NewCatalog(records []Restaurant) *Catalog {
	catalog := &Catalog{
		records: make([]Restaurant, len(records)),
		byID:    make(map[string]int, len(records)),
		bySlug:  make(map[string]int, len(records)),
	}

	occurrences := make(map[string]int, len(records))
	ids := make([]string, len(records))

	for i, record := range records {
		parts := []string{record.Name, record.Address, record.City, record.Neighborhood}
		base := idgen.FromFields(idgen.RestaurantNamespace, parts...)

		id := base
		if seen := occurrences[base]; seen > 0 {
			id = idgen.FromFields(idgen.RestaurantNamespace, append(parts, strconv.Itoa(seen))...)
		}
		occurrences[base]++

		record.ID = id
		record.Slug = slug.From(record.Name)

		catalog.records[i] = record
		catalog.byID[id] = i
		if _, taken := catalog.bySlug[record.Slug]; !taken && record.Slug != "" {
			catalog.bySlug[record.Slug] = i
		}
		ids[i] = id
	}

	catalog.fingerprint = idgen.FromFields(catalogNamespace, ids...)
	return catalog
}

// All returns a copy of every record in source order.
func (catalog *Catalog) All() []Restaurant {
	out := make([]Restaurant, len(catalog.records))
	copy(out, catalog.records)
	return out
}

// Len returns the number of records.
func (catalog *Catalog) Len() int { return len(catalog.records) }

// IDs returns every record id in source order.
func (catalog *Catalog) IDs() []string {
	ids := make([]string, len(catalog.records))
	for i, record := range catalog.records {
		ids[i] = record.ID
	}
	return ids
}

// Fingerprint identifies the catalog content; it changes whenever any id does.
func (catalog *Catalog) Fingerprint() string { return catalog.fingerprint }

// Find returns the record with the given id.
func (catalog *Catalog) Find(id string) (Restaurant, bool) {
	index, ok := catalog.byID[id]
	if !ok {
		return Restaurant{}, false
	}
	return catalog.records[index], true
}

// Contains reports whether id belongs to the catalog.
func (catalog *Catalog) Contains(id string) bool {
	_, ok := catalog.byID[id]
	return ok
}

// FindBySlug returns the first record whose slug matches.
func (catalog *Catalog) FindBySlug(value string) (Restaurant, bool) {
	index, ok := catalog.bySlug[value]
	if !ok {
		return Restaurant{}, false
	}
	return catalog.records[index], true
}

/*
Get resolves an identifier that is either a record id or a slug.

UUID-shaped identifiers are looked up by id first; anything else, or an
unknown id, falls back to the slug index.

Returns:
  - Restaurant: The matching record
  - error: apperr.NotFound if nothing matches
*/
func (catalog *Catalog) Get(identifier string) (Restaurant, error) {
	if idgen.IsValid(identifier) {
		if record, ok := catalog.Find(identifier); ok {
			return record, nil
		}
	}
	if record, ok := catalog.FindBySlug(identifier); ok {
		return record, nil
	}
	return Restaurant{}, apperr.NotFound("Restaurant")
}
