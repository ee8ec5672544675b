// Package catalog holds the per-vendor nutrient vocabularies: static tables
// mapping a source-specific nutrient key (an Open Food Facts field name, a
// USDA numeric nutrient ID, a Spoonacular display name) onto the canonical
// (name, unit, reference daily value) triple used across the whole store.
//
// Tables are data, not code — adding a vendor means adding a table and
// registering it, never editing lookup logic. Reference daily values are
// nominal adult RDAs; they are approximations, not medically authoritative.
package catalog

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is the canonical triple for one nutrient.
type Entry struct {
	Name string
	Unit string
	// DailyValue is the reference daily intake expressed in Unit.
	// Zero means no reference value exists; percent-of-DV is then nil.
	DailyValue float64
}

// Catalog is a read-only lookup table from vendor nutrient keys to
// canonical entries. Built once at adapter construction, never mutated.
type Catalog struct {
	entries map[string]Entry
}

func New(entries map[string]Entry) *Catalog {
	m := make(map[string]Entry, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &Catalog{entries: m}
}

// Lookup returns the canonical entry for a vendor key.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	e, ok := c.entries[key]
	return e, ok
}

func (c *Catalog) Len() int { return len(c.entries) }

// USDAKey formats a FoodData Central numeric nutrient ID into the string
// form used as a catalog key.
func USDAKey(nutrientID int) string { return strconv.Itoa(nutrientID) }

// UnknownKeyPolicy decides what a normalizer does with a nutrient key the
// catalog does not recognize.
type UnknownKeyPolicy int

const (
	// DropUnknown skips unrecognized nutrient keys.
	DropUnknown UnknownKeyPolicy = iota
	// HumanizeUnknown keeps them, synthesizing a display name from the raw
	// key. Used by the bulk columnar import where the column set is open.
	HumanizeUnknown
)

var titleCaser = cases.Title(language.English)

// Humanize builds a best-effort canonical entry from a raw vendor key:
// strips the per-100g / per-serving suffix, turns separators into spaces
// and title-cases the rest. The unit defaults to "mg" since the bulk
// dataset does not carry one per column.
func Humanize(key string) Entry {
	name := strings.TrimSuffix(key, "_100g")
	name = strings.TrimSuffix(name, "_serving")
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return Entry{
		Name: titleCaser.String(strings.TrimSpace(name)),
		Unit: "mg",
	}
}
