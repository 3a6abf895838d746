// Package schedule provides the static planting/harvest lookup table.
//
// The table is a flat mapping from a normalized "country_crop" key to a
// month→status map, bundled at build time and read-only at runtime. Absence
// of a key is a valid "no data" state, not an error.
package schedule

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed data/planting_schedule.json
var tableFS embed.FS

// Status values that carry rendering meaning. Other tags are allowed and
// displayed as-is.
const (
	StatusPlant   = "plant"
	StatusHarvest = "harvest"
)

// Table is the immutable schedule lookup table.
type Table struct {
	entries map[string]map[string]string
}

// Load parses the bundled schedule asset into a Table.
func Load() (*Table, error) {
	data, err := tableFS.ReadFile("data/planting_schedule.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule asset: %w", err)
	}
	return Parse(data)
}

// Parse builds a Table from raw JSON. Keys are normalized to lower case so
// lookups stay case-insensitive even for hand-edited assets.
func Parse(data []byte) (*Table, error) {
	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse schedule asset: %w", err)
	}

	entries := make(map[string]map[string]string, len(raw))
	for k, v := range raw {
		entries[strings.ToLower(k)] = v
	}
	return &Table{entries: entries}, nil
}

// New builds a Table directly from a key→months map. Intended for tests.
func New(entries map[string]map[string]string) *Table {
	t := &Table{entries: make(map[string]map[string]string, len(entries))}
	for k, v := range entries {
		t.entries[strings.ToLower(k)] = v
	}
	return t
}

// Key normalizes a (country, crop) pair into the table's composite key.
func Key(country, crop string) string {
	return strings.ToLower(strings.TrimSpace(country)) + "_" + strings.ToLower(strings.TrimSpace(crop))
}

// Lookup returns the month→status map for the given pair. The second return
// is false when the table has no data for the pair; that is the regular
// "no data available" state, not a failure.
func (t *Table) Lookup(country, crop string) (map[string]string, bool) {
	months, ok := t.entries[Key(country, crop)]
	return months, ok
}

// CropsForCountry derives the set of crops with data for the given country
// by scanning key prefixes. The result is de-duplicated and sorted so
// rendering order is stable.
func (t *Table) CropsForCountry(country string) []string {
	prefix := strings.ToLower(strings.TrimSpace(country)) + "_"

	seen := make(map[string]struct{})
	var crops []string
	for k := range t.entries {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		crop := strings.TrimPrefix(k, prefix)
		if _, ok := seen[crop]; ok {
			continue
		}
		seen[crop] = struct{}{}
		crops = append(crops, crop)
	}

	sort.Strings(crops)
	return crops
}

// Countries lists every country present in the table, sorted.
func (t *Table) Countries() []string {
	seen := make(map[string]struct{})
	var countries []string
	for k := range t.entries {
		country, _, ok := strings.Cut(k, "_")
		if !ok || country == "" {
			continue
		}
		if _, dup := seen[country]; dup {
			continue
		}
		seen[country] = struct{}{}
		countries = append(countries, country)
	}

	sort.Strings(countries)
	return countries
}

// monthOrder maps month names to calendar positions for display sorting.
var monthOrder = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

// SortedMonths returns the keys of a month→status map in calendar order.
// Unrecognized labels sort after the known months, alphabetically.
func SortedMonths(months map[string]string) []string {
	keys := make([]string, 0, len(months))
	for m := range months {
		keys = append(keys, m)
	}

	sort.Slice(keys, func(i, j int) bool {
		oi, iok := monthOrder[strings.ToLower(keys[i])]
		oj, jok := monthOrder[strings.ToLower(keys[j])]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return keys[i] < keys[j]
	})
	return keys
}
