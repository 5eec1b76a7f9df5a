// Package fare resolves the price of a trip from a static zone/price table.
// A Table is immutable once built; a single Table can back any number of
// concurrent Resolvers.
package fare

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/pkordes/tap-billing/internal/domain"
)

// Rule prices a directional journey from one zone to another.
// (1,3) and (3,1) are independent rules.
type Rule struct {
	ZoneFrom    int   `yaml:"zoneFrom" json:"zoneFrom"`
	ZoneTo      int   `yaml:"zoneTo" json:"zoneTo"`
	CostInCents int64 `yaml:"costInCents" json:"costInCents"`
}

// Table is the read-only station→zones and price-rule lookup data.
type Table struct {
	stations map[string][]int
	rules    []Rule
}

// NewTable validates and copies the given lookup data.
// Returns domain.ErrValidation when a station code is blank, a station has
// no zones, or a rule has a negative cost.
func NewTable(stations map[string][]int, rules []Rule) (*Table, error) {
	var problems []string
	copied := make(map[string][]int, len(stations))
	for code, zones := range stations {
		if strings.TrimSpace(code) == "" {
			problems = append(problems, "station code is required")
			continue
		}
		if len(zones) == 0 {
			problems = append(problems, fmt.Sprintf("station %s has no zones", code))
			continue
		}
		copied[code] = slices.Clone(zones)
	}
	for i, r := range rules {
		if r.CostInCents < 0 {
			problems = append(problems, fmt.Sprintf("price rule #%d has a negative cost", i))
		}
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(problems, "; "))
	}
	return &Table{stations: copied, rules: slices.Clone(rules)}, nil
}

// DefaultTable returns the built-in network: nine stations over four zones.
// B, C, E and F sit on zone boundaries.
func DefaultTable() *Table {
	t, err := NewTable(
		map[string][]int{
			"A": {1}, "B": {1, 2}, "C": {2, 3},
			"D": {2}, "E": {2, 3}, "F": {3, 4},
			"G": {4}, "H": {4}, "I": {4},
		},
		[]Rule{
			{ZoneFrom: 1, ZoneTo: 2, CostInCents: 240},
			{ZoneFrom: 3, ZoneTo: 4, CostInCents: 200},
			{ZoneFrom: 3, ZoneTo: 1, CostInCents: 200},
			{ZoneFrom: 3, ZoneTo: 2, CostInCents: 200},
			{ZoneFrom: 4, ZoneTo: 1, CostInCents: 300},
			{ZoneFrom: 4, ZoneTo: 2, CostInCents: 300},
			{ZoneFrom: 1, ZoneTo: 3, CostInCents: 280},
			{ZoneFrom: 2, ZoneTo: 3, CostInCents: 280},
			{ZoneFrom: 1, ZoneTo: 4, CostInCents: 300},
			{ZoneFrom: 2, ZoneTo: 4, CostInCents: 300},
		},
	)
	if err != nil {
		panic("fare: invalid default table: " + err.Error())
	}
	return t
}

// ZonesOf returns the zones of a station, or nil when the station is unknown.
// The returned slice is a copy.
func (t *Table) ZonesOf(station string) []int {
	return slices.Clone(t.stations[station])
}

// RulesFor returns every rule matching the (zoneFrom, zoneTo) pair exactly,
// in table order.
func (t *Table) RulesFor(zoneFrom, zoneTo int) []Rule {
	var out []Rule
	for _, r := range t.rules {
		if r.ZoneFrom == zoneFrom && r.ZoneTo == zoneTo {
			out = append(out, r)
		}
	}
	return out
}

// Stations returns a copy of the station→zones map.
func (t *Table) Stations() map[string][]int {
	out := make(map[string][]int, len(t.stations))
	for code, zones := range t.stations {
		out[code] = slices.Clone(zones)
	}
	return out
}

// Rules returns a copy of the price rules in table order.
func (t *Table) Rules() []Rule {
	return slices.Clone(t.rules)
}
