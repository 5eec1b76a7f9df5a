package fare

import (
	"github.com/pkordes/tap-billing/internal/domain"
)

// Resolver prices trips against a Table.
type Resolver struct {
	table *Table
}

// NewResolver constructs a Resolver backed by table.
func NewResolver(table *Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns a priced copy of trip.
//
// Every zone of the start station is combined with every zone of the end
// station, and the cheapest rule matching any combination wins. On equal
// costs the first match in (start zone, end zone, table) order is kept.
// The stored zones are those of the winning rule, so for a boundary station
// they may differ from the station's first zone.
//
// Returns *domain.ZoneNotFoundError when either station is unknown (the start
// station is checked first) and *domain.PriceNotFoundError when no rule
// covers any combination.
func (r *Resolver) Resolve(trip domain.Trip) (domain.Trip, error) {
	zonesFrom := r.table.ZonesOf(trip.StationStart)
	if len(zonesFrom) == 0 {
		return domain.Trip{}, &domain.ZoneNotFoundError{Station: trip.StationStart}
	}
	zonesTo := r.table.ZonesOf(trip.StationEnd)
	if len(zonesTo) == 0 {
		return domain.Trip{}, &domain.ZoneNotFoundError{Station: trip.StationEnd}
	}

	var best *Rule
	for _, from := range zonesFrom {
		for _, to := range zonesTo {
			for _, rule := range r.table.RulesFor(from, to) {
				rule := rule // per-iteration copy (go.mod targets pre-1.22 loop semantics)
				if best == nil || rule.CostInCents < best.CostInCents {
					best = &rule
				}
			}
		}
	}
	if best == nil {
		return domain.Trip{}, &domain.PriceNotFoundError{
			CustomerID:   trip.CustomerID,
			StationStart: trip.StationStart,
			StationEnd:   trip.StationEnd,
		}
	}
	return trip.Priced(best.CostInCents, best.ZoneFrom, best.ZoneTo), nil
}
