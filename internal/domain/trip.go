// Package domain contains the core data types for the tap billing system.
// This package has zero external dependencies and is imported by every other
// internal package (fare, service, repo, handler).
package domain

// Trip is a tap-in/tap-out pair for one customer.
// The pairing engine creates trips unpriced; CostInCents, ZoneFrom and ZoneTo
// are nil until Priced returns a priced copy.
type Trip struct {
	CustomerID       int64
	StationStart     string
	StationEnd       string
	StartedJourneyAt int64 // epoch millis of the first tap

	CostInCents *int64
	ZoneFrom    *int
	ZoneTo      *int
}

// IsPriced reports whether a fare has been resolved for the trip.
func (t Trip) IsPriced() bool {
	return t.CostInCents != nil
}

// Priced returns a copy of t carrying the given fare.
// The receiver is not modified.
func (t Trip) Priced(costInCents int64, zoneFrom, zoneTo int) Trip {
	t.CostInCents = &costInCents
	t.ZoneFrom = &zoneFrom
	t.ZoneTo = &zoneTo
	return t
}
