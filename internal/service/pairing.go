// Package service contains the billing pipeline for the tap billing system.
// Pairing and aggregation are pure functions over immutable inputs; the
// BillingService chains them with fare resolution and accounts for the items
// each stage rejects. No I/O lives here.
package service

import (
	"github.com/pkordes/tap-billing/internal/domain"
)

// PairTaps turns a tap sequence into trips.
//
// Taps are grouped per customer, keeping each customer's taps in arrival
// order (timestamps are never used for ordering), then consumed two at a time:
// taps 0-1 form the first trip, 2-3 the second, and so on. A trailing
// unpaired tap yields an *domain.IncompleteTripError. Customers appear in the
// output in the order their first tap was seen.
func PairTaps(taps []domain.Tap) []domain.Result[domain.Trip] {
	order := make([]int64, 0)
	byCustomer := make(map[int64][]domain.Tap)
	for _, tap := range taps {
		if _, seen := byCustomer[tap.CustomerID]; !seen {
			order = append(order, tap.CustomerID)
		}
		byCustomer[tap.CustomerID] = append(byCustomer[tap.CustomerID], tap)
	}

	results := make([]domain.Result[domain.Trip], 0, len(taps)/2+len(order))
	for _, id := range order {
		group := byCustomer[id]
		for i := 0; i < len(group); i += 2 {
			first := group[i]
			if i+1 == len(group) {
				results = append(results, domain.Fail[domain.Trip](&domain.IncompleteTripError{
					CustomerID: first.CustomerID,
					Station:    first.Station,
					Timestamp:  first.Timestamp,
				}))
				break
			}
			second := group[i+1]
			results = append(results, domain.Ok(domain.Trip{
				CustomerID:       first.CustomerID,
				StationStart:     first.Station,
				StationEnd:       second.Station,
				StartedJourneyAt: first.Timestamp,
			}))
		}
	}
	return results
}
