package service

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/pkordes/tap-billing/internal/domain"
)

// Aggregate builds one CustomerSummary per customer from priced trips.
//
// Each summary's trips are stable-sorted by StartedJourneyAt (equal start
// times keep their input order) and the summaries are sorted by CustomerID,
// so the result does not depend on input order beyond those ties.
// Always returns a non-nil slice.
//
// Every trip must be priced; an unpriced trip here means an earlier stage let
// a failed item through, and Aggregate panics.
func Aggregate(trips []domain.Trip) []domain.CustomerSummary {
	groups := make(map[int64][]domain.Trip)
	for _, t := range trips {
		if !t.IsPriced() {
			panic(fmt.Sprintf("service.Aggregate: unpriced trip for customer %d from %s to %s",
				t.CustomerID, t.StationStart, t.StationEnd))
		}
		groups[t.CustomerID] = append(groups[t.CustomerID], t)
	}

	summaries := make([]domain.CustomerSummary, 0, len(groups))
	for id, group := range groups {
		var total int64
		for _, t := range group {
			total += *t.CostInCents
		}
		slices.SortStableFunc(group, func(a, b domain.Trip) int {
			return cmp.Compare(a.StartedJourneyAt, b.StartedJourneyAt)
		})
		summaries = append(summaries, domain.CustomerSummary{
			CustomerID:       id,
			TotalCostInCents: total,
			Trips:            group,
		})
	}

	slices.SortFunc(summaries, func(a, b domain.CustomerSummary) int {
		return cmp.Compare(a.CustomerID, b.CustomerID)
	})
	return summaries
}
