package domain

// CustomerSummary is the billing aggregate for one customer.
// Trips are ordered by StartedJourneyAt ascending and TotalCostInCents is the
// sum of their costs.
type CustomerSummary struct {
	CustomerID       int64
	TotalCostInCents int64
	Trips            []Trip
}

// BillingReport is the full output of one billing run, one summary per
// customer ordered by CustomerID ascending.
type BillingReport struct {
	Summaries []CustomerSummary
}

// RunStats counts the items each stage rejected during a billing run.
// Messages holds the Error() text of every rejected item in stage order.
type RunStats struct {
	Taps          int
	Trips         int
	PricedTrips   int
	IngestErrors  int
	PairingErrors int
	PricingErrors int
	Messages      []string
}

// ErrorCount returns the total number of rejected items across all stages.
func (s RunStats) ErrorCount() int {
	return s.IngestErrors + s.PairingErrors + s.PricingErrors
}
