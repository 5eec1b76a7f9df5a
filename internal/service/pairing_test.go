package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tap-billing/internal/domain"
	"github.com/pkordes/tap-billing/internal/service"
)

func tap(ts, customer int64, station string) domain.Tap {
	return domain.Tap{CustomerID: customer, Station: station, Timestamp: ts}
}

func unpriced(customer int64, start, end string, at int64) domain.Trip {
	return domain.Trip{CustomerID: customer, StationStart: start, StationEnd: end, StartedJourneyAt: at}
}

func TestPairTaps_TwoTaps_OneTrip(t *testing.T) {
	results := service.PairTaps([]domain.Tap{tap(10, 1, "A"), tap(12, 1, "B")})

	require.Len(t, results, 1)
	require.True(t, results[0].IsOk())
	assert.Equal(t, unpriced(1, "A", "B", 10), results[0].Value)
}

func TestPairTaps_FourTaps_TwoTrips(t *testing.T) {
	results := service.PairTaps([]domain.Tap{
		tap(10, 1, "A"), tap(12, 1, "B"), tap(15, 1, "G"), tap(17, 1, "C"),
	})

	require.Len(t, results, 2)
	assert.Equal(t, unpriced(1, "A", "B", 10), results[0].Value)
	assert.Equal(t, unpriced(1, "G", "C", 15), results[1].Value)
}

// TestPairTaps_PreservesArrivalOrder verifies taps are paired by position, not
// by timestamp: the out-of-order timestamps below must not be re-sorted.
func TestPairTaps_PreservesArrivalOrder(t *testing.T) {
	results := service.PairTaps([]domain.Tap{
		tap(40, 1, "A"), tap(10, 1, "B"), tap(30, 1, "C"), tap(20, 1, "D"),
	})

	require.Len(t, results, 2)
	assert.Equal(t, unpriced(1, "A", "B", 40), results[0].Value)
	assert.Equal(t, unpriced(1, "C", "D", 30), results[1].Value)
}

func TestPairTaps_OddCount_TrailingTapIsIncomplete(t *testing.T) {
	results := service.PairTaps([]domain.Tap{tap(10, 1, "A"), tap(12, 1, "B"), tap(15, 1, "G")})

	require.Len(t, results, 2)
	assert.Equal(t, unpriced(1, "A", "B", 10), results[0].Value)

	var incomplete *domain.IncompleteTripError
	require.ErrorAs(t, results[1].Err, &incomplete)
	assert.Equal(t, int64(1), incomplete.CustomerID)
	assert.Equal(t, "G", incomplete.Station)
	assert.Equal(t, int64(15), incomplete.Timestamp)
	assert.Equal(t,
		"Missing second tap for trip of customer 1 started at 1970-01-01T00:00:00.015Z at station G",
		results[1].Err.Error())
}

func TestPairTaps_TwoCustomers(t *testing.T) {
	results := service.PairTaps([]domain.Tap{
		tap(10, 1, "A"), tap(12, 1, "B"),
		tap(11, 2, "B"), tap(16, 2, "E"),
		tap(15, 1, "G"), tap(17, 1, "C"),
	})

	require.Len(t, results, 3)
	assert.Equal(t, unpriced(1, "A", "B", 10), results[0].Value)
	assert.Equal(t, unpriced(1, "G", "C", 15), results[1].Value)
	assert.Equal(t, unpriced(2, "B", "E", 11), results[2].Value)
}

// TestPairTaps_InterleavedCustomers_NeverCrossCustomers verifies that taps of
// different customers arriving interleaved are still paired per customer.
func TestPairTaps_InterleavedCustomers_NeverCrossCustomers(t *testing.T) {
	results := service.PairTaps([]domain.Tap{
		tap(10, 1, "A"), tap(11, 2, "B"), tap(12, 1, "B"),
		tap(16, 2, "E"), tap(15, 1, "G"), tap(17, 1, "C"),
	})

	require.Len(t, results, 3)
	assert.Equal(t, unpriced(1, "A", "B", 10), results[0].Value)
	assert.Equal(t, unpriced(1, "G", "C", 15), results[1].Value)
	assert.Equal(t, unpriced(2, "B", "E", 11), results[2].Value)
}

func TestPairTaps_SingleTapPerCustomer(t *testing.T) {
	results := service.PairTaps([]domain.Tap{tap(10, 1, "A"), tap(11, 2, "B")})

	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, domain.ErrIncompleteTrip)
	assert.ErrorIs(t, results[1].Err, domain.ErrIncompleteTrip)
}

func TestPairTaps_Empty(t *testing.T) {
	results := service.PairTaps(nil)

	require.NotNil(t, results)
	assert.Empty(t, results)
}
