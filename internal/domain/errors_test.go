package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/tap-billing/internal/domain"
)

func TestIncompleteTripError_Message(t *testing.T) {
	err := &domain.IncompleteTripError{CustomerID: 1, Station: "G", Timestamp: 15}

	assert.Equal(t,
		"Missing second tap for trip of customer 1 started at 1970-01-01T00:00:00.015Z at station G",
		err.Error())
}

func TestZoneNotFoundError_Message(t *testing.T) {
	err := &domain.ZoneNotFoundError{Station: "Z"}

	assert.Equal(t, "Zone not found for station Z.", err.Error())
}

func TestPriceNotFoundError_Message(t *testing.T) {
	err := &domain.PriceNotFoundError{CustomerID: 3, StationStart: "A", StationEnd: "B"}

	assert.Equal(t, "Price not found for trip for customer 3 from station A to station B.", err.Error())
}

// TestTypedErrors_MatchSentinels verifies that each typed error can be
// classified with errors.Is, even after being wrapped.
func TestTypedErrors_MatchSentinels(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{&domain.InvalidTapError{Index: 0, Reason: "station is required"}, domain.ErrInvalidTap},
		{&domain.IncompleteTripError{CustomerID: 1}, domain.ErrIncompleteTrip},
		{&domain.ZoneNotFoundError{Station: "Z"}, domain.ErrZoneNotFound},
		{&domain.PriceNotFoundError{CustomerID: 1}, domain.ErrPriceNotFound},
	}
	for _, tc := range cases {
		wrapped := fmt.Errorf("stage: %w", tc.err)
		assert.ErrorIs(t, wrapped, tc.sentinel)
		assert.False(t, errors.Is(wrapped, domain.ErrValidation))
	}
}

func TestFormatInstant(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:00:00Z", domain.FormatInstant(0))
	assert.Equal(t, "1970-01-01T00:00:00.015Z", domain.FormatInstant(15))
	assert.Equal(t, "1970-01-01T00:00:00.150Z", domain.FormatInstant(150))
	assert.Equal(t, "2021-03-01T08:30:00Z", domain.FormatInstant(1614587400000))
}
