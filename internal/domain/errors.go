package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation is returned when static input fails validation
// (e.g. a fare table with a station that has no zones).
var ErrValidation = errors.New("validation error")

// Per-item failure kinds. Every typed error below matches exactly one of
// these through errors.Is, so callers can classify without type switches.
var (
	ErrInvalidTap     = errors.New("invalid tap")
	ErrIncompleteTrip = errors.New("incomplete trip")
	ErrZoneNotFound   = errors.New("zone not found")
	ErrPriceNotFound  = errors.New("price not found")
)

// InvalidTapError reports a tap record rejected by the ingestor.
// Index is the zero-based position of the record in the input document.
type InvalidTapError struct {
	Index      int
	CustomerID int64
	Reason     string
}

func (e *InvalidTapError) Error() string {
	return fmt.Sprintf("Invalid tap #%d for customer %d: %s", e.Index, e.CustomerID, e.Reason)
}

func (e *InvalidTapError) Is(target error) bool { return target == ErrInvalidTap }

// IncompleteTripError reports a trailing tap that has no second tap to pair with.
type IncompleteTripError struct {
	CustomerID int64
	Station    string
	Timestamp  int64
}

func (e *IncompleteTripError) Error() string {
	return fmt.Sprintf("Missing second tap for trip of customer %d started at %s at station %s",
		e.CustomerID, FormatInstant(e.Timestamp), e.Station)
}

func (e *IncompleteTripError) Is(target error) bool { return target == ErrIncompleteTrip }

// ZoneNotFoundError reports a station absent from the zone table.
type ZoneNotFoundError struct {
	Station string
}

func (e *ZoneNotFoundError) Error() string {
	return fmt.Sprintf("Zone not found for station %s.", e.Station)
}

func (e *ZoneNotFoundError) Is(target error) bool { return target == ErrZoneNotFound }

// PriceNotFoundError reports a trip whose feasible zone pairs match no price rule.
type PriceNotFoundError struct {
	CustomerID   int64
	StationStart string
	StationEnd   string
}

func (e *PriceNotFoundError) Error() string {
	return fmt.Sprintf("Price not found for trip for customer %d from station %s to station %s.",
		e.CustomerID, e.StationStart, e.StationEnd)
}

func (e *PriceNotFoundError) Is(target error) bool { return target == ErrPriceNotFound }

// FormatInstant renders epoch millis as an ISO-8601 UTC instant.
// The fraction is printed in milliseconds and only when non-zero:
// 15 → "1970-01-01T00:00:00.015Z", 0 → "1970-01-01T00:00:00Z".
func FormatInstant(millis int64) string {
	t := time.UnixMilli(millis).UTC()
	if millis%1000 == 0 {
		return t.Format("2006-01-02T15:04:05Z07:00")
	}
	return t.Format("2006-01-02T15:04:05.000Z07:00")
}
