// Package testutil provides shared helpers for tests: tap fixtures and
// throwaway input files.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkordes/tap-billing/internal/domain"
)

// Tap builds a domain.Tap in the (timestamp, customer, station) order used by
// the examples in the documentation.
func Tap(ts, customer int64, station string) domain.Tap {
	return domain.Tap{CustomerID: customer, Station: station, Timestamp: ts}
}

// TapDocument encodes taps as an input document:
// {"taps":[{"unixTimestamp":..,"customerId":..,"station":..}]}.
func TapDocument(t *testing.T, taps ...domain.Tap) []byte {
	t.Helper()

	type record struct {
		UnixTimestamp int64  `json:"unixTimestamp"`
		CustomerID    int64  `json:"customerId"`
		Station       string `json:"station"`
	}
	doc := struct {
		Taps []record `json:"taps"`
	}{Taps: make([]record, 0, len(taps))}
	for _, tap := range taps {
		doc.Taps = append(doc.Taps, record{
			UnixTimestamp: tap.Timestamp,
			CustomerID:    tap.CustomerID,
			Station:       tap.Station,
		})
	}

	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("testutil.TapDocument: %v", err)
	}
	return b
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path. The directory is removed when the test finishes.
func WriteFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("testutil.WriteFile: %v", err)
	}
	return path
}
