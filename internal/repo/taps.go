// Package repo reads tap documents and writes billing report documents.
// It owns the JSON wire formats; no billing logic lives here.
package repo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkordes/tap-billing/internal/domain"
)

// TapDocument is the input wire format: {"taps": [...]}.
// Records are kept raw so each one is decoded, and can fail, on its own.
type TapDocument struct {
	Taps []json.RawMessage `json:"taps"`
}

// TapRecord is one raw tap as it appears in the input document.
// Pointer fields distinguish a missing value from a zero value.
type TapRecord struct {
	UnixTimestamp *int64 `json:"unixTimestamp"`
	CustomerID    *int64 `json:"customerId"`
	Station       string `json:"station"`
}

// DecodeTaps reads a tap document from r.
// A document that is not valid JSON, or is followed by anything but
// whitespace, fails as a whole. A record that is well-formed JSON but has the
// wrong shape or is semantically invalid becomes a failed Result carrying an
// *domain.InvalidTapError, one Result per record in document order.
func DecodeTaps(r io.Reader) ([]domain.Result[domain.Tap], error) {
	var doc TapDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("repo.DecodeTaps: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return nil, fmt.Errorf("repo.DecodeTaps: %w", err)
	}
	return doc.Validate(), nil
}

var errTrailingData = errors.New("unexpected data after tap document")

// ReadTapsFile decodes the tap document stored at path.
func ReadTapsFile(path string) ([]domain.Result[domain.Tap], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("repo.ReadTapsFile: %w", err)
	}
	defer f.Close()

	results, err := DecodeTaps(f)
	if err != nil {
		return nil, fmt.Errorf("repo.ReadTapsFile: %s: %w", path, err)
	}
	return results, nil
}

// Validate converts every record into a domain.Tap or an InvalidTapError.
func (d TapDocument) Validate() []domain.Result[domain.Tap] {
	out := make([]domain.Result[domain.Tap], 0, len(d.Taps))
	for i, raw := range d.Taps {
		tap, err := decodeRecord(i, raw)
		if err != nil {
			out = append(out, domain.Fail[domain.Tap](err))
			continue
		}
		out = append(out, domain.Ok(tap))
	}
	return out
}

// decodeRecord unmarshals a single record and converts it with toTap.
func decodeRecord(index int, raw json.RawMessage) (domain.Tap, error) {
	var rec TapRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		// Unmarshal keeps the fields it could decode, so the customer id is
		// still reported when another field has the wrong type.
		var customer int64
		if rec.CustomerID != nil {
			customer = *rec.CustomerID
		}
		return domain.Tap{}, &domain.InvalidTapError{Index: index, CustomerID: customer, Reason: typeReason(err)}
	}
	return rec.toTap(index)
}

// typeReason describes why a record could not be decoded into a TapRecord.
func typeReason(err error) string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return err.Error()
	}
	switch typeErr.Field {
	case "":
		return "record must be an object"
	case "station":
		return "station must be a string"
	default:
		return typeErr.Field + " must be an integer"
	}
}

// toTap enforces the tap contract:
//   - customerId is present and not negative.
//   - station is non-blank.
//   - unixTimestamp is present and not negative.
func (r TapRecord) toTap(index int) (domain.Tap, error) {
	invalid := func(customer int64, reason string) error {
		return &domain.InvalidTapError{Index: index, CustomerID: customer, Reason: reason}
	}
	if r.CustomerID == nil {
		return domain.Tap{}, invalid(0, "customerId is required")
	}
	customer := *r.CustomerID
	if customer < 0 {
		return domain.Tap{}, invalid(customer, "customerId must not be negative")
	}
	station := strings.TrimSpace(r.Station)
	if station == "" {
		return domain.Tap{}, invalid(customer, "station is required")
	}
	if r.UnixTimestamp == nil {
		return domain.Tap{}, invalid(customer, "unixTimestamp is required")
	}
	if *r.UnixTimestamp < 0 {
		return domain.Tap{}, invalid(customer, "unixTimestamp must not be negative")
	}
	return domain.Tap{CustomerID: customer, Station: station, Timestamp: *r.UnixTimestamp}, nil
}
