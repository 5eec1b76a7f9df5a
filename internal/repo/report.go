package repo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkordes/tap-billing/internal/domain"
)

// ReportDocument is the output wire format: {"summaries": [...]}.
type ReportDocument struct {
	Summaries []SummaryRecord `json:"summaries"`
}

// SummaryRecord is one customer's entry in the report.
type SummaryRecord struct {
	CustomerID       int64        `json:"customerId"`
	TotalCostInCents int64        `json:"totalCostInCents"`
	Trips            []TripRecord `json:"trips"`
}

// TripRecord is a priced trip in the report. The customer id lives on the
// enclosing SummaryRecord only.
type TripRecord struct {
	StationStart     string `json:"stationStart"`
	StationEnd       string `json:"stationEnd"`
	StartedJourneyAt int64  `json:"startedJourneyAt"`
	CostInCents      int64  `json:"costInCents"`
	ZoneFrom         int    `json:"zoneFrom"`
	ZoneTo           int    `json:"zoneTo"`
}

// NewReportDocument maps a domain report to its wire format.
// Slices are always non-nil so an empty report encodes as {"summaries": []}.
func NewReportDocument(report domain.BillingReport) ReportDocument {
	doc := ReportDocument{Summaries: make([]SummaryRecord, 0, len(report.Summaries))}
	for _, s := range report.Summaries {
		rec := SummaryRecord{
			CustomerID:       s.CustomerID,
			TotalCostInCents: s.TotalCostInCents,
			Trips:            make([]TripRecord, 0, len(s.Trips)),
		}
		for _, t := range s.Trips {
			rec.Trips = append(rec.Trips, tripToRecord(t))
		}
		doc.Summaries = append(doc.Summaries, rec)
	}
	return doc
}

// tripToRecord flattens a priced trip. Unpriced trips never reach a report;
// their nil fields would encode as zero.
func tripToRecord(t domain.Trip) TripRecord {
	rec := TripRecord{
		StationStart:     t.StationStart,
		StationEnd:       t.StationEnd,
		StartedJourneyAt: t.StartedJourneyAt,
	}
	if t.CostInCents != nil {
		rec.CostInCents = *t.CostInCents
	}
	if t.ZoneFrom != nil {
		rec.ZoneFrom = *t.ZoneFrom
	}
	if t.ZoneTo != nil {
		rec.ZoneTo = *t.ZoneTo
	}
	return rec
}

// EncodeReport writes the report as indented JSON followed by a newline.
func EncodeReport(w io.Writer, report domain.BillingReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReportDocument(report)); err != nil {
		return fmt.Errorf("repo.EncodeReport: %w", err)
	}
	return nil
}

// WriteReportFile writes the report to path.
// The document is written to a temporary file in the same directory and
// renamed into place, so a failed run never leaves a partial report behind.
func WriteReportFile(path string, report domain.BillingReport) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("repo.WriteReportFile: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = EncodeReport(tmp, report); err != nil {
		return fmt.Errorf("repo.WriteReportFile: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("repo.WriteReportFile: close: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("repo.WriteReportFile: %w", err)
	}
	return nil
}
