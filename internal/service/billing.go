package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/tap-billing/internal/domain"
)

// FareResolver prices a single trip.
// *fare.Resolver satisfies it; tests inject a function-backed fake.
type FareResolver interface {
	Resolve(trip domain.Trip) (domain.Trip, error)
}

// BillingService runs the full pipeline: ingested taps → trips → priced
// trips → customer summaries. A rejected item is counted, logged and dropped;
// it never aborts the run.
type BillingService struct {
	fares    FareResolver
	log      *slog.Logger
	newRunID func() string
}

// NewBillingService constructs a BillingService that prices trips with fares
// and logs through log.
func NewBillingService(fares FareResolver, log *slog.Logger, opts ...BillingOption) *BillingService {
	svc := &BillingService{
		fares:    fares,
		log:      log,
		newRunID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// BillingOption customises a BillingService.
type BillingOption func(*BillingService)

// WithRunIDs overrides the run id generator (useful for tests).
func WithRunIDs(next func() string) BillingOption {
	return func(s *BillingService) {
		if next != nil {
			s.newRunID = next
		}
	}
}

// Run bills one batch of ingested taps.
// taps holds one Result per input record; failed records are counted as
// ingestion errors. The returned report only covers successfully priced trips.
func (s *BillingService) Run(ctx context.Context, taps []domain.Result[domain.Tap]) (domain.BillingReport, domain.RunStats) {
	log := s.log.With("run_id", s.newRunID())
	var stats domain.RunStats

	validTaps, ingestErrs := domain.Partition(taps)
	stats.Taps = len(validTaps)
	stats.IngestErrors = len(ingestErrs)
	s.reject(ctx, log, "ingestion", ingestErrs, &stats)
	log.InfoContext(ctx, "taps imported", "taps", stats.Taps, "errors", stats.IngestErrors)

	trips, pairingErrs := domain.Partition(PairTaps(validTaps))
	stats.Trips = len(trips)
	stats.PairingErrors = len(pairingErrs)
	s.reject(ctx, log, "pairing", pairingErrs, &stats)
	log.InfoContext(ctx, "trips paired", "trips", stats.Trips, "errors", stats.PairingErrors)

	priced, pricingErrs := domain.Partition(s.price(trips))
	stats.PricedTrips = len(priced)
	stats.PricingErrors = len(pricingErrs)
	s.reject(ctx, log, "pricing", pricingErrs, &stats)
	log.InfoContext(ctx, "trips priced", "trips", stats.PricedTrips, "errors", stats.PricingErrors)

	report := domain.BillingReport{Summaries: Aggregate(priced)}
	log.InfoContext(ctx, "billing complete",
		"customers", len(report.Summaries),
		"errors", stats.ErrorCount(),
	)
	return report, stats
}

// price resolves every trip through the configured FareResolver.
func (s *BillingService) price(trips []domain.Trip) []domain.Result[domain.Trip] {
	out := make([]domain.Result[domain.Trip], 0, len(trips))
	for _, t := range trips {
		priced, err := s.fares.Resolve(t)
		if err != nil {
			out = append(out, domain.Fail[domain.Trip](err))
			continue
		}
		out = append(out, domain.Ok(priced))
	}
	return out
}

func (s *BillingService) reject(ctx context.Context, log *slog.Logger, stage string, errs []error, stats *domain.RunStats) {
	for _, err := range errs {
		log.WarnContext(ctx, "item rejected", "stage", stage, "error", err.Error())
		stats.Messages = append(stats.Messages, err.Error())
	}
}
