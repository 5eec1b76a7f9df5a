package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/tap-billing/internal/domain"
	"github.com/pkordes/tap-billing/internal/repo"
)

// billingResponse extends the report document with the run's rejections.
type billingResponse struct {
	repo.ReportDocument
	Errors runErrors `json:"errors"`
}

type runErrors struct {
	Ingestion int      `json:"ingestion"`
	Pairing   int      `json:"pairing"`
	Pricing   int      `json:"pricing"`
	Messages  []string `json:"messages"`
}

// CreateBilling handles POST /billing.
// The body is a tap document; the response is the billing report plus the
// count and message of every rejected item. Rejected items never fail the
// request; only an unreadable body does.
func (s *Server) CreateBilling(w http.ResponseWriter, r *http.Request) {
	taps, err := repo.DecodeTaps(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
			return
		}
		s.log.WarnContext(r.Context(), "rejected tap document", "error", err)
		writeError(w, http.StatusBadRequest, "invalid_request", "body is not a valid tap document")
		return
	}

	report, stats := s.billing.Run(r.Context(), taps)
	writeJSON(w, http.StatusOK, toBillingResponse(report, stats))
}

func toBillingResponse(report domain.BillingReport, stats domain.RunStats) billingResponse {
	messages := stats.Messages
	if messages == nil {
		messages = []string{}
	}
	return billingResponse{
		ReportDocument: repo.NewReportDocument(report),
		Errors: runErrors{
			Ingestion: stats.IngestErrors,
			Pairing:   stats.PairingErrors,
			Pricing:   stats.PricingErrors,
			Messages:  messages,
		},
	}
}
