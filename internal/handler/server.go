// Package handler implements the HTTP handlers for the tap billing API.
// All handlers are methods on Server; Routes mounts them on a chi router.
// Methods are split into files (health.go, billing.go, fares.go) but share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/tap-billing/internal/domain"
	"github.com/pkordes/tap-billing/internal/fare"
	"github.com/pkordes/tap-billing/openapi"
)

// BillingRunner runs one billing batch. Defining the interface here, in the
// consumer package, lets handler tests inject a fake pipeline.
type BillingRunner interface {
	Run(ctx context.Context, taps []domain.Result[domain.Tap]) (domain.BillingReport, domain.RunStats)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	billing BillingRunner
	fares   *fare.Table
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(billing BillingRunner, fares *fare.Table, log *slog.Logger) *Server {
	return &Server{billing: billing, fares: fares, log: log}
}

// Routes returns a chi router serving every endpoint of the API.
// Cross-cutting middleware (logging, CORS, body limits) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/fares", s.GetFares)
	r.Post("/billing", s.CreateBilling)
	r.Get("/openapi.yaml", serveOpenAPI)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapi.Document)
}
