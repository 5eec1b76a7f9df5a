package handler

import (
	"net/http"

	"github.com/pkordes/tap-billing/internal/fare"
)

type faresResponse struct {
	Stations map[string][]int `json:"stations"`
	Prices   []fare.Rule      `json:"prices"`
}

// GetFares handles GET /fares.
// It returns the station→zones map and the price rules the server bills with.
func (s *Server) GetFares(w http.ResponseWriter, _ *http.Request) {
	prices := s.fares.Rules()
	if prices == nil {
		prices = []fare.Rule{}
	}
	writeJSON(w, http.StatusOK, faresResponse{
		Stations: s.fares.Stations(),
		Prices:   prices,
	})
}
