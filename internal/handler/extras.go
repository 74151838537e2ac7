// extras.go implements the small read-only conveniences around the core
// trip data: the share-text summary, the printable PDF, and the
// exchange-rate lookup.
package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/backend/internal/service"
)

// getSummary handles GET /api/summary.
// Returns the trip as plain text for copy-and-paste sharing.
func (s *Server) getSummary(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(service.Summary(s.trips.Model())))
}

// getPrint handles GET /api/print?mode=itinerary|flights|all.
// Returns a printable A4 PDF of the selected sections. Mode defaults to
// "all" when omitted.
func (s *Server) getPrint(w http.ResponseWriter, r *http.Request) {
	modeParam := r.URL.Query().Get("mode")
	if modeParam == "" {
		modeParam = string(service.PrintAll)
	}
	mode, err := service.ParsePrintMode(modeParam)
	if err != nil {
		writeError(w, err)
		return
	}

	pdf, err := service.RenderPDF(s.trips.Model(), mode)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="trip-plan.pdf"`)
	_, _ = w.Write(pdf)
}

// getRates handles GET /api/rates?from=SGD&to=TWD.
// Proxies the upstream rate API so the views need no second origin.
func (s *Server) getRates(w http.ResponseWriter, r *http.Request) {
	if s.rates == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{errorDetail{
			Code:    "unavailable",
			Message: "exchange rates are not configured",
		}})
		return
	}

	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeBadRequest(w, "query parameters from and to are required")
		return
	}

	rate, err := s.rates.Latest(r.Context(), from, to)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorBody{errorDetail{
			Code:    "upstream_error",
			Message: "rate lookup failed",
		}})
		return
	}
	writeJSON(w, http.StatusOK, rate)
}
