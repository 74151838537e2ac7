package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// postTicket handles POST /api/tickets.
// The payload travels inline as the data-URL string the uploading view
// produced; the service stores it in the blob store before the ticket is
// recorded, so a storage failure leaves no half-added ticket behind.
func (s *Server) postTicket(w http.ResponseWriter, r *http.Request) {
	var ticket domain.TicketRecord
	if err := json.NewDecoder(r.Body).Decode(&ticket); err != nil {
		writeBadRequest(w, "request body must be a JSON ticket record")
		return
	}

	created, err := s.trips.AddTicket(r.Context(), ticket)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// putTicket handles PUT /api/tickets/{id}.
// The path id wins over any id in the body.
func (s *Server) putTicket(w http.ResponseWriter, r *http.Request) {
	var ticket domain.TicketRecord
	if err := json.NewDecoder(r.Body).Decode(&ticket); err != nil {
		writeBadRequest(w, "request body must be a JSON ticket record")
		return
	}
	ticket.ID = chi.URLParam(r, "id")

	updated, err := s.trips.UpdateTicket(r.Context(), ticket)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteTicket handles DELETE /api/tickets/{id}.
func (s *Server) deleteTicket(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.RemoveTicket(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
