package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// getTrip handles GET /api/trip.
// It returns the full in-memory model, ticket payloads included, so the
// views can render the gallery without a second round trip.
func (s *Server) getTrip(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.trips.Model())
}

// putItinerary handles PUT /api/trip/itinerary.
// The body is the complete itinerary; days are replaced wholesale.
func (s *Server) putItinerary(w http.ResponseWriter, r *http.Request) {
	var days []domain.DayPlan
	if err := json.NewDecoder(r.Body).Decode(&days); err != nil {
		writeBadRequest(w, "request body must be a JSON array of day plans")
		return
	}

	model, err := s.trips.UpdateItinerary(r.Context(), days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model)
}

// putFlight handles PUT /api/trip/flights/{direction}.
func (s *Server) putFlight(w http.ResponseWriter, r *http.Request) {
	direction, err := domain.ParseFlightDirection(chi.URLParam(r, "direction"))
	if err != nil {
		writeError(w, err)
		return
	}

	var seg domain.FlightSegment
	if err := json.NewDecoder(r.Body).Decode(&seg); err != nil {
		writeBadRequest(w, "request body must be a JSON flight segment")
		return
	}

	model, err := s.trips.UpdateFlight(r.Context(), direction, seg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model)
}

// putHotel handles PUT /api/trip/hotel.
func (s *Server) putHotel(w http.ResponseWriter, r *http.Request) {
	var hotel domain.HotelInfo
	if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil {
		writeBadRequest(w, "request body must be a JSON hotel record")
		return
	}

	model, err := s.trips.UpdateHotel(r.Context(), hotel)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model)
}
