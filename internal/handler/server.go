// Package handler implements the HTTP handlers for the Trip Planner API.
// All handlers are methods on Server. Methods are split into files by
// concern (trip.go, ticket.go, data.go, ...) but share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/rates"
	"github.com/pkordes/trip-planner/backend/spec"
)

// TripDataServicer defines the trip operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the stores or service layer.
type TripDataServicer interface {
	Model() domain.TripModel
	UpdateItinerary(ctx context.Context, days []domain.DayPlan) (domain.TripModel, error)
	UpdateFlight(ctx context.Context, direction domain.FlightDirection, seg domain.FlightSegment) (domain.TripModel, error)
	UpdateHotel(ctx context.Context, hotel domain.HotelInfo) (domain.TripModel, error)
	AddTicket(ctx context.Context, t domain.TicketRecord) (domain.TicketRecord, error)
	UpdateTicket(ctx context.Context, t domain.TicketRecord) (domain.TicketRecord, error)
	RemoveTicket(ctx context.Context, id string) error
	ResetAll(ctx context.Context) error
	ImportAll(ctx context.Context, doc domain.TripModel) (domain.TripModel, error)
}

// RateServicer defines the exchange-rate lookup the rates handler depends on.
type RateServicer interface {
	Latest(ctx context.Context, from, to string) (rates.Rate, error)
}

// Server holds the dependencies shared by all API endpoints.
type Server struct {
	trips TripDataServicer
	rates RateServicer
}

// NewServer constructs the Server with all its dependencies.
// rates may be nil; the rates endpoint then reports 503.
func NewServer(trips TripDataServicer, rates RateServicer) *Server {
	return &Server{trips: trips, rates: rates}
}

// Routes returns the API route tree. Middleware is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/trip", s.getTrip)
		r.Put("/trip/itinerary", s.putItinerary)
		r.Put("/trip/flights/{direction}", s.putFlight)
		r.Put("/trip/hotel", s.putHotel)

		r.Post("/tickets", s.postTicket)
		r.Put("/tickets/{id}", s.putTicket)
		r.Delete("/tickets/{id}", s.deleteTicket)

		r.Get("/export", s.getExport)
		r.Post("/import", s.postImport)
		r.Post("/reset", s.postReset)

		r.Get("/summary", s.getSummary)
		r.Get("/print", s.getPrint)
		r.Get("/rates", s.getRates)
	})

	return r
}
