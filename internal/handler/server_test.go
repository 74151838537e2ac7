package handler_test

import (
	"context"
	"net/http"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/handler"
	"github.com/pkordes/trip-planner/backend/internal/rates"
	"github.com/pkordes/trip-planner/backend/testutil"
)

// ---- mock TripDataServicer -------------------------------------------------

// mockTripServicer is a func-field test double for handler.TripDataServicer.
// Nil funcs fall back to a fixed sample model so tests only wire the method
// under test.
type mockTripServicer struct {
	model           func() domain.TripModel
	updateItinerary func(ctx context.Context, days []domain.DayPlan) (domain.TripModel, error)
	updateFlight    func(ctx context.Context, direction domain.FlightDirection, seg domain.FlightSegment) (domain.TripModel, error)
	updateHotel     func(ctx context.Context, hotel domain.HotelInfo) (domain.TripModel, error)
	addTicket       func(ctx context.Context, t domain.TicketRecord) (domain.TicketRecord, error)
	updateTicket    func(ctx context.Context, t domain.TicketRecord) (domain.TicketRecord, error)
	removeTicket    func(ctx context.Context, id string) error
	resetAll        func(ctx context.Context) error
	importAll       func(ctx context.Context, doc domain.TripModel) (domain.TripModel, error)
}

func (m *mockTripServicer) Model() domain.TripModel {
	if m.model != nil {
		return m.model()
	}
	return testutil.SampleModel()
}

func (m *mockTripServicer) UpdateItinerary(ctx context.Context, days []domain.DayPlan) (domain.TripModel, error) {
	return m.updateItinerary(ctx, days)
}

func (m *mockTripServicer) UpdateFlight(ctx context.Context, direction domain.FlightDirection, seg domain.FlightSegment) (domain.TripModel, error) {
	return m.updateFlight(ctx, direction, seg)
}

func (m *mockTripServicer) UpdateHotel(ctx context.Context, hotel domain.HotelInfo) (domain.TripModel, error) {
	return m.updateHotel(ctx, hotel)
}

func (m *mockTripServicer) AddTicket(ctx context.Context, t domain.TicketRecord) (domain.TicketRecord, error) {
	return m.addTicket(ctx, t)
}

func (m *mockTripServicer) UpdateTicket(ctx context.Context, t domain.TicketRecord) (domain.TicketRecord, error) {
	return m.updateTicket(ctx, t)
}

func (m *mockTripServicer) RemoveTicket(ctx context.Context, id string) error {
	return m.removeTicket(ctx, id)
}

func (m *mockTripServicer) ResetAll(ctx context.Context) error {
	return m.resetAll(ctx)
}

func (m *mockTripServicer) ImportAll(ctx context.Context, doc domain.TripModel) (domain.TripModel, error) {
	return m.importAll(ctx, doc)
}

// ---- mock RateServicer -----------------------------------------------------

type mockRateServicer struct {
	latest func(ctx context.Context, from, to string) (rates.Rate, error)
}

func (m *mockRateServicer) Latest(ctx context.Context, from, to string) (rates.Rate, error) {
	return m.latest(ctx, from, to)
}

// compile-time checks: the doubles must satisfy the handler interfaces.
var (
	_ handler.TripDataServicer = (*mockTripServicer)(nil)
	_ handler.RateServicer     = (*mockRateServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newTripHTTPHandler wires a Server with the trip service mock and no rates.
func newTripHTTPHandler(trips handler.TripDataServicer) http.Handler {
	return handler.NewServer(trips, nil).Routes()
}
