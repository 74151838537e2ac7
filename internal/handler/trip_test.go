package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/testutil"
)

// ---- GET /api/trip ---------------------------------------------------------

func TestGetTrip_ReturnsFullModel(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/trip", nil)
	rec := httptest.NewRecorder()
	newTripHTTPHandler(&mockTripServicer{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var model domain.TripModel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&model))
	assert.Equal(t, testutil.SampleModel(), model)
}

// ---- PUT /api/trip/itinerary -----------------------------------------------

func TestPutItinerary_OK(t *testing.T) {
	var gotDays []domain.DayPlan
	svc := &mockTripServicer{
		updateItinerary: func(_ context.Context, days []domain.DayPlan) (domain.TripModel, error) {
			gotDays = days
			m := testutil.SampleModel()
			m.Itinerary = days
			return m, nil
		},
	}

	body := `[{"date":"2025-11-28","dayLabel":"Day 2","activities":[{"id":"b1","time":"09:30","title":"Singapore Zoo"}]}]`
	req := httptest.NewRequest(http.MethodPut, "/api/trip/itinerary", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTripHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, gotDays, 1)
	assert.Equal(t, "Singapore Zoo", gotDays[0].Activities[0].Title)
}

func TestPutItinerary_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/trip/itinerary", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	newTripHTTPHandler(&mockTripServicer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPutItinerary_ValidationError(t *testing.T) {
	svc := &mockTripServicer{
		updateItinerary: func(context.Context, []domain.DayPlan) (domain.TripModel, error) {
			return domain.TripModel{}, domain.ErrValidation
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/trip/itinerary", strings.NewReader("[]"))
	rec := httptest.NewRecorder()
	newTripHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")
}

// ---- PUT /api/trip/flights/{direction} -------------------------------------

func TestPutFlight_OK(t *testing.T) {
	var gotDirection domain.FlightDirection
	svc := &mockTripServicer{
		updateFlight: func(_ context.Context, direction domain.FlightDirection, seg domain.FlightSegment) (domain.TripModel, error) {
			gotDirection = direction
			m := testutil.SampleModel()
			m.Flights.Outbound = seg
			return m, nil
		},
	}

	body := `{"airline":"STARLUX","code":"JX775","date":"2025-11-27","time":"10:00","origin":"TPE","destination":"SIN","terminal":"T2"}`
	req := httptest.NewRequest(http.MethodPut, "/api/trip/flights/outbound", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTripHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Outbound, gotDirection)

	var model domain.TripModel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&model))
	assert.Equal(t, "JX775", model.Flights.Outbound.Code)
}

func TestPutFlight_UnknownDirection(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/trip/flights/sideways", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	newTripHTTPHandler(&mockTripServicer{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown flight direction")
}

// ---- PUT /api/trip/hotel ---------------------------------------------------

func TestPutHotel_OK(t *testing.T) {
	svc := &mockTripServicer{
		updateHotel: func(_ context.Context, hotel domain.HotelInfo) (domain.TripModel, error) {
			m := testutil.SampleModel()
			m.Hotel = hotel
			return m, nil
		},
	}

	body := `{"name":"Hotel Jen","address":"277 Orchard Road","checkIn":"2025-11-27","checkOut":"2025-12-01"}`
	req := httptest.NewRequest(http.MethodPut, "/api/trip/hotel", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTripHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var model domain.TripModel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&model))
	assert.Equal(t, "Hotel Jen", model.Hotel.Name)
}

func TestPutHotel_StorageFailure(t *testing.T) {
	svc := &mockTripServicer{
		updateHotel: func(context.Context, domain.HotelInfo) (domain.TripModel, error) {
			return domain.TripModel{}, domain.ErrStorage
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/trip/hotel", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	newTripHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInsufficientStorage, rec.Code)
	assert.Contains(t, rec.Body.String(), "storage full or unavailable")
}
