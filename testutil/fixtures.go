// Package testutil provides shared fixtures for tests across packages:
// a realistic sample trip model and helpers that construct file-backed
// stores in a per-test temp directory.
package testutil

import (
	"testing"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/store"
)

// SampleModel returns a small but fully populated trip: two days with
// time-sorted activities, both flight segments, a hotel, and one image
// ticket whose payload is inline.
func SampleModel() domain.TripModel {
	return domain.TripModel{
		Itinerary: []domain.DayPlan{
			{
				Date:     "2025-11-27",
				DayLabel: "Day 1",
				Activities: []domain.Activity{
					{ID: "a1", Time: "08:25", Title: "Flight to Singapore", Location: "Taoyuan Airport", MapQuery: "Taoyuan Airport"},
					{ID: "a2", Time: "15:00", Title: "Hotel check-in", Location: "Orchard Road", MapQuery: "Orchard Road"},
				},
			},
			{
				Date:     "2025-11-28",
				DayLabel: "Day 2",
				Activities: []domain.Activity{
					{ID: "b1", Time: "09:30", Title: "Singapore Zoo", Location: "Mandai", MapQuery: "Singapore Zoo", IsImportant: true},
				},
			},
		},
		Flights: domain.Flights{
			Outbound: domain.FlightSegment{
				Airline: "STARLUX", Code: "JX771", Date: "2025-11-27", Time: "08:25",
				Origin: "TPE", Destination: "SIN", Terminal: "T2",
			},
			Inbound: domain.FlightSegment{
				Airline: "STARLUX", Code: "JX772", Date: "2025-12-01", Time: "14:10",
				Origin: "SIN", Destination: "TPE", Terminal: "T1",
			},
		},
		Hotel: domain.HotelInfo{
			Name: "Hotel Jen Orchardgateway", Address: "277 Orchard Road",
			MapQuery: "Hotel Jen Orchardgateway", CheckIn: "2025-11-27", CheckOut: "2025-12-01",
			Phone: "+65 6708 8888",
		},
		Tickets: []domain.TicketRecord{
			{
				ID: "ticket-1", Title: "Zoo entry", Description: "2 adults 1 child",
				Category: domain.CategoryZoo, Type: domain.TypeImage, FileName: "zoo.png",
				Payload: "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg==",
			},
		},
	}
}

// NewStores returns a file state store and blob store rooted in a fresh
// temp directory that is removed when the test finishes.
func NewStores(t *testing.T) (*store.FileStateStore, *store.FileBlobStore) {
	t.Helper()
	dir := t.TempDir()

	state, err := store.NewFileStateStore(dir)
	if err != nil {
		t.Fatalf("testutil.NewStores: state store: %v", err)
	}
	blobs, err := store.NewFileBlobStore(dir + "/files")
	if err != nil {
		t.Fatalf("testutil.NewStores: blob store: %v", err)
	}
	return state, blobs
}
