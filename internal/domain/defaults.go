package domain

import "time"

// Default values applied both to the initial model and by the forward-only
// flight migration (documents saved before airline/origin/destination
// existed get these filled in on load).
const (
	DefaultAirline     = "STARLUX"
	DefaultOrigin      = "TPE"
	DefaultDestination = "SIN"
)

// DefaultModel returns the built-in trip used when nothing has been
// persisted yet: placeholder flights and hotel, a single empty day dated
// today, and no tickets.
func DefaultModel() TripModel {
	return TripModel{
		Flights: Flights{
			Outbound: FlightSegment{
				Airline:     DefaultAirline,
				Date:        "2025-01-01",
				Time:        "10:00",
				Origin:      DefaultOrigin,
				Destination: DefaultDestination,
				Terminal:    "T2",
			},
			Inbound: FlightSegment{
				Airline:     DefaultAirline,
				Date:        "2025-01-05",
				Time:        "14:00",
				Origin:      DefaultDestination,
				Destination: DefaultOrigin,
				Terminal:    "T2",
			},
		},
		Hotel: HotelInfo{
			Name:     "Edit hotel details",
			Address:  "Enter an address",
			CheckIn:  "2025-01-01",
			CheckOut: "2025-01-05",
		},
		Itinerary: []DayPlan{
			{
				Date:       time.Now().Format("2006-01-02"),
				DayLabel:   "Day 1",
				Activities: []Activity{},
			},
		},
		Tickets: []TicketRecord{},
	}
}
