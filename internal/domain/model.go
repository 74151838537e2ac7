// Package domain contains the core data types for the Trip Planner
// application. This package has zero external dependencies and is imported
// by every other internal package (store, service, handler).
package domain

// TripModel is the complete trip document: itinerary, flights, hotel, and
// tickets. Exactly one instance lives in memory per process; it is owned by
// the service layer and mutated only through its operations.
//
// The persisted form of this document never carries ticket payloads; those
// live in the blob store keyed by ticket id. See MetadataOnly.
type TripModel struct {
	Itinerary []DayPlan      `json:"itinerary"`
	Flights   Flights        `json:"flights"`
	Hotel     HotelInfo      `json:"hotel"`
	Tickets   []TicketRecord `json:"tickets"`
}

// Flights holds the two flight segments of a round trip.
type Flights struct {
	Outbound FlightSegment `json:"outbound"`
	Inbound  FlightSegment `json:"inbound"`
}

// Clone returns a deep copy of the model. Views receive clones so that
// in-flight renders never observe a mutation half-applied.
func (m TripModel) Clone() TripModel {
	out := m
	out.Itinerary = make([]DayPlan, len(m.Itinerary))
	for i, d := range m.Itinerary {
		out.Itinerary[i] = d
		out.Itinerary[i].Activities = append([]Activity(nil), d.Activities...)
	}
	out.Tickets = append([]TicketRecord(nil), m.Tickets...)
	return out
}

// MetadataOnly returns a deep copy with every ticket payload cleared.
// This is the projection handed to the state store: payloads are large
// (up to ~10MB each) and persist separately in the blob store.
func (m TripModel) MetadataOnly() TripModel {
	out := m.Clone()
	for i := range out.Tickets {
		out.Tickets[i].Payload = ""
	}
	return out
}
