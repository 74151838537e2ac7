package domain

import (
	"encoding/json"
	"fmt"
)

// ParseModel decodes a serialized trip document and checks that the two
// required top-level fields, itinerary and flights, are present. A document
// missing either is rejected in its entirety; partial application of a
// malformed document is never allowed.
//
// Both the state store (loading persisted data) and the import path
// (accepting a user-supplied backup file) go through here, so historical
// layouts and hand-edited files fail the same way.
func ParseModel(data []byte) (TripModel, error) {
	var doc struct {
		Itinerary []DayPlan      `json:"itinerary"`
		Flights   *Flights       `json:"flights"`
		Hotel     HotelInfo      `json:"hotel"`
		Tickets   []TicketRecord `json:"tickets"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return TripModel{}, fmt.Errorf("domain.ParseModel: %w: %v", ErrParse, err)
	}
	if doc.Itinerary == nil {
		return TripModel{}, fmt.Errorf("domain.ParseModel: %w: missing itinerary", ErrParse)
	}
	if doc.Flights == nil {
		return TripModel{}, fmt.Errorf("domain.ParseModel: %w: missing flights", ErrParse)
	}

	m := TripModel{
		Itinerary: doc.Itinerary,
		Flights:   *doc.Flights,
		Hotel:     doc.Hotel,
		Tickets:   doc.Tickets,
	}
	if m.Tickets == nil {
		m.Tickets = []TicketRecord{}
	}
	return m, nil
}
