package domain

import "fmt"

// FlightDirection selects one of the two segments of the round trip.
type FlightDirection string

// The two valid flight directions.
const (
	Outbound FlightDirection = "outbound"
	Inbound  FlightDirection = "inbound"
)

// ParseFlightDirection validates a direction string from the HTTP layer.
func ParseFlightDirection(s string) (FlightDirection, error) {
	switch FlightDirection(s) {
	case Outbound, Inbound:
		return FlightDirection(s), nil
	default:
		return "", fmt.Errorf("%w: unknown flight direction %q", ErrValidation, s)
	}
}

// FlightSegment describes one leg of the trip. All fields are free-form
// strings edited independently; no cross-field rule is enforced.
type FlightSegment struct {
	Airline     string `json:"airline"`
	Code        string `json:"code"` // flight number, e.g. "JX771"
	Date        string `json:"date"` // "2006-01-02"
	Time        string `json:"time"` // "HH:MM"
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Terminal    string `json:"terminal"`
}

// HotelInfo holds the descriptive hotel fields shown on the overview.
type HotelInfo struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	MapQuery string `json:"mapQuery"`
	CheckIn  string `json:"checkIn"`  // "2006-01-02"
	CheckOut string `json:"checkOut"` // "2006-01-02"
	Phone    string `json:"phone,omitempty"`
}
