package service

import (
	"fmt"
	"strings"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Summary renders the model as a plain-text digest suitable for pasting
// into a chat message: flights first, then each day's activities in order,
// then the hotel.
func Summary(m domain.TripModel) string {
	var b strings.Builder

	out, in := m.Flights.Outbound, m.Flights.Inbound
	fmt.Fprintf(&b, "Outbound: %s %s %s (%s-%s)\n", out.Date, out.Code, out.Time, out.Origin, out.Destination)
	fmt.Fprintf(&b, "Inbound: %s %s %s (%s-%s)\n\n", in.Date, in.Code, in.Time, in.Origin, in.Destination)

	for _, day := range m.Itinerary {
		fmt.Fprintf(&b, "%s (%s)\n", day.Date, day.DayLabel)
		for _, act := range day.Activities {
			fmt.Fprintf(&b, "  %s %s\n", act.Time, act.Title)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Hotel: %s\n%s\n", m.Hotel.Name, m.Hotel.Address)
	return b.String()
}
