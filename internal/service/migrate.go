package service

import "github.com/pkordes/trip-planner/backend/internal/domain"

// migrateFlights upgrades documents persisted before flight segments
// carried airline, origin, and destination. Missing fields are filled with
// fixed defaults, inferred per direction; everything already present is
// left untouched. The migration is additive and forward-only, so running
// it on a current document is a no-op.
func migrateFlights(f *domain.Flights) {
	if f.Outbound.Airline == "" {
		f.Outbound.Airline = domain.DefaultAirline
	}
	if f.Outbound.Origin == "" {
		f.Outbound.Origin = domain.DefaultOrigin
	}
	if f.Outbound.Destination == "" {
		f.Outbound.Destination = domain.DefaultDestination
	}

	if f.Inbound.Airline == "" {
		f.Inbound.Airline = domain.DefaultAirline
	}
	if f.Inbound.Origin == "" {
		f.Inbound.Origin = domain.DefaultDestination
	}
	if f.Inbound.Destination == "" {
		f.Inbound.Destination = domain.DefaultOrigin
	}
}
