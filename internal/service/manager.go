// Package service contains the business logic for the Trip Planner.
// The TripDataManager owns the single in-memory trip model and is the only
// component permitted to touch the blob and state stores; it keeps the two
// consistent across every mutation. No file I/O details live here; the
// manager depends on store interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/store"
)

// reuploadThreshold distinguishes a genuine file re-upload from a
// metadata-only edit on ticket update: any payload longer than this is
// treated as new content and written to the blob store.
const reuploadThreshold = 100

// TripDataManager owns the in-memory trip model and orchestrates the two
// stores behind it. Mutations update the model synchronously, write ticket
// payloads to the blob store where needed, and persist the metadata-only
// projection to the state store. A state-store save failure is logged but
// never fails a mutation: losing durability is less harmful than crashing
// an in-progress edit session.
type TripDataManager struct {
	state store.StateStore
	blobs store.BlobStore
	log   *slog.Logger

	mu     sync.RWMutex
	model  domain.TripModel
	loaded bool
}

// NewTripDataManager constructs a manager over the given stores.
// Call Load before serving any reads.
func NewTripDataManager(state store.StateStore, blobs store.BlobStore, log *slog.Logger) *TripDataManager {
	return &TripDataManager{
		state: state,
		blobs: blobs,
		log:   log,
		model: domain.DefaultModel(),
	}
}

// Load builds the fully merged in-memory model: read the persisted
// document (falling back to the built-in default when absent or invalid),
// apply the forward-only flight migration, then rehydrate every ticket
// payload from the blob store. Only after all of that does the manager
// start persisting changes, so a half-finished startup can never overwrite
// the stored document with the default model.
func (m *TripDataManager) Load(ctx context.Context) {
	doc, ok, err := m.state.Load(ctx)
	if err != nil {
		m.log.Warn("trip document unreadable, starting from defaults", "error", err)
	}
	if !ok {
		doc = domain.DefaultModel()
	} else {
		migrateFlights(&doc.Flights)
	}

	if err := m.rehydrate(ctx, doc.Tickets); err != nil {
		// Incomplete rehydration leaves some payloads empty; the tickets
		// themselves stay in the model and remain editable.
		m.log.Warn("ticket payload rehydration incomplete", "error", err)
	}

	m.mu.Lock()
	m.model = doc
	m.loaded = true
	m.mu.Unlock()
	m.log.Info("trip model loaded", "days", len(doc.Itinerary), "tickets", len(doc.Tickets))
}

// rehydrate fills empty ticket payloads from the blob store. The lookups
// are independent reads on distinct tickets, so they run concurrently; all
// complete before Load publishes the model.
func (m *TripDataManager) rehydrate(ctx context.Context, tickets []domain.TicketRecord) error {
	var g errgroup.Group
	for i := range tickets {
		if tickets[i].Payload != "" {
			continue
		}
		i := i
		g.Go(func() error {
			payload, err := m.blobs.Get(ctx, tickets[i].ID)
			if err != nil {
				return fmt.Errorf("ticket %s: %w", tickets[i].ID, err)
			}
			tickets[i].Payload = string(payload)
			return nil
		})
	}
	return g.Wait()
}

// Model returns a deep copy of the current model for views to render.
func (m *TripDataManager) Model() domain.TripModel {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.model.Clone()
}

// UpdateItinerary replaces the itinerary wholesale after validating and
// time-sorting each day's activities. Returns the updated model.
func (m *TripDataManager) UpdateItinerary(ctx context.Context, days []domain.DayPlan) (domain.TripModel, error) {
	normalized, err := domain.NormalizeItinerary(days)
	if err != nil {
		return domain.TripModel{}, fmt.Errorf("service.TripDataManager.UpdateItinerary: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.model.Itinerary = normalized
	m.persist(ctx)
	return m.model.Clone(), nil
}

// UpdateFlight replaces one flight segment wholesale.
func (m *TripDataManager) UpdateFlight(ctx context.Context, direction domain.FlightDirection, seg domain.FlightSegment) (domain.TripModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch direction {
	case domain.Outbound:
		m.model.Flights.Outbound = seg
	case domain.Inbound:
		m.model.Flights.Inbound = seg
	default:
		return domain.TripModel{}, fmt.Errorf("service.TripDataManager.UpdateFlight: %w: unknown direction %q", domain.ErrValidation, direction)
	}
	m.persist(ctx)
	return m.model.Clone(), nil
}

// UpdateHotel replaces the hotel record wholesale.
func (m *TripDataManager) UpdateHotel(ctx context.Context, hotel domain.HotelInfo) (domain.TripModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.model.Hotel = hotel
	m.persist(ctx)
	return m.model.Clone(), nil
}

// AddTicket stores the ticket payload in the blob store and, only on
// success, appends the record (payload included, for immediate display) to
// the model. A blob write failure leaves the model untouched so the
// structured document never references a payload that was not stored.
func (m *TripDataManager) AddTicket(ctx context.Context, t domain.TicketRecord) (domain.TicketRecord, error) {
	if err := t.Validate(); err != nil {
		return domain.TicketRecord{}, fmt.Errorf("service.TripDataManager.AddTicket: %w", err)
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	if err := m.blobs.Put(ctx, t.ID, []byte(t.Payload)); err != nil {
		return domain.TicketRecord{}, fmt.Errorf("service.TripDataManager.AddTicket: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.model.Tickets = append(m.model.Tickets, t)
	m.persist(ctx)
	return t, nil
}

// UpdateTicket replaces the ticket with the matching id. A payload longer
// than reuploadThreshold is treated as a re-uploaded file and written to
// the blob store first; anything shorter is a metadata-only edit and the
// previously stored payload is kept, both on disk and in memory.
func (m *TripDataManager) UpdateTicket(ctx context.Context, t domain.TicketRecord) (domain.TicketRecord, error) {
	if err := t.Validate(); err != nil {
		return domain.TicketRecord{}, fmt.Errorf("service.TripDataManager.UpdateTicket: %w", err)
	}

	if len(t.Payload) > reuploadThreshold {
		if err := m.blobs.Put(ctx, t.ID, []byte(t.Payload)); err != nil {
			return domain.TicketRecord{}, fmt.Errorf("service.TripDataManager.UpdateTicket: %w", err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.model.Tickets {
		if m.model.Tickets[i].ID != t.ID {
			continue
		}
		if len(t.Payload) <= reuploadThreshold {
			t.Payload = m.model.Tickets[i].Payload
		}
		m.model.Tickets[i] = t
		m.persist(ctx)
		return t, nil
	}
	return domain.TicketRecord{}, fmt.Errorf("service.TripDataManager.UpdateTicket: %w: ticket %s", domain.ErrNotFound, t.ID)
}

// RemoveTicket deletes the ticket's payload and removes the record from
// the model. The blob delete is best-effort: a dangling payload file is
// harmless, a structured record without its blob entry is not, so the
// record is removed regardless of the blob outcome.
func (m *TripDataManager) RemoveTicket(ctx context.Context, id string) error {
	if err := m.blobs.Delete(ctx, id); err != nil {
		m.log.Warn("ticket payload delete failed", "ticket_id", id, "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.model.Tickets {
		if m.model.Tickets[i].ID == id {
			m.model.Tickets = append(m.model.Tickets[:i], m.model.Tickets[i+1:]...)
			m.persist(ctx)
			return nil
		}
	}
	return fmt.Errorf("service.TripDataManager.RemoveTicket: %w: ticket %s", domain.ErrNotFound, id)
}

// ResetAll clears both stores and reinitializes the model to the built-in
// default. Destructive and irreversible; the handler gates it behind an
// explicit confirmation. The state store is left absent rather than saved:
// the next mutation will write the first new document.
func (m *TripDataManager) ResetAll(ctx context.Context) error {
	if err := m.blobs.Clear(ctx); err != nil {
		return fmt.Errorf("service.TripDataManager.ResetAll: %w", err)
	}
	if err := m.state.Clear(ctx); err != nil {
		return fmt.Errorf("service.TripDataManager.ResetAll: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.model = domain.DefaultModel()
	return nil
}

// ImportAll replaces the whole model from an externally supplied document.
// The blob store is cleared first and repopulated from the document's
// non-empty payloads; a ticket imported without a payload therefore stays
// payload-less for good. That gap is accepted: the alternative would be to
// silently drop the ticket's metadata as well.
func (m *TripDataManager) ImportAll(ctx context.Context, doc domain.TripModel) (domain.TripModel, error) {
	for i := range doc.Tickets {
		if err := doc.Tickets[i].Validate(); err != nil {
			return domain.TripModel{}, fmt.Errorf("service.TripDataManager.ImportAll: %w", err)
		}
		if doc.Tickets[i].ID == "" {
			doc.Tickets[i].ID = uuid.NewString()
		}
	}

	if err := m.blobs.Clear(ctx); err != nil {
		return domain.TripModel{}, fmt.Errorf("service.TripDataManager.ImportAll: %w", err)
	}
	for _, t := range doc.Tickets {
		if t.Payload == "" {
			continue
		}
		if err := m.blobs.Put(ctx, t.ID, []byte(t.Payload)); err != nil {
			return domain.TripModel{}, fmt.Errorf("service.TripDataManager.ImportAll: %w", err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.model = doc
	m.persist(ctx)
	return m.model.Clone(), nil
}

// persist writes the metadata-only projection to the state store.
// Call with m.mu held. Failures are logged, never propagated: the
// in-memory model stays authoritative and only durability is lost.
// Nothing is written until Load has published the initial model.
func (m *TripDataManager) persist(ctx context.Context) {
	if !m.loaded {
		return
	}
	if err := m.state.Save(ctx, m.model.MetadataOnly()); err != nil {
		m.log.Error("trip document save failed, in-memory state remains authoritative", "error", err)
	}
}
