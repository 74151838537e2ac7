package domain

import (
	"fmt"
	"strings"
)

// TicketCategory is the closed set of categories a ticket can belong to.
type TicketCategory string

// The valid ticket categories.
const (
	CategoryFlight  TicketCategory = "flight"
	CategoryZoo     TicketCategory = "zoo"
	CategoryFeeding TicketCategory = "feeding"
	CategoryOther   TicketCategory = "other"
)

// Valid reports whether c is one of the known categories.
func (c TicketCategory) Valid() bool {
	switch c {
	case CategoryFlight, CategoryZoo, CategoryFeeding, CategoryOther:
		return true
	}
	return false
}

// TicketType is the closed set of attachment file kinds.
type TicketType string

// The valid ticket attachment types.
const (
	TypeImage TicketType = "image"
	TypePDF   TicketType = "pdf"
)

// Valid reports whether t is one of the known types.
func (t TicketType) Valid() bool {
	return t == TypeImage || t == TypePDF
}

// TicketRecord is one uploaded attachment (image or PDF) with its metadata.
//
// Payload carries the file content as the data-URL string produced by the
// uploading view, anywhere from empty up to ~10MB. In memory the payload is
// kept alongside the metadata for immediate display; at rest it lives only
// in the blob store, keyed by ID, and the persisted record's payload is
// always the empty string.
type TicketRecord struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Category    TicketCategory `json:"category"`
	Type        TicketType     `json:"type"`
	FileName    string         `json:"fileName"`
	Payload     string         `json:"payload"`
}

// Validate enforces the rules common to adding, updating, and importing
// tickets. The ID is not checked here; it is assigned at creation time.
func (t TicketRecord) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: ticket title is required", ErrValidation)
	}
	if !t.Category.Valid() {
		return fmt.Errorf("%w: unknown ticket category %q", ErrValidation, t.Category)
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: unknown ticket type %q", ErrValidation, t.Type)
	}
	return nil
}
