package service

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// PrintMode selects which sections of the trip a printout includes.
type PrintMode string

// The valid print modes.
const (
	PrintItinerary PrintMode = "itinerary"
	PrintFlights   PrintMode = "flights"
	PrintAll       PrintMode = "all"
)

// ParsePrintMode validates a mode string from the HTTP layer.
func ParsePrintMode(s string) (PrintMode, error) {
	switch PrintMode(s) {
	case PrintItinerary, PrintFlights, PrintAll:
		return PrintMode(s), nil
	default:
		return "", fmt.Errorf("%w: unknown print mode %q", domain.ErrValidation, s)
	}
}

// RenderPDF produces a printable A4 PDF of the trip. Ticket attachments are
// never included; this is the paper companion to the on-screen views.
func RenderPDF(m domain.TripModel, mode PrintMode) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Plan", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Trip Plan")
	pdf.Ln(14)

	if mode == PrintFlights || mode == PrintAll {
		writeFlights(pdf, m.Flights)
		writeHotel(pdf, m.Hotel)
	}
	if mode == PrintItinerary || mode == PrintAll {
		writeItinerary(pdf, m.Itinerary)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("service.RenderPDF: %v", err)
	}
	return buf.Bytes(), nil
}

func writeFlights(pdf *gofpdf.Fpdf, f domain.Flights) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Flights")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	for _, leg := range []struct {
		label string
		seg   domain.FlightSegment
	}{
		{"Outbound", f.Outbound},
		{"Inbound", f.Inbound},
	} {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %s %s  %s %s  %s - %s  Terminal %s",
			leg.label, leg.seg.Airline, leg.seg.Code, leg.seg.Date, leg.seg.Time,
			leg.seg.Origin, leg.seg.Destination, leg.seg.Terminal))
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

func writeHotel(pdf *gofpdf.Fpdf, h domain.HotelInfo) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Hotel")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, h.Name)
	pdf.Ln(6)
	pdf.MultiCell(0, 6, h.Address, "", "", false)
	pdf.Cell(0, 6, fmt.Sprintf("Check-in %s / Check-out %s", h.CheckIn, h.CheckOut))
	pdf.Ln(6)
	if h.Phone != "" {
		pdf.Cell(0, 6, "Phone: "+h.Phone)
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

func writeItinerary(pdf *gofpdf.Fpdf, days []domain.DayPlan) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Itinerary")
	pdf.Ln(9)

	for _, day := range days {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, fmt.Sprintf("%s  (%s)", day.DayLabel, day.Date))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 11)
		if len(day.Activities) == 0 {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.Cell(0, 6, "No activities planned")
			pdf.Ln(7)
			continue
		}
		for _, act := range day.Activities {
			line := fmt.Sprintf("%s  %s", act.Time, act.Title)
			if act.Location != "" {
				line += "  @ " + act.Location
			}
			if act.IsImportant {
				line += "  *"
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
			if act.Note != "" {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.MultiCell(0, 5, "    "+act.Note, "", "", false)
				pdf.SetFont("Helvetica", "", 11)
			}
		}
		pdf.Ln(3)
	}
}
