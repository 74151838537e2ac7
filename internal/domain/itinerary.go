package domain

import (
	"fmt"
	"sort"
	"strings"
)

// DayPlan is one day of the trip. Days are kept in trip order; the slice
// position, not the date, is authoritative for "Day N" labelling.
type DayPlan struct {
	Date       string     `json:"date"`     // "2006-01-02"
	DayLabel   string     `json:"dayLabel"` // e.g. "Day 1"
	Activities []Activity `json:"activities"`
}

// Activity is a single itinerary entry within a day.
// IDs are caller-assigned and must be unique among the day's activities.
type Activity struct {
	ID          string `json:"id"`
	Time        string `json:"time"` // "HH:MM", the sort key within a day
	Title       string `json:"title"`
	Location    string `json:"location,omitempty"`
	MapQuery    string `json:"mapQuery,omitempty"`
	Note        string `json:"note,omitempty"`
	IsImportant bool   `json:"isImportant,omitempty"`
}

// NormalizeItinerary validates an itinerary and returns a copy ready to be
// stored:
//   - every activity needs an id, a time, and a non-blank title
//   - ids must not collide with siblings on the same day
//   - an empty mapQuery falls back to the activity's location
//   - each day's activities are sorted ascending by time; the sort is
//     stable, so equal times keep their relative insertion order
func NormalizeItinerary(days []DayPlan) ([]DayPlan, error) {
	out := make([]DayPlan, len(days))
	for i, day := range days {
		seen := make(map[string]struct{}, len(day.Activities))
		acts := append([]Activity(nil), day.Activities...)
		for j, act := range acts {
			if act.ID == "" {
				return nil, fmt.Errorf("%w: day %q activity %d: id is required", ErrValidation, day.Date, j)
			}
			if _, dup := seen[act.ID]; dup {
				return nil, fmt.Errorf("%w: day %q: duplicate activity id %q", ErrValidation, day.Date, act.ID)
			}
			seen[act.ID] = struct{}{}
			if strings.TrimSpace(act.Title) == "" {
				return nil, fmt.Errorf("%w: day %q activity %q: title is required", ErrValidation, day.Date, act.ID)
			}
			if act.Time == "" {
				return nil, fmt.Errorf("%w: day %q activity %q: time is required", ErrValidation, day.Date, act.ID)
			}
			if act.MapQuery == "" {
				acts[j].MapQuery = act.Location
			}
		}
		sort.SliceStable(acts, func(a, b int) bool { return acts[a].Time < acts[b].Time })
		out[i] = day
		out[i].Activities = acts
	}
	return out, nil
}
