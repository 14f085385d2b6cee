package domain

import (
	"sort"
	"time"
)

// MaxDurationHours is the largest duration offered by the editor.
const MaxDurationHours = 8

// Event is a timed record on the agenda, keyed by its start time.
type Event struct {
	ID            string
	Start         HourKey
	Title         string
	DurationHours int

	// Position and Color are derived from the sorted list and
	// reassigned after every mutation.
	Position int
	Color    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Apply replaces the title and duration in place.
func (e *Event) Apply(title string, durationHours int, now time.Time) {
	e.Title = title
	e.DurationHours = durationHours
	e.UpdatedAt = now
}

// SortAndRecolor orders events by start time ascending and assigns
// Position and Color from the resulting index. Events with equal start
// times keep their relative order.
func SortAndRecolor(events []*Event, palette Palette) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.minutes() < events[j].Start.minutes()
	})
	for i, e := range events {
		e.Position = i
		e.Color = palette.ColorAt(i)
	}
}

// FindByStart returns the event with the given start key, or nil.
func FindByStart(events []*Event, start HourKey) *Event {
	for _, e := range events {
		if e.Start == start {
			return e
		}
	}
	return nil
}
