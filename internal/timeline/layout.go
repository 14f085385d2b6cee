// Package timeline collapses the agenda's events into hour rows for the
// day view.
package timeline

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/agenda/internal/domain"
)

// ErrInvalidRange is returned for an hour range outside 0..23 or reversed.
var ErrInvalidRange = errors.New("invalid hour range")

// HourRange is an inclusive range of hours rendered as rows.
type HourRange struct {
	First int
	Last  int
}

// DefaultRange is 06:00 through 23:00.
func DefaultRange() HourRange {
	return HourRange{First: 6, Last: 23}
}

// Validate checks the range bounds.
func (r HourRange) Validate() error {
	if r.First < 0 || r.Last > 23 || r.First > r.Last {
		return fmt.Errorf("%w: %d-%d", ErrInvalidRange, r.First, r.Last)
	}
	return nil
}

// Contains reports whether hour is inside the range.
func (r HourRange) Contains(hour int) bool {
	return hour >= r.First && hour <= r.Last
}

// Row is one rendered line group of the timeline. A filled row carries its
// event and spans Span hours; an empty row spans one hour.
type Row struct {
	Hour  int
	Label domain.HourKey
	Event *domain.Event
	Span  int
}

// Filled reports whether the row shows an event.
func (r Row) Filled() bool { return r.Event != nil }

// Covers reports whether hour falls inside the row's span.
func (r Row) Covers(hour int) bool {
	return hour >= r.Hour && hour < r.Hour+r.Span
}

// Layout is the result of Build.
type Layout struct {
	Range HourRange
	Rows  []Row

	// Shadowed holds events whose start hour lies inside an earlier event's
	// span. They are not rendered.
	Shadowed []*domain.Event
	// Unplaced holds events that start off the hour or outside Range.
	Unplaced []*domain.Event
}

// Build lays out events over r. Events starting on the hour inside r are
// indexed by hour; the walk then emits one row per event start and one
// empty row per uncovered hour.
func Build(events []*domain.Event, r HourRange) Layout {
	l := Layout{Range: r}

	starts := make(map[int]*domain.Event, len(events))
	for _, e := range events {
		h := e.Start.Hour()
		if !e.Start.IsOnTheHour() || !r.Contains(h) {
			l.Unplaced = append(l.Unplaced, e)
			continue
		}
		if _, dup := starts[h]; dup {
			// The natural key makes this unreachable through the store;
			// the first event wins as it would in a lookup by start.
			l.Shadowed = append(l.Shadowed, e)
			continue
		}
		starts[h] = e
	}

	coveredUntil := r.First
	for h := r.First; h <= r.Last; h++ {
		e, ok := starts[h]
		if h < coveredUntil {
			if ok {
				l.Shadowed = append(l.Shadowed, e)
			}
			continue
		}
		if !ok {
			l.Rows = append(l.Rows, Row{Hour: h, Label: domain.HourKeyFor(h), Span: 1})
			coveredUntil = h + 1
			continue
		}
		span := max(e.DurationHours, 1)
		l.Rows = append(l.Rows, Row{Hour: h, Label: domain.HourKeyFor(h), Event: e, Span: span})
		coveredUntil = h + span
	}

	return l
}

// RowAt returns the row that owns hour, or false if hour is outside the
// range.
func (l Layout) RowAt(hour int) (Row, bool) {
	for _, row := range l.Rows {
		if row.Covers(hour) {
			return row, true
		}
	}
	return Row{}, false
}

// RowIndex returns the index of the row owning hour, or -1.
func (l Layout) RowIndex(hour int) int {
	for i, row := range l.Rows {
		if row.Covers(hour) {
			return i
		}
	}
	return -1
}

// Height returns the number of lines the layout occupies when every hour
// slot is rowHeight lines tall.
func (l Layout) Height(rowHeight int) int {
	total := 0
	for _, row := range l.Rows {
		total += row.Span * rowHeight
	}
	return total
}

// LineOf returns the first line of the row at index i.
func (l Layout) LineOf(i, rowHeight int) int {
	line := 0
	for j := 0; j < i && j < len(l.Rows); j++ {
		line += l.Rows[j].Span * rowHeight
	}
	return line
}
