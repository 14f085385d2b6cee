package testutil

import (
	"time"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/google/uuid"
)

// FixedNow is the reference instant used by agenda tests: Saturday
// 17 October 2026, mid-morning.
var FixedNow = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

// EventOption customizes a test event.
type EventOption func(*domain.Event)

func WithTitle(title string) EventOption {
	return func(e *domain.Event) {
		e.Title = title
	}
}

func WithDuration(hours int) EventOption {
	return func(e *domain.Event) {
		e.DurationHours = hours
	}
}

func WithPosition(pos int, color string) EventOption {
	return func(e *domain.Event) {
		e.Position = pos
		e.Color = color
	}
}

// NewTestEvent builds a one-hour event starting at start ("HH:MM").
func NewTestEvent(start string, opts ...EventOption) *domain.Event {
	e := &domain.Event{
		ID:            uuid.New().String(),
		Start:         domain.MustHourKey(start),
		Title:         "Event at " + start,
		DurationHours: 1,
		CreatedAt:     FixedNow,
		UpdatedAt:     FixedNow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Draft builds an editor draft.
func Draft(start, title string, duration int) domain.EditingAt {
	return domain.EditingAt{Time: domain.MustHourKey(start), Title: title, Duration: duration}
}
