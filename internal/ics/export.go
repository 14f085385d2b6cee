// Package ics converts the agenda to and from iCalendar.
package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/alexanderramin/agenda/internal/calendar"
	"github.com/alexanderramin/agenda/internal/domain"
)

const productID = "-//agenda//agenda//EN"

// Export writes events as VEVENTs anchored on day in loc. Events carry no
// date of their own, so the same agenda can be exported for any day. A
// zero-hour event is written without DTEND.
func Export(w io.Writer, day calendar.Day, loc *time.Location, events []*domain.Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	midnight := day.Time(loc)
	for _, e := range events {
		h, m := e.Start.Hour(), e.Start.Minute()
		if h < 0 || m < 0 {
			return fmt.Errorf("exporting %q: %w: %q", e.Title, domain.ErrInvalidHourKey, e.Start)
		}
		start := time.Date(midnight.Year(), midnight.Month(), midnight.Day(), h, m, 0, 0, loc)

		ve := cal.AddEvent(fmt.Sprintf("%s-%s@agenda", e.ID, day))
		ve.SetDtStampTime(now)
		ve.SetCreatedTime(e.CreatedAt)
		ve.SetModifiedAt(e.UpdatedAt)
		ve.SetStartAt(start)
		if e.DurationHours > 0 {
			ve.SetEndAt(start.Add(time.Duration(e.DurationHours) * time.Hour))
		}
		ve.SetSummary(e.Title)
		if e.Color != "" {
			ve.SetProperty(ical.ComponentProperty("COLOR"), e.Color)
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}
