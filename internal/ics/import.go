package ics

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/alexanderramin/agenda/internal/domain"
)

// Skipped describes a VEVENT that could not become an agenda event.
type Skipped struct {
	Summary string
	Reason  string
}

// ImportResult is what Import could turn into seed events.
type ImportResult struct {
	Events  []domain.SeedEvent
	Skipped []Skipped
}

// Import reads VEVENTs from r. Only timed events starting on the hour are
// kept; their dates are dropped and their duration is rounded up to whole
// hours, capped at domain.MaxDurationHours. Times are read in loc.
func Import(r io.Reader, loc *time.Location) (*ImportResult, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	res := &ImportResult{}
	for _, ve := range cal.Events() {
		summary := ""
		if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
			summary = strings.TrimSpace(p.Value)
		}
		se, err := toSeed(ve, summary, loc)
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{Summary: summary, Reason: err.Error()})
			continue
		}
		res.Events = append(res.Events, se)
	}
	return res, nil
}

func toSeed(ve *ical.VEvent, summary string, loc *time.Location) (domain.SeedEvent, error) {
	if summary == "" {
		return domain.SeedEvent{}, errors.New("no summary")
	}
	dt := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dt == nil {
		return domain.SeedEvent{}, errors.New("no start")
	}
	if !strings.Contains(dt.Value, "T") {
		return domain.SeedEvent{}, errors.New("all-day event")
	}
	start, err := ve.GetStartAt()
	if err != nil {
		return domain.SeedEvent{}, fmt.Errorf("start: %w", err)
	}
	start = start.In(loc)
	if start.Minute() != 0 || start.Second() != 0 {
		return domain.SeedEvent{}, fmt.Errorf("starts off the hour at %s", start.Format("15:04"))
	}

	hours := 0
	if end, err := ve.GetEndAt(); err == nil && end.After(start) {
		hours = int(math.Ceil(end.Sub(start).Hours()))
	}
	if hours > domain.MaxDurationHours {
		hours = domain.MaxDurationHours
	}
	return domain.SeedEvent{
		Start:         domain.HourKeyFor(start.Hour()),
		Title:         summary,
		DurationHours: hours,
	}, nil
}
