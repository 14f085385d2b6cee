package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/agenda/internal/db"
	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/repository"
	"github.com/alexanderramin/agenda/internal/timeline"
	"github.com/google/uuid"
)

type eventService struct {
	events   repository.EventRepo
	uow      db.UnitOfWork
	palette  domain.Palette
	observer UseCaseObserver
	now      func() time.Time
}

// NewEventService wires the agenda's event store. The palette is copied so
// callers cannot mutate colour assignment after construction.
func NewEventService(
	events repository.EventRepo,
	uow db.UnitOfWork,
	palette domain.Palette,
	observers ...UseCaseObserver,
) (EventService, error) {
	if err := palette.Validate(); err != nil {
		return nil, err
	}
	return &eventService{
		events:   events,
		uow:      uow,
		palette:  append(domain.Palette(nil), palette...),
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *eventService) Palette() domain.Palette {
	return append(domain.Palette(nil), s.palette...)
}

func (s *eventService) List(ctx context.Context) (events []*domain.Event, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "list-events", startedAt, err, map[string]any{"count": len(events)})
	}()
	return s.events.List(ctx)
}

func (s *eventService) Get(ctx context.Context, start domain.HourKey) (*domain.Event, error) {
	key, err := domain.ParseHourKey(string(start))
	if err != nil {
		return nil, err
	}
	return s.events.GetByStart(ctx, key)
}

// Seed inserts seed events whose start time is still free and re-sorts the
// agenda. It returns how many events were added; the observer also sees
// the store size after seeding.
func (s *eventService) Seed(ctx context.Context, seed []domain.SeedEvent) (added int, err error) {
	startedAt := time.Now()
	fields := map[string]any{"requested": len(seed)}
	defer func() {
		fields["added"] = added
		observe(ctx, s.observer, "seed", startedAt, err, fields)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteEventRepo(tx)
		now := s.now()
		for _, se := range seed {
			key, err := domain.ParseHourKey(string(se.Start))
			if err != nil {
				return fmt.Errorf("seed event %q: %w", se.Title, err)
			}
			if se.DurationHours < 0 {
				return fmt.Errorf("seed event %q: negative duration %d", se.Title, se.DurationHours)
			}
			_, err = repo.GetByStart(ctx, key)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if err := repo.Create(ctx, &domain.Event{
				ID:            uuid.New().String(),
				Start:         key,
				Title:         se.Title,
				DurationHours: se.DurationHours,
				CreatedAt:     now,
				UpdatedAt:     now,
			}); err != nil {
				return err
			}
			added++
		}
		if _, err := s.resort(ctx, repo); err != nil {
			return err
		}
		total, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		fields["total"] = total
		return nil
	})
	if err != nil {
		added = 0
	}
	return added, err
}

// Confirm applies an editor draft. An invalid draft (blank title or
// duration <= 0) leaves the agenda untouched. Otherwise the record at the
// draft's time is updated in place or a new one is appended, and the whole
// list is re-sorted and recoloured in the same transaction.
func (s *eventService) Confirm(ctx context.Context, draft domain.EditingAt) (result *ConfirmResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"time": string(draft.Time), "duration": draft.Duration}
	defer func() {
		if result != nil {
			fields["outcome"] = string(result.Outcome)
		}
		observe(ctx, s.observer, "confirm-event", startedAt, err, fields)
	}()

	if !draft.Valid() {
		return &ConfirmResult{Outcome: OutcomeDiscarded}, nil
	}

	key, err := domain.ParseHourKey(string(draft.Time))
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(draft.Title)

	result = &ConfirmResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteEventRepo(tx)
		now := s.now()

		existing, err := repo.GetByStart(ctx, key)
		switch {
		case err == nil:
			existing.Apply(title, draft.Duration, now)
			if err := repo.Update(ctx, existing); err != nil {
				return err
			}
			result.Outcome = OutcomeUpdated
			result.Event = existing
		case errors.Is(err, repository.ErrNotFound):
			e := &domain.Event{
				ID:            uuid.New().String(),
				Start:         key,
				Title:         title,
				DurationHours: draft.Duration,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := repo.Create(ctx, e); err != nil {
				return err
			}
			result.Outcome = OutcomeCreated
			result.Event = e
		default:
			return err
		}

		events, err := s.resort(ctx, repo)
		if err != nil {
			return err
		}
		result.Events = events
		if e := domain.FindByStart(events, key); e != nil {
			result.Event = e
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resort reloads all events, orders them by start time and writes back
// the derived position and colour.
func (s *eventService) resort(ctx context.Context, repo repository.EventRepo) ([]*domain.Event, error) {
	events, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortAndRecolor(events, s.palette)

	positions := make([]repository.EventPosition, 0, len(events))
	for _, e := range events {
		positions = append(positions, repository.EventPosition{ID: e.ID, Position: e.Position, Color: e.Color})
	}
	if err := repo.UpdatePositions(ctx, positions); err != nil {
		return nil, err
	}
	return events, nil
}

// Timeline lays out the current agenda over r. Events hidden under an
// earlier event's span are reported to the observer.
func (s *eventService) Timeline(ctx context.Context, r timeline.HourRange) (layout timeline.Layout, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		observe(ctx, s.observer, "timeline", startedAt, err, fields)
	}()

	if err = r.Validate(); err != nil {
		return timeline.Layout{}, err
	}
	events, err := s.events.List(ctx)
	if err != nil {
		return timeline.Layout{}, err
	}
	layout = timeline.Build(events, r)

	fields["rows"] = len(layout.Rows)
	if len(layout.Shadowed) > 0 {
		fields["shadowed"] = startKeys(layout.Shadowed)
	}
	if len(layout.Unplaced) > 0 {
		fields["unplaced"] = startKeys(layout.Unplaced)
	}
	return layout, nil
}

func startKeys(events []*domain.Event) string {
	keys := make([]string, 0, len(events))
	for _, e := range events {
		keys = append(keys, string(e.Start))
	}
	return strings.Join(keys, ",")
}
