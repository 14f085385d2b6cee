package service

import (
	"context"

	"github.com/alexanderramin/agenda/internal/domain"
	"github.com/alexanderramin/agenda/internal/timeline"
)

// ConfirmOutcome says what a confirmed draft did to the agenda.
type ConfirmOutcome string

const (
	OutcomeDiscarded ConfirmOutcome = "discarded"
	OutcomeCreated   ConfirmOutcome = "created"
	OutcomeUpdated   ConfirmOutcome = "updated"
)

// ConfirmResult is returned by EventService.Confirm. Event is nil when the
// draft was discarded.
type ConfirmResult struct {
	Outcome ConfirmOutcome
	Event   *domain.Event
	Events  []*domain.Event
}

type EventService interface {
	List(ctx context.Context) ([]*domain.Event, error)
	Get(ctx context.Context, start domain.HourKey) (*domain.Event, error)
	Seed(ctx context.Context, seed []domain.SeedEvent) (int, error)
	Confirm(ctx context.Context, draft domain.EditingAt) (*ConfirmResult, error)
	Timeline(ctx context.Context, r timeline.HourRange) (timeline.Layout, error)
	Palette() domain.Palette
}
