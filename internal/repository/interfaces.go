package repository

import (
	"context"

	"github.com/alexanderramin/agenda/internal/domain"
)

// EventPosition is the derived ordering data written back after a sort.
type EventPosition struct {
	ID       string
	Position int
	Color    string
}

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByStart(ctx context.Context, start domain.HourKey) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	UpdatePositions(ctx context.Context, positions []EventPosition) error
	Count(ctx context.Context) (int, error)
}
