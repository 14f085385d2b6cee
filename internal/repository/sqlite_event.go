package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/agenda/internal/db"
	"github.com/alexanderramin/agenda/internal/domain"
)

const eventColumns = `id, start_time, title, duration_hours, position, color, created_at, updated_at`

// SQLiteEventRepo implements EventRepo on a SQLite database or transaction.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(db db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		string(e.Start),
		e.Title,
		e.DurationHours,
		e.Position,
		e.Color,
		formatTime(e.CreatedAt),
		formatTime(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByStart(ctx context.Context, start domain.HourKey) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE start_time = ?`
	row := r.db.QueryRowContext(ctx, query, string(start))
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event at %s: %w", start, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning event: %w", err)
	}
	return e, nil
}

// List returns events in stored position order. start_time is a zero-padded
// "HH:MM" string, so it doubles as a chronological tie-break.
func (r *SQLiteEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY position, start_time`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

func (r *SQLiteEventRepo) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events SET start_time = ?, title = ?, duration_hours = ?, position = ?, color = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(e.Start),
		e.Title,
		e.DurationHours,
		e.Position,
		e.Color,
		formatTime(e.UpdatedAt),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("event %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEventRepo) UpdatePositions(ctx context.Context, positions []EventPosition) error {
	query := `UPDATE events SET position = ?, color = ? WHERE id = ?`
	for _, p := range positions {
		if _, err := r.db.ExecContext(ctx, query, p.Position, p.Color, p.ID); err != nil {
			return fmt.Errorf("updating position of event %s: %w", p.ID, err)
		}
	}
	return nil
}

func (r *SQLiteEventRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting events: %w", err)
	}
	return n, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	var e domain.Event
	var start, createdAt, updatedAt string
	if err := s.Scan(&e.ID, &start, &e.Title, &e.DurationHours, &e.Position, &e.Color, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e.Start = domain.HourKey(start)

	var err error
	if e.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
