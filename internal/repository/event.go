package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tablemap/tablemap/internal/model"
)

// Every new event is seeded with one stage marker so the canvas is never
// empty. The position matches what the layout editor has always produced.
const (
	stageIconType = "stage"
	stageIconX    = 400
	stageIconY    = 50
	stageIconSize = 120
)

// EventRepository handles persistence for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts the event and seeds its default stage icon in one
// transaction, filling in the generated ID and creation time.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	err = tx.QueryRow(ctx,
		`INSERT INTO events (name, date, venue, start_time, end_time)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		event.Name, event.Date, event.Venue, event.StartTime, event.EndTime,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO layout_icons (event_id, icon_type, x, y, size)
		 VALUES ($1, $2, $3, $4, $5)`,
		event.ID, stageIconType, stageIconX, stageIconY, stageIconSize,
	)
	if err != nil {
		return fmt.Errorf("seed stage icon: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID returns a single event or ErrNotFound.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	var e model.Event
	err := r.db.QueryRow(ctx,
		`SELECT id, name, date, venue, start_time, end_time, background, created_at
		 FROM events WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Name, &e.Date, &e.Venue, &e.StartTime, &e.EndTime, &e.Background, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("event %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// Stats aggregates occupancy counters for one event. RemainingSeats is left
// for the caller to derive; see model.EventStats.Remaining.
func (r *EventRepository) Stats(ctx context.Context, id int64) (*model.EventStats, error) {
	var s model.EventStats
	err := r.db.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*)                    FROM venue_tables WHERE event_id = $1),
			(SELECT COALESCE(SUM(capacity), 0)  FROM venue_tables WHERE event_id = $1),
			(SELECT COALESCE(SUM(party_size), 0) FROM parties WHERE event_id = $1 AND table_id IS NOT NULL),
			(SELECT COUNT(*)                    FROM parties WHERE event_id = $1)`,
		id,
	).Scan(&s.TableCount, &s.TotalCapacity, &s.AssignedGuests, &s.PartyCount)
	if err != nil {
		return nil, fmt.Errorf("aggregate event stats: %w", err)
	}
	return &s, nil
}

// List returns all events ordered by date descending.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, date, venue, start_time, end_time, background, created_at
		 FROM events
		 ORDER BY date DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Venue, &e.StartTime, &e.EndTime, &e.Background, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update replaces all mutable event fields.
func (r *EventRepository) Update(ctx context.Context, id int64, req model.UpdateEventRequest) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE events
		 SET name = $2, date = $3, venue = $4, start_time = $5, end_time = $6, background = $7
		 WHERE id = $1`,
		id, req.Name, req.Date, req.Venue, req.StartTime, req.EndTime, req.Background,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the event and everything that references it, directly or
// transitively: seat assignments of the event's tables, parties, icons, the
// tables themselves, and finally the event row. One transaction, so the
// cascade is entirely visible or entirely absent.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}
	if !exists {
		err = fmt.Errorf("event %d: %w", id, ErrNotFound)
		return err
	}

	steps := []struct {
		desc string
		sql  string
	}{
		{"delete seat assignments", `DELETE FROM seat_assignments
			WHERE table_id IN (SELECT id FROM venue_tables WHERE event_id = $1)`},
		{"delete parties", `DELETE FROM parties WHERE event_id = $1`},
		{"delete layout icons", `DELETE FROM layout_icons WHERE event_id = $1`},
		{"delete tables", `DELETE FROM venue_tables WHERE event_id = $1`},
		{"delete event", `DELETE FROM events WHERE id = $1`},
	}
	for _, step := range steps {
		if _, err = tx.Exec(ctx, step.sql, id); err != nil {
			return fmt.Errorf("%s: %w", step.desc, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
