package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tablemap/tablemap/internal/model"
)

const tableColumns = `id, event_id, name, capacity, x, y, shape, purpose, color,
	width, height, rotation, seat_sides, seat_sides_config, show_seats`

// TableRepository handles persistence for venue tables.
type TableRepository struct {
	db *pgxpool.Pool
}

// NewTableRepository constructs a TableRepository.
func NewTableRepository(db *pgxpool.Pool) *TableRepository {
	return &TableRepository{db: db}
}

func scanTable(row pgx.Row, t *model.Table) error {
	return row.Scan(&t.ID, &t.EventID, &t.Name, &t.Capacity, &t.X, &t.Y,
		&t.Shape, &t.Purpose, &t.Color, &t.Width, &t.Height, &t.Rotation,
		&t.SeatSides, &t.SeatSidesConfig, &t.ShowSeats)
}

// BulkCreate inserts a whole batch of tables for one event inside a single
// transaction. A duplicate name — within the batch or against existing rows —
// aborts the batch and leaves zero new tables behind. On success the input
// slice comes back with generated IDs filled in.
func (r *TableRepository) BulkCreate(ctx context.Context, eventID int64, tables []model.Table) ([]model.Table, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !exists {
		err = fmt.Errorf("event %d: %w", eventID, ErrNotFound)
		return nil, err
	}

	for i := range tables {
		t := &tables[i]
		t.EventID = eventID
		err = tx.QueryRow(ctx,
			`INSERT INTO venue_tables
				(event_id, name, capacity, x, y, shape, purpose, color,
				 width, height, rotation, seat_sides, seat_sides_config, show_seats)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			 RETURNING id`,
			t.EventID, t.Name, t.Capacity, t.X, t.Y, t.Shape, t.Purpose, t.Color,
			t.Width, t.Height, t.Rotation, t.SeatSides, t.SeatSidesConfig, t.ShowSeats,
		).Scan(&t.ID)
		if err != nil {
			if isUniqueViolation(err) {
				err = fmt.Errorf("table %q: %w", t.Name, ErrDuplicateTableName)
				return nil, err
			}
			return nil, fmt.Errorf("insert table %q: %w", t.Name, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return tables, nil
}

// GetByID returns a single table or ErrNotFound.
func (r *TableRepository) GetByID(ctx context.Context, id int64) (*model.Table, error) {
	var t model.Table
	err := scanTable(r.db.QueryRow(ctx,
		`SELECT `+tableColumns+` FROM venue_tables WHERE id = $1`, id), &t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get table: %w", err)
	}
	return &t, nil
}

// ListByEvent returns the event's tables with live occupancy (how many
// parties are assigned and how many guests they bring), ordered by name.
func (r *TableRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.TableWithOccupancy, error) {
	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.event_id, t.name, t.capacity, t.x, t.y, t.shape, t.purpose,
		        t.color, t.width, t.height, t.rotation, t.seat_sides,
		        t.seat_sides_config, t.show_seats,
		        COUNT(p.id), COALESCE(SUM(p.party_size), 0)
		 FROM venue_tables t
		 LEFT JOIN parties p ON p.table_id = t.id
		 WHERE t.event_id = $1
		 GROUP BY t.id
		 ORDER BY t.name ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []model.TableWithOccupancy
	for rows.Next() {
		var t model.TableWithOccupancy
		if err := rows.Scan(&t.ID, &t.EventID, &t.Name, &t.Capacity, &t.X, &t.Y,
			&t.Shape, &t.Purpose, &t.Color, &t.Width, &t.Height, &t.Rotation,
			&t.SeatSides, &t.SeatSidesConfig, &t.ShowSeats,
			&t.PartyCount, &t.SeatsOccupied); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

// Update replaces a table's mutable display and shape attributes.
func (r *TableRepository) Update(ctx context.Context, id int64, req model.UpdateTableRequest) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE venue_tables
		 SET name = $2, capacity = $3, shape = $4, purpose = $5, color = $6,
		     width = $7, height = $8, rotation = $9, seat_sides = $10,
		     seat_sides_config = $11, show_seats = $12
		 WHERE id = $1`,
		id, req.Name, req.Capacity, req.Shape, req.Purpose, req.Color,
		req.Width, req.Height, req.Rotation, req.SeatSides,
		req.SeatSidesConfig, req.ShowSeats,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("table %q: %w", req.Name, ErrDuplicateTableName)
		}
		return fmt.Errorf("update table: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table %d: %w", id, ErrNotFound)
	}
	return nil
}

// Reposition moves a table on the canvas. A plain single-row update: cheap,
// idempotent, last write wins.
func (r *TableRepository) Reposition(ctx context.Context, id int64, x, y float64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE venue_tables SET x = $2, y = $3 WHERE id = $1`, id, x, y)
	if err != nil {
		return fmt.Errorf("reposition table: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the table, deletes its seat assignments, and clears (does
// not delete) the table reference of every party assigned to it. One
// transaction.
func (r *TableRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM seat_assignments WHERE table_id = $1`, id); err != nil {
		return fmt.Errorf("delete seat assignments: %w", err)
	}
	if _, err = tx.Exec(ctx, `UPDATE parties SET table_id = NULL WHERE table_id = $1`, id); err != nil {
		return fmt.Errorf("unassign parties: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM venue_tables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete table: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = fmt.Errorf("table %d: %w", id, ErrNotFound)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ClearLayout wipes the event's whole canvas: seat assignments of its tables,
// the table references of its parties, then icons, then the tables. A bulk
// reset in one transaction.
func (r *TableRepository) ClearLayout(ctx context.Context, eventID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	steps := []struct {
		desc string
		sql  string
	}{
		{"delete seat assignments", `DELETE FROM seat_assignments
			WHERE table_id IN (SELECT id FROM venue_tables WHERE event_id = $1)`},
		{"unassign parties", `UPDATE parties SET table_id = NULL WHERE event_id = $1`},
		{"delete layout icons", `DELETE FROM layout_icons WHERE event_id = $1`},
		{"delete tables", `DELETE FROM venue_tables WHERE event_id = $1`},
	}
	for _, step := range steps {
		if _, err = tx.Exec(ctx, step.sql, eventID); err != nil {
			return fmt.Errorf("%s: %w", step.desc, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
