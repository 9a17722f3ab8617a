package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tablemap/tablemap/internal/model"
)

// IconRepository handles persistence for layout icons.
type IconRepository struct {
	db *pgxpool.Pool
}

// NewIconRepository constructs an IconRepository.
func NewIconRepository(db *pgxpool.Pool) *IconRepository {
	return &IconRepository{db: db}
}

// Create inserts an icon and fills in the generated ID.
func (r *IconRepository) Create(ctx context.Context, icon *model.LayoutIcon) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO layout_icons (event_id, icon_type, x, y, size, rotation)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		icon.EventID, icon.IconType, icon.X, icon.Y, icon.Size, icon.Rotation,
	).Scan(&icon.ID)
	if err != nil {
		return fmt.Errorf("insert icon: %w", err)
	}
	return nil
}

// ListByEvent returns the event's icons in creation order.
func (r *IconRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.LayoutIcon, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, event_id, icon_type, x, y, size, rotation
		 FROM layout_icons
		 WHERE event_id = $1
		 ORDER BY id ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list icons: %w", err)
	}
	defer rows.Close()

	var icons []model.LayoutIcon
	for rows.Next() {
		var ic model.LayoutIcon
		if err := rows.Scan(&ic.ID, &ic.EventID, &ic.IconType, &ic.X, &ic.Y, &ic.Size, &ic.Rotation); err != nil {
			return nil, fmt.Errorf("scan icon: %w", err)
		}
		icons = append(icons, ic)
	}
	return icons, rows.Err()
}

// Reposition moves an icon on the canvas. Last write wins.
func (r *IconRepository) Reposition(ctx context.Context, id int64, x, y float64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE layout_icons SET x = $2, y = $3 WHERE id = $1`, id, x, y)
	if err != nil {
		return fmt.Errorf("reposition icon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("icon %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a single icon.
func (r *IconRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM layout_icons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete icon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("icon %d: %w", id, ErrNotFound)
	}
	return nil
}
