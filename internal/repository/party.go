package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tablemap/tablemap/internal/model"
)

const partyColumns = `id, event_id, table_id, name, email, phone, group_label,
	party_size, token, created_at`

// PartyRepository handles persistence for parties.
type PartyRepository struct {
	db *pgxpool.Pool
}

// NewPartyRepository constructs a PartyRepository.
func NewPartyRepository(db *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{db: db}
}

func scanParty(row pgx.Row, p *model.Party) error {
	return row.Scan(&p.ID, &p.EventID, &p.TableID, &p.Name, &p.Email, &p.Phone,
		&p.GroupLabel, &p.PartySize, &p.Token, &p.CreatedAt)
}

// Create inserts a party, filling in the generated ID and creation time.
// The caller supplies the token; it is stored once and never updated again.
func (r *PartyRepository) Create(ctx context.Context, party *model.Party) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO parties (event_id, table_id, name, email, phone, group_label, party_size, token)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		party.EventID, party.TableID, party.Name, party.Email, party.Phone,
		party.GroupLabel, party.PartySize, party.Token,
	).Scan(&party.ID, &party.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// GetByID returns a single party or ErrNotFound.
func (r *PartyRepository) GetByID(ctx context.Context, id int64) (*model.Party, error) {
	var p model.Party
	err := scanParty(r.db.QueryRow(ctx,
		`SELECT `+partyColumns+` FROM parties WHERE id = $1`, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("party %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	return &p, nil
}

// GetByToken resolves an invitation token to its party, or ErrNotFound.
// The token itself stays out of the error message.
func (r *PartyRepository) GetByToken(ctx context.Context, token string) (*model.Party, error) {
	var p model.Party
	err := scanParty(r.db.QueryRow(ctx,
		`SELECT `+partyColumns+` FROM parties WHERE token = $1`, token), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invitation token: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get party by token: %w", err)
	}
	return &p, nil
}

// ListByEvent returns the event's parties annotated with their assigned
// table's name and capacity and the ordered member indices currently holding
// a seat, all derived in one query.
func (r *PartyRepository) ListByEvent(ctx context.Context, eventID int64) ([]model.PartyWithSeating, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.event_id, p.table_id, p.name, p.email, p.phone,
		        p.group_label, p.party_size, p.token, p.created_at,
		        COALESCE(t.name, ''), COALESCE(t.capacity, 0),
		        COALESCE(
		            (SELECT array_agg(sa.member_index::bigint ORDER BY sa.member_index)
		             FROM seat_assignments sa
		             WHERE sa.party_id = p.id AND sa.member_index IS NOT NULL),
		            '{}'::bigint[])
		 FROM parties p
		 LEFT JOIN venue_tables t ON t.id = p.table_id
		 WHERE p.event_id = $1
		 ORDER BY p.name ASC, p.id ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()

	var parties []model.PartyWithSeating
	for rows.Next() {
		var p model.PartyWithSeating
		if err := rows.Scan(&p.ID, &p.EventID, &p.TableID, &p.Name, &p.Email,
			&p.Phone, &p.GroupLabel, &p.PartySize, &p.Token, &p.CreatedAt,
			&p.TableName, &p.TableCapacity, &p.SeatedIndices); err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		if p.SeatedIndices == nil {
			p.SeatedIndices = []int64{}
		}
		parties = append(parties, p)
	}
	return parties, rows.Err()
}

// Update mutates the party's own fields. The table assignment and the token
// are deliberately untouchable here.
func (r *PartyRepository) Update(ctx context.Context, id int64, req model.UpdatePartyRequest) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE parties
		 SET name = $2, email = $3, phone = $4, group_label = $5, party_size = $6
		 WHERE id = $1`,
		id, req.Name, req.Email, req.Phone, req.Group, req.PartySize,
	)
	if err != nil {
		return fmt.Errorf("update party: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("party %d: %w", id, ErrNotFound)
	}
	return nil
}

// Reassign sets (or clears, with nil) the party's table reference. Seat
// assignments the party already holds at another table are left alone;
// reconciling them is the caller's responsibility.
func (r *PartyRepository) Reassign(ctx context.Context, id int64, tableID *int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE parties SET table_id = $2 WHERE id = $1`, id, tableID)
	if err != nil {
		return fmt.Errorf("reassign party: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("party %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the party. Seat assignments that referenced it survive with
// their party reference cleared — the seats stay on the canvas, unoccupied.
func (r *PartyRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx,
		`UPDATE seat_assignments SET party_id = NULL, member_index = NULL WHERE party_id = $1`,
		id); err != nil {
		return fmt.Errorf("clear seat assignments: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM parties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = fmt.Errorf("party %d: %w", id, ErrNotFound)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
