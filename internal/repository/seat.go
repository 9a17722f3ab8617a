package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tablemap/tablemap/internal/model"
)

// SeatRepository handles persistence for per-seat occupancy records.
type SeatRepository struct {
	db *pgxpool.Pool
}

// NewSeatRepository constructs a SeatRepository.
func NewSeatRepository(db *pgxpool.Pool) *SeatRepository {
	return &SeatRepository{db: db}
}

// Claim installs a party member on a seat with replace-if-exists semantics:
// any prior occupant of (table, seat number) is discarded in the same
// transaction the new row is inserted in, so a seat never has more than one
// occupant and concurrent claims resolve last-write-wins.
func (r *SeatRepository) Claim(ctx context.Context, tableID int64, seatNumber int, partyID int64, memberIndex int) (*model.SeatAssignment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx,
		`DELETE FROM seat_assignments WHERE table_id = $1 AND seat_number = $2`,
		tableID, seatNumber); err != nil {
		return nil, fmt.Errorf("discard previous occupant: %w", err)
	}

	sa := &model.SeatAssignment{
		TableID:     tableID,
		SeatNumber:  seatNumber,
		PartyID:     &partyID,
		MemberIndex: &memberIndex,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO seat_assignments (table_id, seat_number, party_id, member_index)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		tableID, seatNumber, partyID, memberIndex,
	).Scan(&sa.ID)
	if err != nil {
		return nil, fmt.Errorf("insert seat assignment: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return sa, nil
}

// ListByTable returns the table's seat assignments ordered by seat number,
// each resolved with the occupying party's name and size when bound.
func (r *SeatRepository) ListByTable(ctx context.Context, tableID int64) ([]model.SeatAssignmentView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sa.id, sa.table_id, sa.seat_number, sa.party_id, sa.member_index,
		        COALESCE(p.name, ''), COALESCE(p.party_size, 0)
		 FROM seat_assignments sa
		 LEFT JOIN parties p ON p.id = sa.party_id
		 WHERE sa.table_id = $1
		 ORDER BY sa.seat_number ASC`,
		tableID,
	)
	if err != nil {
		return nil, fmt.Errorf("list seat assignments: %w", err)
	}
	defer rows.Close()

	var seats []model.SeatAssignmentView
	for rows.Next() {
		var s model.SeatAssignmentView
		if err := rows.Scan(&s.ID, &s.TableID, &s.SeatNumber, &s.PartyID,
			&s.MemberIndex, &s.PartyName, &s.PartySize); err != nil {
			return nil, fmt.Errorf("scan seat assignment: %w", err)
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

// Release frees a seat. Releasing a seat that is not occupied is a no-op,
// not an error.
func (r *SeatRepository) Release(ctx context.Context, tableID int64, seatNumber int) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM seat_assignments WHERE table_id = $1 AND seat_number = $2`,
		tableID, seatNumber); err != nil {
		return fmt.Errorf("release seat: %w", err)
	}
	return nil
}
