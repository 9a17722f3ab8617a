package service

import (
	"context"
	"fmt"

	"github.com/tablemap/tablemap/internal/model"
)

// SeatService orchestrates the seat assignment ledger.
type SeatService struct {
	seats   SeatStore
	tables  TableStore
	parties PartyStore
}

// NewSeatService constructs a SeatService with its dependencies.
func NewSeatService(seats SeatStore, tables TableStore, parties PartyStore) *SeatService {
	return &SeatService{seats: seats, tables: tables, parties: parties}
}

// Claim seats one member of a party on one seat, replacing any previous
// occupant of that seat. The member index is not bounded by the party's
// declared size, and nothing stops the same member from being seated at two
// seats at once — keeping the ledger consistent with the roster is the
// editing client's responsibility.
func (s *SeatService) Claim(ctx context.Context, tableID int64, req model.ClaimSeatRequest) (*model.SeatAssignment, error) {
	if req.SeatNumber < 1 {
		return nil, fmt.Errorf("%w: seat number must be at least 1", ErrValidation)
	}
	if req.MemberIndex < 1 {
		return nil, fmt.Errorf("%w: member index must be at least 1", ErrValidation)
	}

	if _, err := s.tables.GetByID(ctx, tableID); err != nil {
		return nil, err
	}
	if _, err := s.parties.GetByID(ctx, req.PartyID); err != nil {
		return nil, err
	}

	return s.seats.Claim(ctx, tableID, req.SeatNumber, req.PartyID, req.MemberIndex)
}

// List returns the table's seat assignments in seat-number order.
func (s *SeatService) List(ctx context.Context, tableID int64) ([]model.SeatAssignmentView, error) {
	if _, err := s.tables.GetByID(ctx, tableID); err != nil {
		return nil, err
	}
	return s.seats.ListByTable(ctx, tableID)
}

// Release frees a seat; releasing an unoccupied seat is a no-op.
func (s *SeatService) Release(ctx context.Context, tableID int64, seatNumber int) error {
	return s.seats.Release(ctx, tableID, seatNumber)
}
