package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tablemap/tablemap/internal/model"
)

// PartyService orchestrates the party roster.
type PartyService struct {
	parties PartyStore
	tables  TableStore
	events  EventStore
}

// NewPartyService constructs a PartyService with its dependencies.
func NewPartyService(parties PartyStore, tables TableStore, events EventStore) *PartyService {
	return &PartyService{parties: parties, tables: tables, events: events}
}

// Add creates a party on the event's roster. A fresh invitation token is
// generated here, exactly once; nothing in the system ever rewrites it.
func (s *PartyService) Add(ctx context.Context, eventID int64, req model.AddPartyRequest) (*model.Party, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("%w: party name is required", ErrValidation)
	}
	if req.PartySize < 0 {
		return nil, fmt.Errorf("%w: party size must be at least 1", ErrValidation)
	}
	if req.PartySize == 0 {
		req.PartySize = 1
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	if req.TableID != nil {
		if _, err := s.tables.GetByID(ctx, *req.TableID); err != nil {
			return nil, err
		}
	}

	party := &model.Party{
		EventID:    eventID,
		TableID:    req.TableID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		GroupLabel: req.Group,
		PartySize:  req.PartySize,
		Token:      uuid.NewString(),
	}
	if err := s.parties.Create(ctx, party); err != nil {
		return nil, fmt.Errorf("add party: %w", err)
	}
	return party, nil
}

// List returns the event's parties annotated with their table and the member
// indices currently holding a seat.
func (s *PartyService) List(ctx context.Context, eventID int64) ([]model.PartyWithSeating, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.parties.ListByEvent(ctx, eventID)
}

// Update mutates the party's own fields only — never the table assignment
// and never the token.
func (s *PartyService) Update(ctx context.Context, id int64, req model.UpdatePartyRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fmt.Errorf("%w: party name is required", ErrValidation)
	}
	if req.PartySize < 0 {
		return fmt.Errorf("%w: party size must be at least 1", ErrValidation)
	}
	if req.PartySize == 0 {
		req.PartySize = 1
	}
	return s.parties.Update(ctx, id, req)
}

// Reassign sets or clears the party's table. Seat assignments the party
// holds at a previous table are not cleared here; the layout editor releases
// or re-claims seats explicitly as the admin re-seats members.
func (s *PartyService) Reassign(ctx context.Context, id int64, tableID *int64) error {
	if tableID != nil {
		if _, err := s.tables.GetByID(ctx, *tableID); err != nil {
			return err
		}
	}
	return s.parties.Reassign(ctx, id, tableID)
}

// Delete removes the party; its seat assignment rows survive with the party
// reference cleared.
func (s *PartyService) Delete(ctx context.Context, id int64) error {
	return s.parties.Delete(ctx, id)
}
