package service

import (
	"context"
	"fmt"

	"github.com/tablemap/tablemap/internal/model"
	"github.com/tablemap/tablemap/internal/repository"
)

// GuestService is the public, token-keyed read path. It resolves an
// invitation token to a restricted view of the holder's own assignment and
// never mutates anything.
type GuestService struct {
	parties PartyStore
	tables  TableStore
	events  EventStore
}

// NewGuestService constructs a GuestService with its dependencies.
func NewGuestService(parties PartyStore, tables TableStore, events EventStore) *GuestService {
	return &GuestService{parties: parties, tables: tables, events: events}
}

// Resolve returns the token holder's party, its assigned table if any, and
// the parent event. Only the caller's own party data is exposed.
func (s *GuestService) Resolve(ctx context.Context, token string) (*model.GuestView, error) {
	if token == "" {
		return nil, fmt.Errorf("invitation token: %w", repository.ErrNotFound)
	}
	party, err := s.parties.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	event, err := s.events.GetByID(ctx, party.EventID)
	if err != nil {
		return nil, err
	}

	view := &model.GuestView{
		Name:       party.Name,
		PartySize:  party.PartySize,
		Group:      party.GroupLabel,
		EventName:  event.Name,
		EventDate:  event.Date,
		EventVenue: event.Venue,
	}
	if party.TableID != nil {
		table, err := s.tables.GetByID(ctx, *party.TableID)
		if err != nil {
			return nil, err
		}
		view.TableID = &table.ID
		view.TableName = table.Name
		view.TableCapacity = table.Capacity
		x, y := table.X, table.Y
		view.TableX = &x
		view.TableY = &y
	}
	return view, nil
}

// ResolveLayout returns every table of the token holder's event — enough to
// render the hall — plus which table is theirs. Other parties' identities
// are never included.
func (s *GuestService) ResolveLayout(ctx context.Context, token string) (*model.GuestLayout, error) {
	if token == "" {
		return nil, fmt.Errorf("invitation token: %w", repository.ErrNotFound)
	}
	party, err := s.parties.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	tables, err := s.tables.ListByEvent(ctx, party.EventID)
	if err != nil {
		return nil, err
	}

	layout := &model.GuestLayout{
		Tables:        make([]model.GuestTable, 0, len(tables)),
		CallerTableID: party.TableID,
	}
	for _, t := range tables {
		layout.Tables = append(layout.Tables, model.GuestTable{
			ID:       t.ID,
			Name:     t.Name,
			Capacity: t.Capacity,
			X:        t.X,
			Y:        t.Y,
		})
	}
	return layout, nil
}
