// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
//
// Each service speaks to storage through a narrow store interface. The pgx
// repositories satisfy them in production; tests substitute in-memory fakes.
package service

import (
	"context"
	"errors"

	"github.com/tablemap/tablemap/internal/model"
	"github.com/tablemap/tablemap/internal/repository"
)

// ErrValidation marks a request rejected before any mutation: a missing
// required field or a structurally impossible value.
var ErrValidation = errors.New("invalid input")

// EventStore is the persistence surface the event registry needs.
type EventStore interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	Stats(ctx context.Context, id int64) (*model.EventStats, error)
	List(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, id int64, req model.UpdateEventRequest) error
	Delete(ctx context.Context, id int64) error
}

// TableStore is the persistence surface the layout store needs.
type TableStore interface {
	BulkCreate(ctx context.Context, eventID int64, tables []model.Table) ([]model.Table, error)
	GetByID(ctx context.Context, id int64) (*model.Table, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.TableWithOccupancy, error)
	Update(ctx context.Context, id int64, req model.UpdateTableRequest) error
	Reposition(ctx context.Context, id int64, x, y float64) error
	Delete(ctx context.Context, id int64) error
	ClearLayout(ctx context.Context, eventID int64) error
}

// IconStore is the persistence surface for layout icons.
type IconStore interface {
	Create(ctx context.Context, icon *model.LayoutIcon) error
	ListByEvent(ctx context.Context, eventID int64) ([]model.LayoutIcon, error)
	Reposition(ctx context.Context, id int64, x, y float64) error
	Delete(ctx context.Context, id int64) error
}

// PartyStore is the persistence surface the party roster needs.
type PartyStore interface {
	Create(ctx context.Context, party *model.Party) error
	GetByID(ctx context.Context, id int64) (*model.Party, error)
	GetByToken(ctx context.Context, token string) (*model.Party, error)
	ListByEvent(ctx context.Context, eventID int64) ([]model.PartyWithSeating, error)
	Update(ctx context.Context, id int64, req model.UpdatePartyRequest) error
	Reassign(ctx context.Context, id int64, tableID *int64) error
	Delete(ctx context.Context, id int64) error
}

// SeatStore is the persistence surface the seat assignment ledger needs.
type SeatStore interface {
	Claim(ctx context.Context, tableID int64, seatNumber int, partyID int64, memberIndex int) (*model.SeatAssignment, error)
	ListByTable(ctx context.Context, tableID int64) ([]model.SeatAssignmentView, error)
	Release(ctx context.Context, tableID int64, seatNumber int) error
}

// The pgx repositories are the production stores.
var (
	_ EventStore = (*repository.EventRepository)(nil)
	_ TableStore = (*repository.TableRepository)(nil)
	_ IconStore  = (*repository.IconRepository)(nil)
	_ PartyStore = (*repository.PartyRepository)(nil)
	_ SeatStore  = (*repository.SeatRepository)(nil)
)
