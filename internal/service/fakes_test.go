package service

import (
	"context"

	"github.com/tablemap/tablemap/internal/model"
	"github.com/tablemap/tablemap/internal/repository"
)

// In-memory store fakes. Each records the last call it saw and returns
// whatever the test configured; unconfigured lookups report ErrNotFound.

type fakeEventStore struct {
	created    *model.Event
	createErr  error
	getEvent   *model.Event
	getErr     error
	stats      *model.EventStats
	statsErr   error
	listEvents []model.Event
	updatedID  int64
	updateReq  model.UpdateEventRequest
	updateErr  error
	deletedID  int64
	deleteErr  error
}

func (f *fakeEventStore) Create(ctx context.Context, event *model.Event) error {
	f.created = event
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = 1
	return nil
}

func (f *fakeEventStore) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getEvent == nil || f.getEvent.ID != id {
		return nil, repository.ErrNotFound
	}
	return f.getEvent, nil
}

func (f *fakeEventStore) Stats(ctx context.Context, id int64) (*model.EventStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	if f.stats == nil {
		return &model.EventStats{}, nil
	}
	return f.stats, nil
}

func (f *fakeEventStore) List(ctx context.Context) ([]model.Event, error) {
	return f.listEvents, nil
}

func (f *fakeEventStore) Update(ctx context.Context, id int64, req model.UpdateEventRequest) error {
	f.updatedID = id
	f.updateReq = req
	return f.updateErr
}

func (f *fakeEventStore) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeTableStore struct {
	bulkEventID int64
	bulkTables  []model.Table
	bulkErr     error
	getTable    *model.Table
	getErr      error
	listTables  []model.TableWithOccupancy
	updatedID   int64
	updateReq   model.UpdateTableRequest
	updateErr   error
	movedID     int64
	movedX      float64
	movedY      float64
	deletedID   int64
	deleteErr   error
	clearedID   int64
}

func (f *fakeTableStore) BulkCreate(ctx context.Context, eventID int64, tables []model.Table) ([]model.Table, error) {
	f.bulkEventID = eventID
	f.bulkTables = tables
	if f.bulkErr != nil {
		return nil, f.bulkErr
	}
	for i := range tables {
		tables[i].ID = int64(i + 1)
		tables[i].EventID = eventID
	}
	return tables, nil
}

func (f *fakeTableStore) GetByID(ctx context.Context, id int64) (*model.Table, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getTable == nil || f.getTable.ID != id {
		return nil, repository.ErrNotFound
	}
	return f.getTable, nil
}

func (f *fakeTableStore) ListByEvent(ctx context.Context, eventID int64) ([]model.TableWithOccupancy, error) {
	return f.listTables, nil
}

func (f *fakeTableStore) Update(ctx context.Context, id int64, req model.UpdateTableRequest) error {
	f.updatedID = id
	f.updateReq = req
	return f.updateErr
}

func (f *fakeTableStore) Reposition(ctx context.Context, id int64, x, y float64) error {
	f.movedID = id
	f.movedX = x
	f.movedY = y
	return nil
}

func (f *fakeTableStore) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeTableStore) ClearLayout(ctx context.Context, eventID int64) error {
	f.clearedID = eventID
	return nil
}

type fakeIconStore struct {
	created   *model.LayoutIcon
	createErr error
	listIcons []model.LayoutIcon
	movedID   int64
	movedX    float64
	movedY    float64
	deletedID int64
	deleteErr error
}

func (f *fakeIconStore) Create(ctx context.Context, icon *model.LayoutIcon) error {
	f.created = icon
	if f.createErr != nil {
		return f.createErr
	}
	icon.ID = 1
	return nil
}

func (f *fakeIconStore) ListByEvent(ctx context.Context, eventID int64) ([]model.LayoutIcon, error) {
	return f.listIcons, nil
}

func (f *fakeIconStore) Reposition(ctx context.Context, id int64, x, y float64) error {
	f.movedID = id
	f.movedX = x
	f.movedY = y
	return nil
}

func (f *fakeIconStore) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

type fakePartyStore struct {
	created     *model.Party
	createErr   error
	getParty    *model.Party
	getErr      error
	tokenParty  *model.Party
	tokenErr    error
	listParties []model.PartyWithSeating
	updatedID   int64
	updateReq   model.UpdatePartyRequest
	updateErr   error
	reassignID  int64
	reassignTo  *int64
	reassignErr error
	deletedID   int64
	deleteErr   error
}

func (f *fakePartyStore) Create(ctx context.Context, party *model.Party) error {
	f.created = party
	if f.createErr != nil {
		return f.createErr
	}
	party.ID = 1
	return nil
}

func (f *fakePartyStore) GetByID(ctx context.Context, id int64) (*model.Party, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getParty == nil || f.getParty.ID != id {
		return nil, repository.ErrNotFound
	}
	return f.getParty, nil
}

func (f *fakePartyStore) GetByToken(ctx context.Context, token string) (*model.Party, error) {
	if f.tokenErr != nil {
		return nil, f.tokenErr
	}
	if f.tokenParty == nil || f.tokenParty.Token != token {
		return nil, repository.ErrNotFound
	}
	return f.tokenParty, nil
}

func (f *fakePartyStore) ListByEvent(ctx context.Context, eventID int64) ([]model.PartyWithSeating, error) {
	return f.listParties, nil
}

func (f *fakePartyStore) Update(ctx context.Context, id int64, req model.UpdatePartyRequest) error {
	f.updatedID = id
	f.updateReq = req
	return f.updateErr
}

func (f *fakePartyStore) Reassign(ctx context.Context, id int64, tableID *int64) error {
	f.reassignID = id
	f.reassignTo = tableID
	return f.reassignErr
}

func (f *fakePartyStore) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeSeatStore struct {
	claimTableID int64
	claimSeat    int
	claimPartyID int64
	claimMember  int
	claimErr     error
	listSeats    []model.SeatAssignmentView
	releasedSeat int
	releaseErr   error
}

func (f *fakeSeatStore) Claim(ctx context.Context, tableID int64, seatNumber int, partyID int64, memberIndex int) (*model.SeatAssignment, error) {
	f.claimTableID = tableID
	f.claimSeat = seatNumber
	f.claimPartyID = partyID
	f.claimMember = memberIndex
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	return &model.SeatAssignment{
		ID:          1,
		TableID:     tableID,
		SeatNumber:  seatNumber,
		PartyID:     &partyID,
		MemberIndex: &memberIndex,
	}, nil
}

func (f *fakeSeatStore) ListByTable(ctx context.Context, tableID int64) ([]model.SeatAssignmentView, error) {
	return f.listSeats, nil
}

func (f *fakeSeatStore) Release(ctx context.Context, tableID int64, seatNumber int) error {
	f.releasedSeat = seatNumber
	return f.releaseErr
}
