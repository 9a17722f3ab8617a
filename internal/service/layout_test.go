package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tablemap/tablemap/internal/model"
	"github.com/tablemap/tablemap/internal/repository"
)

func TestBulkCreateTablesGridAndDefaults(t *testing.T) {
	events := &fakeEventStore{getEvent: &model.Event{ID: 1}}
	tables := &fakeTableStore{}
	svc := NewLayoutService(tables, &fakeIconStore{}, events)

	specs := make([]model.TableSpec, 7)
	for i := range specs {
		specs[i] = model.TableSpec{Name: "Table " + string(rune('A'+i)), Capacity: 8}
	}
	created, err := svc.BulkCreateTables(context.Background(), 1, specs)
	if err != nil {
		t.Fatalf("bulk create: %v", err)
	}
	if len(created) != 7 {
		t.Fatalf("expected 7 tables, got %d", len(created))
	}

	// First row fills left to right, the sixth table wraps to row two.
	if created[0].X != 100 || created[0].Y != 100 {
		t.Fatalf("table 0 at (%v, %v), want (100, 100)", created[0].X, created[0].Y)
	}
	if created[4].X != 700 || created[4].Y != 100 {
		t.Fatalf("table 4 at (%v, %v), want (700, 100)", created[4].X, created[4].Y)
	}
	if created[5].X != 100 || created[5].Y != 250 {
		t.Fatalf("table 5 at (%v, %v), want (100, 250)", created[5].X, created[5].Y)
	}

	first := created[0]
	if first.Shape != "round" {
		t.Fatalf("expected default shape round, got %q", first.Shape)
	}
	if first.Width != 120 || first.Height != 120 {
		t.Fatalf("expected default 120x120, got %vx%v", first.Width, first.Height)
	}
	if !first.ShowSeats {
		t.Fatal("expected seats shown by default")
	}
}

func TestBulkCreateTablesHonorsExplicitShowSeats(t *testing.T) {
	events := &fakeEventStore{getEvent: &model.Event{ID: 1}}
	svc := NewLayoutService(&fakeTableStore{}, &fakeIconStore{}, events)

	hide := false
	created, err := svc.BulkCreateTables(context.Background(), 1, []model.TableSpec{
		{Name: "Buffet", Capacity: 1, Shape: "rect", ShowSeats: &hide},
	})
	if err != nil {
		t.Fatalf("bulk create: %v", err)
	}
	if created[0].ShowSeats {
		t.Fatal("expected seats hidden when show_seats is false")
	}
	if created[0].Shape != "rect" {
		t.Fatalf("expected explicit shape kept, got %q", created[0].Shape)
	}
}

func TestBulkCreateTablesRejectsEmptyBatch(t *testing.T) {
	svc := NewLayoutService(&fakeTableStore{}, &fakeIconStore{}, &fakeEventStore{})

	_, err := svc.BulkCreateTables(context.Background(), 1, nil)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for empty batch, got %v", err)
	}
}

func TestBulkCreateTablesRejectsBadSpecs(t *testing.T) {
	tables := &fakeTableStore{}
	svc := NewLayoutService(tables, &fakeIconStore{}, &fakeEventStore{getEvent: &model.Event{ID: 1}})

	_, err := svc.BulkCreateTables(context.Background(), 1, []model.TableSpec{
		{Name: "  ", Capacity: 8},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}

	_, err = svc.BulkCreateTables(context.Background(), 1, []model.TableSpec{
		{Name: "Head Table", Capacity: 0},
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for zero capacity, got %v", err)
	}
	if tables.bulkTables != nil {
		t.Fatal("store must not be touched when a spec is invalid")
	}
}

func TestBulkCreateTablesRejectsDuplicateNamesInBatch(t *testing.T) {
	tables := &fakeTableStore{}
	svc := NewLayoutService(tables, &fakeIconStore{}, &fakeEventStore{getEvent: &model.Event{ID: 1}})

	_, err := svc.BulkCreateTables(context.Background(), 1, []model.TableSpec{
		{Name: "Table A", Capacity: 8},
		{Name: "Table B", Capacity: 8},
		{Name: "Table A", Capacity: 10},
	})
	if !errors.Is(err, repository.ErrDuplicateTableName) {
		t.Fatalf("expected duplicate name conflict, got %v", err)
	}
	if tables.bulkTables != nil {
		t.Fatal("no table may be created when the batch has a duplicate name")
	}
}

func TestListTablesRequiresEvent(t *testing.T) {
	svc := NewLayoutService(&fakeTableStore{}, &fakeIconStore{}, &fakeEventStore{})

	_, err := svc.ListTables(context.Background(), 42)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found for unknown event, got %v", err)
	}
}

func TestUpdateTableValidation(t *testing.T) {
	tables := &fakeTableStore{}
	svc := NewLayoutService(tables, &fakeIconStore{}, &fakeEventStore{})

	err := svc.UpdateTable(context.Background(), 2, model.UpdateTableRequest{Name: "Table A", Capacity: 0})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for zero capacity, got %v", err)
	}

	err = svc.UpdateTable(context.Background(), 2, model.UpdateTableRequest{Name: "Table A", Capacity: 10})
	if err != nil {
		t.Fatalf("update table: %v", err)
	}
	if tables.updatedID != 2 {
		t.Fatalf("expected update on id 2, got %d", tables.updatedID)
	}
}

func TestRepositionTableDelegates(t *testing.T) {
	tables := &fakeTableStore{}
	svc := NewLayoutService(tables, &fakeIconStore{}, &fakeEventStore{})

	if err := svc.RepositionTable(context.Background(), 5, 310.5, 220); err != nil {
		t.Fatalf("reposition: %v", err)
	}
	if tables.movedID != 5 || tables.movedX != 310.5 || tables.movedY != 220 {
		t.Fatalf("expected move (5, 310.5, 220), got (%d, %v, %v)", tables.movedID, tables.movedX, tables.movedY)
	}
}

func TestClearLayoutRequiresEvent(t *testing.T) {
	tables := &fakeTableStore{}
	svc := NewLayoutService(tables, &fakeIconStore{}, &fakeEventStore{})

	err := svc.ClearLayout(context.Background(), 42)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if tables.clearedID != 0 {
		t.Fatal("clear must not run when the event does not exist")
	}
}

func TestAddIconAppliesDefaultSize(t *testing.T) {
	icons := &fakeIconStore{}
	svc := NewLayoutService(&fakeTableStore{}, icons, &fakeEventStore{getEvent: &model.Event{ID: 1}})

	icon, err := svc.AddIcon(context.Background(), 1, model.AddIconRequest{IconType: "bar", X: 50, Y: 60})
	if err != nil {
		t.Fatalf("add icon: %v", err)
	}
	if icon.Size != 80 {
		t.Fatalf("expected default size 80, got %v", icon.Size)
	}
	if icon.EventID != 1 {
		t.Fatalf("expected icon bound to event 1, got %d", icon.EventID)
	}

	icon, err = svc.AddIcon(context.Background(), 1, model.AddIconRequest{IconType: "dancefloor", Size: 200})
	if err != nil {
		t.Fatalf("add icon: %v", err)
	}
	if icon.Size != 200 {
		t.Fatalf("expected explicit size kept, got %v", icon.Size)
	}
}
