package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tablemap/tablemap/internal/model"
	"github.com/tablemap/tablemap/internal/repository"
)

// Display defaults applied when a bulk-create spec leaves them out.
const (
	defaultTableShape = "round"
	defaultTableSide  = 120
	defaultIconSize   = 80
)

// LayoutService orchestrates tables and icons on the venue canvas.
type LayoutService struct {
	tables TableStore
	icons  IconStore
	events EventStore
}

// NewLayoutService constructs a LayoutService with its dependencies.
func NewLayoutService(tables TableStore, icons IconStore, events EventStore) *LayoutService {
	return &LayoutService{tables: tables, icons: icons, events: events}
}

// BulkCreateTables validates a batch of table specs, lays them out on the
// fixed 5-column grid, and creates them as one atomic unit: a duplicate name
// anywhere in the batch leaves zero new tables behind.
func (s *LayoutService) BulkCreateTables(ctx context.Context, eventID int64, specs []model.TableSpec) ([]model.Table, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: table batch must not be empty", ErrValidation)
	}

	seen := make(map[string]bool, len(specs))
	tables := make([]model.Table, len(specs))
	for i, spec := range specs {
		spec.Name = strings.TrimSpace(spec.Name)
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: table name is required", ErrValidation)
		}
		if spec.Capacity < 1 {
			return nil, fmt.Errorf("%w: table %q capacity must be at least 1", ErrValidation, spec.Name)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("table %q: %w", spec.Name, repository.ErrDuplicateTableName)
		}
		seen[spec.Name] = true

		x, y := model.GridPosition(i)
		shape := spec.Shape
		if shape == "" {
			shape = defaultTableShape
		}
		showSeats := true
		if spec.ShowSeats != nil {
			showSeats = *spec.ShowSeats
		}
		tables[i] = model.Table{
			Name:            spec.Name,
			Capacity:        spec.Capacity,
			X:               x,
			Y:               y,
			Shape:           shape,
			Purpose:         spec.Purpose,
			Color:           spec.Color,
			Width:           defaultTableSide,
			Height:          defaultTableSide,
			SeatSides:       spec.SeatSides,
			SeatSidesConfig: spec.SeatSidesConfig,
			ShowSeats:       showSeats,
		}
	}

	created, err := s.tables.BulkCreate(ctx, eventID, tables)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListTables returns the event's tables with live occupancy.
func (s *LayoutService) ListTables(ctx context.Context, eventID int64) ([]model.TableWithOccupancy, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.tables.ListByEvent(ctx, eventID)
}

// UpdateTable replaces a table's display and shape attributes.
func (s *LayoutService) UpdateTable(ctx context.Context, id int64, req model.UpdateTableRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fmt.Errorf("%w: table name is required", ErrValidation)
	}
	if req.Capacity < 1 {
		return fmt.Errorf("%w: table capacity must be at least 1", ErrValidation)
	}
	return s.tables.Update(ctx, id, req)
}

// RepositionTable moves a table on the canvas; last write wins.
func (s *LayoutService) RepositionTable(ctx context.Context, id int64, x, y float64) error {
	return s.tables.Reposition(ctx, id, x, y)
}

// DeleteTable removes a table, its seat assignments, and its parties' table
// references.
func (s *LayoutService) DeleteTable(ctx context.Context, id int64) error {
	return s.tables.Delete(ctx, id)
}

// ClearLayout wipes every table and icon of the event.
func (s *LayoutService) ClearLayout(ctx context.Context, eventID int64) error {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return err
	}
	return s.tables.ClearLayout(ctx, eventID)
}

// AddIcon places a decorative icon on the event's canvas.
func (s *LayoutService) AddIcon(ctx context.Context, eventID int64, req model.AddIconRequest) (*model.LayoutIcon, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	size := req.Size
	if size == 0 {
		size = defaultIconSize
	}
	icon := &model.LayoutIcon{
		EventID:  eventID,
		IconType: req.IconType,
		X:        req.X,
		Y:        req.Y,
		Size:     size,
		Rotation: req.Rotation,
	}
	if err := s.icons.Create(ctx, icon); err != nil {
		return nil, fmt.Errorf("add icon: %w", err)
	}
	return icon, nil
}

// ListIcons returns the event's icons.
func (s *LayoutService) ListIcons(ctx context.Context, eventID int64) ([]model.LayoutIcon, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.icons.ListByEvent(ctx, eventID)
}

// RepositionIcon moves an icon on the canvas; last write wins.
func (s *LayoutService) RepositionIcon(ctx context.Context, id int64, x, y float64) error {
	return s.icons.Reposition(ctx, id, x, y)
}

// DeleteIcon removes a single icon.
func (s *LayoutService) DeleteIcon(ctx context.Context, id int64) error {
	return s.icons.Delete(ctx, id)
}
