package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tablemap/tablemap/internal/model"
)

// EventService orchestrates event registry operations.
type EventService struct {
	events EventStore
}

// NewEventService constructs an EventService with its dependencies.
func NewEventService(events EventStore) *EventService {
	return &EventService{events: events}
}

// Create validates the request and creates the event, which comes back with
// its default stage icon already seeded.
func (s *EventService) Create(ctx context.Context, req model.CreateEventRequest) (*model.Event, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("%w: event name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: event date is required", ErrValidation)
	}

	event := &model.Event{
		Name:      req.Name,
		Date:      req.Date,
		Venue:     req.Venue,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Get returns an event with its occupancy statistics.
func (s *EventService) Get(ctx context.Context, id int64) (*model.EventWithStats, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	stats, err := s.events.Stats(ctx, id)
	if err != nil {
		return nil, err
	}
	stats.RemainingSeats = stats.Remaining()
	return &model.EventWithStats{Event: *event, Stats: *stats}, nil
}

// List returns all events, most recent date first.
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.events.List(ctx)
}

// Update replaces the event's mutable fields, enforcing the same required
// fields as creation.
func (s *EventService) Update(ctx context.Context, id int64, req model.UpdateEventRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return fmt.Errorf("%w: event name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: event date is required", ErrValidation)
	}
	return s.events.Update(ctx, id, req)
}

// Delete removes the event and cascades to every table, party, icon, and
// seat assignment that referenced it.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.events.Delete(ctx, id)
}
