// Package model defines the core domain types for the seating planner.
package model

import "time"

// Event is the root entity; every table, party, icon, and seat assignment
// belongs to exactly one event and is removed when the event is deleted.
type Event struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Date       string    `json:"date"`
	Venue      string    `json:"venue,omitempty"`
	StartTime  string    `json:"start_time,omitempty"`
	EndTime    string    `json:"end_time,omitempty"`
	Background string    `json:"background,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventStats summarises seating occupancy for a single event.
type EventStats struct {
	TableCount     int `json:"table_count"`
	TotalCapacity  int `json:"total_capacity"`
	AssignedGuests int `json:"assigned_guests"`
	PartyCount     int `json:"party_count"`
	RemainingSeats int `json:"remaining_seats"`
}

// Remaining returns unassigned capacity. Capacity is not enforced, so this
// goes negative when more guests are assigned than the tables can hold.
func (s *EventStats) Remaining() int {
	return s.TotalCapacity - s.AssignedGuests
}

// EventWithStats is the detail view returned by GET /events/{id}.
type EventWithStats struct {
	Event
	Stats EventStats `json:"stats"`
}

// Table is a seating table placed on the event's venue canvas.
// Its name is unique within the event.
type Table struct {
	ID              int64   `json:"id"`
	EventID         int64   `json:"event_id"`
	Name            string  `json:"name"`
	Capacity        int     `json:"capacity"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Shape           string  `json:"shape,omitempty"`
	Purpose         string  `json:"purpose,omitempty"`
	Color           string  `json:"color,omitempty"`
	Width           float64 `json:"width,omitempty"`
	Height          float64 `json:"height,omitempty"`
	Rotation        float64 `json:"rotation,omitempty"`
	SeatSides       int     `json:"seat_sides,omitempty"`
	SeatSidesConfig string  `json:"seat_sides_config,omitempty"`
	ShowSeats       bool    `json:"show_seats"`
}

// TableWithOccupancy annotates a table with live occupancy derived from the
// parties currently assigned to it.
type TableWithOccupancy struct {
	Table
	PartyCount    int `json:"party_count"`
	SeatsOccupied int `json:"seats_occupied"`
}

// LayoutIcon is a non-seating decorative marker on the canvas (stage, bar,
// dance floor). Icons carry no invariants beyond event ownership.
type LayoutIcon struct {
	ID       int64   `json:"id"`
	EventID  int64   `json:"event_id"`
	IconType string  `json:"icon_type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	Rotation float64 `json:"rotation"`
}

// Party is a named invitee or group sharing one invitation token and a
// declared headcount. The token is generated once at creation and never
// changes afterwards; it is the payload of the guest's QR code.
type Party struct {
	ID         int64     `json:"id"`
	EventID    int64     `json:"event_id"`
	TableID    *int64    `json:"table_id,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	GroupLabel string    `json:"group,omitempty"`
	PartySize  int       `json:"party_size"`
	Token      string    `json:"token"`
	CreatedAt  time.Time `json:"created_at"`
}

// PartyWithSeating annotates a party with its assigned table and the ordered
// member indices that currently hold a seat.
type PartyWithSeating struct {
	Party
	TableName     string  `json:"table_name,omitempty"`
	TableCapacity int     `json:"table_capacity,omitempty"`
	SeatedIndices []int64 `json:"seated_indices"`
}

// SeatAssignment binds one physical seat at a table to one member of a party.
// At most one assignment exists per (table, seat number); claiming an occupied
// seat replaces the previous occupant. The party reference is cleared, not
// deleted, when the party goes away.
type SeatAssignment struct {
	ID          int64  `json:"id"`
	TableID     int64  `json:"table_id"`
	SeatNumber  int    `json:"seat_number"`
	PartyID     *int64 `json:"party_id,omitempty"`
	MemberIndex *int   `json:"member_index,omitempty"`
}

// SeatAssignmentView resolves the occupying party's name and size, if bound.
type SeatAssignmentView struct {
	SeatAssignment
	PartyName string `json:"party_name,omitempty"`
	PartySize int    `json:"party_size,omitempty"`
}

// ─── Request payloads ─────────────────────────────────────────────────────────

// CreateEventRequest is the payload for creating a new event.
type CreateEventRequest struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	Venue     string `json:"venue"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// UpdateEventRequest replaces all mutable event fields.
type UpdateEventRequest struct {
	Name       string `json:"name"`
	Date       string `json:"date"`
	Venue      string `json:"venue"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Background string `json:"background"`
}

// TableSpec describes one table in a bulk-create batch. Position is not part
// of the spec; it is auto-computed on a fixed grid from the batch index.
type TableSpec struct {
	Name            string `json:"name"`
	Capacity        int    `json:"capacity"`
	Shape           string `json:"shape"`
	Purpose         string `json:"purpose"`
	Color           string `json:"color"`
	SeatSides       int    `json:"seat_sides"`
	SeatSidesConfig string `json:"seat_sides_config"`
	ShowSeats       *bool  `json:"show_seats"`
}

// BulkCreateTablesRequest is the payload for POST /events/{id}/tables.
type BulkCreateTablesRequest struct {
	Tables []TableSpec `json:"tables"`
}

// BulkCreateTablesResponse reports the created batch.
type BulkCreateTablesResponse struct {
	Created int     `json:"created"`
	Tables  []Table `json:"tables"`
}

// UpdateTableRequest replaces a table's mutable display and shape attributes.
// Position changes go through the reposition endpoint instead.
type UpdateTableRequest struct {
	Name            string  `json:"name"`
	Capacity        int     `json:"capacity"`
	Shape           string  `json:"shape"`
	Purpose         string  `json:"purpose"`
	Color           string  `json:"color"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	Rotation        float64 `json:"rotation"`
	SeatSides       int     `json:"seat_sides"`
	SeatSidesConfig string  `json:"seat_sides_config"`
	ShowSeats       bool    `json:"show_seats"`
}

// RepositionRequest moves a table or icon on the canvas. Last write wins.
type RepositionRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AddIconRequest is the payload for placing a layout icon.
type AddIconRequest struct {
	IconType string  `json:"icon_type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	Rotation float64 `json:"rotation"`
}

// AddPartyRequest is the payload for adding a party to an event's roster.
type AddPartyRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Group     string `json:"group"`
	PartySize int    `json:"party_size"`
	TableID   *int64 `json:"table_id"`
}

// UpdatePartyRequest mutates a party's own fields. It never touches the table
// assignment (see ReassignPartyRequest) or the invitation token.
type UpdatePartyRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Group     string `json:"group"`
	PartySize int    `json:"party_size"`
}

// ReassignPartyRequest sets or clears (nil) a party's table.
type ReassignPartyRequest struct {
	TableID *int64 `json:"table_id"`
}

// ClaimSeatRequest claims one seat at a table for one member of a party.
type ClaimSeatRequest struct {
	SeatNumber  int   `json:"seat_number"`
	PartyID     int64 `json:"party_id"`
	MemberIndex int   `json:"member_index"`
}

// ─── Guest-facing views ───────────────────────────────────────────────────────

// GuestView is the restricted view a guest token resolves to. It exposes only
// the caller's own party, its table (if assigned), and the parent event.
type GuestView struct {
	Name          string   `json:"name"`
	PartySize     int      `json:"party_size"`
	Group         string   `json:"group,omitempty"`
	TableID       *int64   `json:"table_id,omitempty"`
	TableName     string   `json:"table_name,omitempty"`
	TableCapacity int      `json:"table_capacity,omitempty"`
	TableX        *float64 `json:"table_x,omitempty"`
	TableY        *float64 `json:"table_y,omitempty"`
	EventName     string   `json:"event_name"`
	EventDate     string   `json:"event_date"`
	EventVenue    string   `json:"event_venue,omitempty"`
}

// GuestTable is a table as rendered in the guest's hall overview. It carries
// no occupant identities.
type GuestTable struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// GuestLayout is every table of the guest's event plus which one is theirs.
type GuestLayout struct {
	Tables        []GuestTable `json:"tables"`
	CallerTableID *int64       `json:"caller_table_id,omitempty"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GridColumns is the width of the fixed auto-layout grid used when bulk
// creating tables.
const GridColumns = 5

// GridPosition returns the canvas position for the i-th table of a batch:
// five columns, 150px spacing, origin at (100, 100). This placement is a
// deterministic heuristic, not a packing algorithm, and must stay stable so
// previously stored positions keep lining up.
func GridPosition(index int) (x, y float64) {
	col := index % GridColumns
	row := index / GridColumns
	return 100 + float64(col)*150, 100 + float64(row)*150
}
