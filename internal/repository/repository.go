// Package repository implements all database queries for the seating engine.
// It uses pgx directly (no ORM) for transparency and performance.
//
// Referential integrity is enforced here, explicitly: every cascading delete
// and the bulk table-creation batch run as multi-statement transactions, so
// the cleanup rules are readable SQL rather than declarative constraint
// actions buried in the schema.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested resource does not exist.
// Callers wrap it with the offending key, e.g. "event 7: not found".
var ErrNotFound = errors.New("not found")

// ErrDuplicateTableName is returned when a table name collides with another
// table of the same event, whether inside one batch or across batches.
var ErrDuplicateTableName = errors.New("table name already used in this event")

// isUniqueViolation reports whether err is a postgres unique-index violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
