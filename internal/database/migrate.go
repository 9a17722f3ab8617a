package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied in order at startup. Statements are idempotent so restart
// is always safe. Foreign keys carry no declarative cascade actions on
// purpose: every cascade in this system is performed explicitly inside a
// repository transaction, so the deletion logic stays portable and visible.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		date        TEXT NOT NULL,
		venue       TEXT NOT NULL DEFAULT '',
		start_time  TEXT NOT NULL DEFAULT '',
		end_time    TEXT NOT NULL DEFAULT '',
		background  TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	// "table" is a reserved word, hence venue_tables.
	`CREATE TABLE IF NOT EXISTS venue_tables (
		id                BIGSERIAL PRIMARY KEY,
		event_id          BIGINT NOT NULL REFERENCES events(id),
		name              TEXT NOT NULL,
		capacity          INT NOT NULL,
		x                 DOUBLE PRECISION NOT NULL DEFAULT 0,
		y                 DOUBLE PRECISION NOT NULL DEFAULT 0,
		shape             TEXT NOT NULL DEFAULT 'round',
		purpose           TEXT NOT NULL DEFAULT '',
		color             TEXT NOT NULL DEFAULT '',
		width             DOUBLE PRECISION NOT NULL DEFAULT 120,
		height            DOUBLE PRECISION NOT NULL DEFAULT 120,
		rotation          DOUBLE PRECISION NOT NULL DEFAULT 0,
		seat_sides        INT NOT NULL DEFAULT 0,
		seat_sides_config TEXT NOT NULL DEFAULT '',
		show_seats        BOOLEAN NOT NULL DEFAULT TRUE,
		CONSTRAINT venue_tables_event_name_key UNIQUE (event_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS layout_icons (
		id        BIGSERIAL PRIMARY KEY,
		event_id  BIGINT NOT NULL REFERENCES events(id),
		icon_type TEXT NOT NULL DEFAULT '',
		x         DOUBLE PRECISION NOT NULL DEFAULT 0,
		y         DOUBLE PRECISION NOT NULL DEFAULT 0,
		size      DOUBLE PRECISION NOT NULL DEFAULT 80,
		rotation  DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS parties (
		id          BIGSERIAL PRIMARY KEY,
		event_id    BIGINT NOT NULL REFERENCES events(id),
		table_id    BIGINT REFERENCES venue_tables(id),
		name        TEXT NOT NULL,
		email       TEXT NOT NULL DEFAULT '',
		phone       TEXT NOT NULL DEFAULT '',
		group_label TEXT NOT NULL DEFAULT '',
		party_size  INT NOT NULL DEFAULT 1,
		token       TEXT NOT NULL UNIQUE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS seat_assignments (
		id           BIGSERIAL PRIMARY KEY,
		table_id     BIGINT NOT NULL REFERENCES venue_tables(id),
		seat_number  INT NOT NULL,
		party_id     BIGINT REFERENCES parties(id),
		member_index INT,
		CONSTRAINT seat_assignments_table_seat_key UNIQUE (table_id, seat_number)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_venue_tables_event ON venue_tables (event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_layout_icons_event ON layout_icons (event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_parties_event ON parties (event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_parties_table ON parties (table_id)`,
	`CREATE INDEX IF NOT EXISTS idx_seat_assignments_party ON seat_assignments (party_id)`,
}

// Migrate bootstraps the schema. It runs every statement in order and stops
// at the first failure.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
