package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed by the Postgres repositories.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropSchema removes every table created by CreateSchema
func DropSchema(db *sql.DB) error {
	_, err := db.Exec(`
		DROP TABLE IF EXISTS exclusion CASCADE;
		DROP TABLE IF EXISTS participant CASCADE;
		DROP TABLE IF EXISTS event CASCADE;
	`)
	if err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}

	return nil
}

const schema = `
-- Events
CREATE TABLE IF NOT EXISTS event (
    id TEXT PRIMARY KEY,
    public_id TEXT NOT NULL UNIQUE,
    admin_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL DEFAULT '',
    place TEXT NOT NULL DEFAULT '',
    budget TEXT NOT NULL DEFAULT '',
    organizer_participating BOOLEAN NOT NULL DEFAULT FALSE,
    organizer_participant_id TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'active', 'completed')),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Participants
CREATE TABLE IF NOT EXISTS participant (
    id TEXT NOT NULL,
    event_id TEXT NOT NULL REFERENCES event(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    position INTEGER NOT NULL,
    claimed BOOLEAN NOT NULL DEFAULT FALSE,
    claimed_at TIMESTAMPTZ,
    draws_participant_id TEXT NOT NULL DEFAULT '',
    active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (event_id, id)
);

CREATE INDEX IF NOT EXISTS idx_participant_event_position ON participant(event_id, position);

-- Exclusions
CREATE TABLE IF NOT EXISTS exclusion (
    seq BIGSERIAL PRIMARY KEY,
    id TEXT NOT NULL,
    event_id TEXT NOT NULL REFERENCES event(id) ON DELETE CASCADE,
    participant_a_name TEXT NOT NULL,
    participant_b_name TEXT NOT NULL,
    direction TEXT NOT NULL CHECK (direction IN ('a_to_b', 'both')),
    UNIQUE (event_id, id)
);

CREATE INDEX IF NOT EXISTS idx_exclusion_event_id ON exclusion(event_id);
`
