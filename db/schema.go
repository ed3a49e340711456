// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database. databaseType selects the driver:
// "sqlite" (the default local store) or "postgres".
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	driver := "sqlite"
	if databaseType == "postgres" {
		driver = "postgres"
	}

	conn, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", databaseType, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", databaseType, err)
	}
	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// One row per persisted document. The same statements run on both SQLite and
// PostgreSQL, including the upsert in the store, so the schema stays
// dialect-neutral.
const schema = `
-- Key-value rows, one per persisted document:
-- schedule, picks, tiebreakers, results, username.
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`
