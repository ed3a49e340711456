// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

"sqlite" (modernc.org/sqlite, pure Go, a local file) is the default;
"postgres" (lib/pq) is available for a shared deployment.

# Schema

The durable medium is a single key-value table:

	kv(key TEXT PRIMARY KEY, value TEXT NOT NULL)

One row per persisted document: schedule, picks, tiebreakers, results, and
the user name. Values are JSON text except the user name, which is stored as
a plain string. CreateSchema is safe to call multiple times.

Keeping the storage shape to one row per document means every replace is a
single-statement write, which is what makes the "whole document or nothing"
contract of administrative saves trivial to honor.
*/
package db
