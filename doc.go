// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the pick'em API server.

Pickem is a single-user prediction game: a season of weekly matchups, one
pick per matchup plus a numeric tiebreaker per week, and a leaderboard that
ranks the local user against imported pick sets once official results come
in.

# Starting the Server

The server takes configuration from environment variables (a .env file is
loaded if present) or CLI flags:

	ADMIN_PASS=letmein go run main.go

Or with flags:

	go run main.go -p 3418 -d pickem.db --admin-pass letmein

# Configuration

Required settings:

  - ADMIN_PASS (--admin-pass): Shared administrative passphrase

Optional settings:

  - PORT (-p): Server port (default: 3418)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DATABASE_URL (-d): SQLite file path (default: pickem.db) or
    PostgreSQL connection string

# Architecture

The server uses a handler-based architecture with an explicit state store:

  - handlers: HTTP request handlers (schedule, picks, results,
    participants, leaderboard, me)
  - store: state-owning service over the key-value table plus the
    session roster of imported participants
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Typed document shapes and request/response types
  - auth: Admin passphrase validation
  - db: Connection and schema creation
  - metrics: Prometheus counters
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
