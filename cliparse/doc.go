// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3418)
  - DatabaseURL: SQLite file path or PostgreSQL connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminPass: Shared administrative passphrase (required)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--admin-pass  Admin passphrase

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_PASS    → --admin-pass

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_PASS must be provided
  - DATABASE_URL must be provided when the type is postgres (sqlite defaults
    to the local file pickem.db)
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
