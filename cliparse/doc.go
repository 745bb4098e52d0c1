// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3323)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"

# CLI Flags

	-p    Server port
	-d    Database URL or file path
	-t    Database type

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if DATABASE_URL is missing or the database
type is not one of sqlite/postgres.
*/
package cliparse
