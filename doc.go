// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollcraft API server.

Pollcraft lets registered users define polls out of typed questions
(multiple-choice or free-response), share them, and collect anonymous
responses for later aggregation.

# Starting the Server

The server runs against SQLite by default and PostgreSQL when
configured:

	go run . -d pollcraft.db

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

A .env file in the working directory is loaded when present.

# Configuration

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - PORT (-p): Server port (default: 3323)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, polls, responses, search)
  - router: Route definitions using Go 1.22+ routing
  - middleware: session context, CORS, logging, JSON helpers
  - models: Domain and request/response types
  - store: SQL data access (works on both supported databases)
  - submission: the fields/values comma codec
  - search: shared substring matching
  - auth: password hashing and session tokens
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
