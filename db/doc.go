// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package db creates the database schema: users, polls, questions,
// poll_responses, and sessions. The DDL is restricted to what PostgreSQL
// and SQLite both accept, so the same CreateSchema call serves dev,
// test, and production databases.
package db
