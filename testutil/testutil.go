// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/pollcraft/pollcraft/auth"
	"github.com/pollcraft/pollcraft/db"
	"github.com/pollcraft/pollcraft/models"
	"github.com/pollcraft/pollcraft/store"
)

// SetupTestDB creates a fresh SQLite database in the test's temp
// directory and applies the full schema. Each test gets its own file, so
// tests stay independent and need no external database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pollcraft_test.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestUser inserts a user with a hashed password and an active
// session, returning the user and the session token.
func CreateTestUser(t *testing.T, conn *sql.DB, name, email, password string) (models.User, string) {
	t.Helper()

	st := store.New(conn)

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user, err := st.CreateUser(context.Background(), name, email, hash)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		t.Fatalf("Failed to generate session token: %v", err)
	}
	if err := st.CreateSession(context.Background(), token, user.ID); err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return user, token
}

// CreateTestPoll inserts a poll owned by the given user.
func CreateTestPoll(t *testing.T, conn *sql.DB, title, ownerID string) models.Poll {
	t.Helper()

	poll, err := store.New(conn).CreatePoll(context.Background(), title, ownerID)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return poll
}

// AddTestQuestion adds a question to a poll; choices may be nil for a
// free-response question.
func AddTestQuestion(t *testing.T, conn *sql.DB, pollID, text string, choices []string) models.Question {
	t.Helper()

	question, err := models.NewQuestion(pollID, text, choices)
	if err != nil {
		t.Fatalf("Failed to build test question: %v", err)
	}
	question, err = store.New(conn).AddQuestion(context.Background(), question)
	if err != nil {
		t.Fatalf("Failed to insert test question: %v", err)
	}
	return question
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
