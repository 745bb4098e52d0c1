// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store owns all SQL access for users, polls, questions,
// responses, and sessions.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pollcraft/pollcraft/models"
	"github.com/pollcraft/pollcraft/search"
	"github.com/pollcraft/pollcraft/submission"
)

var (
	// ErrNotFound is the normal "no such record" outcome. Callers are
	// expected to recover from it (an empty view, a 404), never to treat
	// it as fatal.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate reports a name or email that is already taken.
	ErrDuplicate = errors.New("already taken")
)

// Store provides all SQL data access over a single *sql.DB. It works
// unchanged against PostgreSQL and SQLite: statements use $N
// placeholders in ascending order, which both drivers bind positionally.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Users

// CreateUser inserts a new account. Returns ErrDuplicate when the name
// or email is already registered.
func (s *Store) CreateUser(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	var existing int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE name = $1 OR email = $2",
		name, email,
	).Scan(&existing)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing > 0 {
		return models.User{}, ErrDuplicate
	}

	user := models.NewUser(name, email, passwordHash)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

const userColumns = "id, name, email, password_hash, age, race, gender, education, created_at"

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
		&u.Age, &u.Race, &u.Gender, &u.Education, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to scan user: %w", err)
	}
	return u, nil
}

func (s *Store) UserByID(ctx context.Context, id string) (models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (s *Store) UserByName(ctx context.Context, name string) (models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE name = $1", name)
	return scanUser(row)
}

// UserByNameOrEmail resolves the sign-in identifier, which may be either
// a username or an email address.
func (s *Store) UserByNameOrEmail(ctx context.Context, nameOrEmail string) (models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE name = $1 OR email = $2",
		nameOrEmail, nameOrEmail)
	return scanUser(row)
}

// UpdateDemographics replaces the optional profile fields of one user.
func (s *Store) UpdateDemographics(ctx context.Context, userID string, age int, race, gender, education string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET age = $1, race = $2, gender = $3, education = $4
		WHERE id = $5
	`, age, race, gender, education, userID)
	if err != nil {
		return fmt.Errorf("failed to update demographics: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchUsers returns users whose name or email contains query as a
// case-sensitive substring. An empty result is normal, never an error.
func (s *Store) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	users, err := s.allUsers(ctx)
	if err != nil {
		return nil, err
	}

	byName := search.Filter(users, query, func(u models.User) string { return u.Name })
	matched := make(map[string]bool, len(byName))
	for _, u := range byName {
		matched[u.ID] = true
	}

	byEmail := search.Filter(users, query, func(u models.User) string { return u.Email })
	for _, u := range byEmail {
		if !matched[u.ID] {
			byName = append(byName, u)
		}
	}
	return byName, nil
}

func (s *Store) allUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+userColumns+" FROM users ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
			&u.Age, &u.Race, &u.Gender, &u.Education, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Polls

func (s *Store) CreatePoll(ctx context.Context, title, ownerID string) (models.Poll, error) {
	poll := models.NewPoll(title, ownerID)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO polls (id, title, user_id, published, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, poll.ID, poll.Title, poll.UserID, poll.Published, poll.CreatedAt)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to insert poll: %w", err)
	}
	return poll, nil
}

func (s *Store) GetPoll(ctx context.Context, id string) (models.Poll, error) {
	var p models.Poll
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, user_id, published, created_at
		FROM polls WHERE id = $1
	`, id).Scan(&p.ID, &p.Title, &p.UserID, &p.Published, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query poll: %w", err)
	}
	return p, nil
}

// PublishPoll flips the published flag. Publishing is one-way in the
// current design.
func (s *Store) PublishPoll(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE polls SET published = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to publish poll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) PollsForUser(ctx context.Context, userID string) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, user_id, published, created_at
		FROM polls WHERE user_id = $1 ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()
	return collectPolls(rows)
}

// SearchPolls returns polls whose title contains query as a
// case-sensitive substring.
func (s *Store) SearchPolls(ctx context.Context, query string) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, user_id, published, created_at
		FROM polls ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls, err := collectPolls(rows)
	if err != nil {
		return nil, err
	}
	return search.Filter(polls, query, func(p models.Poll) string { return p.Title }), nil
}

func collectPolls(rows *sql.Rows) ([]models.Poll, error) {
	var polls []models.Poll
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Title, &p.UserID, &p.Published, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, p)
	}
	return polls, rows.Err()
}

// Questions

// AddQuestion persists a question produced by models.NewQuestion. The
// ordinal is assigned from the current question count, so within one
// writer questions keep insertion order; concurrent writers may
// interleave, which is acceptable since nothing depends on a stricter
// order.
func (s *Store) AddQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM questions WHERE poll_id = $1", q.PollID)
	if err := row.Scan(&q.Position); err != nil {
		return models.Question{}, fmt.Errorf("failed to count questions: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO questions (id, poll_id, text, type, choices, ordinal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, q.ID, q.PollID, q.Text, q.Type, submission.JoinChoices(q.Choices), q.Position, q.CreatedAt)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}
	return q, nil
}

// QuestionsForPoll returns a poll's questions in insertion order. An
// unknown poll id yields an empty slice, not an error.
func (s *Store) QuestionsForPoll(ctx context.Context, pollID string) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, poll_id, text, type, choices, ordinal, created_at
		FROM questions WHERE poll_id = $1 ORDER BY ordinal
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		var choices string
		if err := rows.Scan(&q.ID, &q.PollID, &q.Text, &q.Type, &choices,
			&q.Position, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.Choices = submission.SplitChoices(choices)
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// Responses

// AddResponse stores one anonymous submission. The field keys are taken
// as-is; they are not validated against the poll's question ids.
func (s *Store) AddResponse(ctx context.Context, r models.PollResponse) (models.PollResponse, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO poll_responses (id, poll_id, fields, answers, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.ID, r.PollID, r.Fields, r.Values, r.CreatedAt)
	if err != nil {
		return models.PollResponse{}, fmt.Errorf("failed to insert response: %w", err)
	}
	return r, nil
}

func (s *Store) ResponsesForPoll(ctx context.Context, pollID string) ([]models.PollResponse, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, poll_id, fields, answers, created_at
		FROM poll_responses WHERE poll_id = $1 ORDER BY created_at
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	var responses []models.PollResponse
	for rows.Next() {
		var r models.PollResponse
		if err := rows.Scan(&r.ID, &r.PollID, &r.Fields, &r.Values, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

// Sessions

func (s *Store) CreateSession(ctx context.Context, token, userID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (token, user_id, created_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
	`, token, userID)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

// UserForSession resolves a session token to its account. Unknown tokens
// return ErrNotFound.
func (s *Store) UserForSession(ctx context.Context, token string) (models.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT u.id, u.name, u.email, u.password_hash, u.age, u.race, u.gender, u.education, u.created_at
		FROM sessions s JOIN users u ON u.id = s.user_id
		WHERE s.token = $1
	`, token)
	return scanUser(row)
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = $1", token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
