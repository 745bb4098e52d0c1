// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Question type constants
const (
	TypeChoice   = "choice"
	TypeResponse = "response"
)

// Demographic select values, matching the fixed option lists offered at
// profile edit. An empty value means "not provided".
var (
	Races = []string{
		"American Indian or Alaska Native",
		"Asian",
		"Black or African American",
		"Hispanic or Latino",
		"Native Hawaiian or Other Pacific Islander",
		"White",
		"Other",
	}
	Genders    = []string{"Male", "Female", "Other"}
	Educations = []string{
		"High School",
		"College (undergraduate)",
		"College (graduate)",
		"Technical School",
		"Other",
	}
)

// ErrEmptyText is returned by NewQuestion when no question text is given.
var ErrEmptyText = errors.New("question text is required")

// Request types

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Name     string `json:"name"` // username or email
	Password string `json:"password"`
}

type DemographicsRequest struct {
	Age       int    `json:"age"`
	Race      string `json:"race"`
	Gender    string `json:"gender"`
	Education string `json:"education"`
}

type CreatePollRequest struct {
	Title string `json:"title"`
}

// Choices is the raw comma-joined option list. Empty means the question
// accepts free-form text.
type AddQuestionRequest struct {
	Text    string `json:"text"`
	Choices string `json:"choices"`
}

// Answers maps question field keys to the respondent's answers. Only the
// answered questions appear; keys are whatever the submitting form sent.
type SubmitResponseRequest struct {
	Answers map[string]string `json:"answers"`
}

// Response types

type SignUpResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

type SignInResponse struct {
	SessionToken string `json:"session_token"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
}

type CreatePollResponse struct {
	PollID string `json:"poll_id"`
}

type AddQuestionResponse struct {
	QuestionID string `json:"question_id"`
	Type       string `json:"type"`
}

type SubmitResponseResponse struct {
	ResponseID string `json:"response_id"`
}

// QuestionView pairs a question with its decoded choice list. Choices is
// nil for response questions so renderers can fall back to a text input.
type QuestionView struct {
	Question Question `json:"question"`
	Choices  []string `json:"choices,omitempty"`
}

type PollView struct {
	Poll      Poll           `json:"poll"`
	Questions []QuestionView `json:"questions"`
}

// Answer is one decoded field/value pair of a stored response.
type Answer struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type ResponseView struct {
	ID          string    `json:"id"`
	PollID      string    `json:"poll_id"`
	Answers     []Answer  `json:"answers"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// QuestionTally aggregates decoded answers for one field key across all
// responses to a poll.
type QuestionTally struct {
	Field  string         `json:"field"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

type SummaryResponse struct {
	PollID    string          `json:"poll_id"`
	Responses int             `json:"responses"`
	Tallies   []QuestionTally `json:"tallies"`
}

type SearchResponse struct {
	Query string `json:"query"`
	Users []User `json:"users,omitempty"`
	Polls []Poll `json:"polls,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Age          int       `json:"age,omitempty"`
	Race         string    `json:"race,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	Education    string    `json:"education,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Poll struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UserID    string    `json:"user_id"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}

// Question is a single poll question. Type is always derived from the
// choice list at construction: a question is a choice question iff a
// non-empty list was supplied. Choices holds the list in given order and
// is nil for response questions, so the invalid "choice type with no
// options" state cannot be represented.
type Question struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	Text      string    `json:"text"`
	Type      string    `json:"type"`
	Choices   []string  `json:"-"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// PollResponse is one anonymous submission, flattened into two parallel
// comma-joined strings. The i-th decoded field answers the i-th value.
type PollResponse struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	Fields    string    `json:"fields"`
	Values    string    `json:"values"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUser(name, email, passwordHash string) User {
	return User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}

func NewPoll(title, userID string) Poll {
	return Poll{
		ID:        uuid.New().String(),
		Title:     title,
		UserID:    userID,
		Published: false,
		CreatedAt: time.Now().UTC(),
	}
}

// NewQuestion derives the question type from the choice list. The list is
// kept exactly as given: same order, no de-duplication, no trimming.
func NewQuestion(pollID, text string, choices []string) (Question, error) {
	if text == "" {
		return Question{}, ErrEmptyText
	}

	q := Question{
		ID:        uuid.New().String(),
		PollID:    pollID,
		Text:      text,
		Type:      TypeResponse,
		CreatedAt: time.Now().UTC(),
	}
	if len(choices) > 0 {
		q.Type = TypeChoice
		q.Choices = choices
	}
	return q, nil
}

func NewPollResponse(pollID, fields, values string) PollResponse {
	return PollResponse{
		ID:        uuid.New().String(),
		PollID:    pollID,
		Fields:    fields,
		Values:    values,
		CreatedAt: time.Now().UTC(),
	}
}

// ValidRace reports whether v is empty or one of the offered race options.
func ValidRace(v string) bool { return v == "" || contains(Races, v) }

// ValidGender reports whether v is empty or one of the offered gender options.
func ValidGender(v string) bool { return v == "" || contains(Genders, v) }

// ValidEducation reports whether v is empty or one of the offered education options.
func ValidEducation(v string) bool { return v == "" || contains(Educations, v) }

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
