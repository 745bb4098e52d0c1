// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pollcraft/pollcraft/middleware"
	"github.com/pollcraft/pollcraft/models"
	"github.com/pollcraft/pollcraft/store"
	"github.com/pollcraft/pollcraft/submission"
)

type PollHandler struct {
	store *store.Store
}

func NewPollHandler(st *store.Store) *PollHandler {
	return &PollHandler{store: st}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}

	poll, err := h.store.CreatePoll(r.Context(), req.Title, user.ID)
	if err != nil {
		slog.Error("failed to insert poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", poll.ID, "owner", user.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID: poll.ID,
	})
}

// GetPoll handles GET /polls/{id}
// Public: respondents load the poll and its questions from here. Choice
// questions carry their decoded option list; response questions carry
// none, which tells the renderer to show a free text input.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, err := h.store.GetPoll(r.Context(), pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	questions, err := h.store.QuestionsForPoll(r.Context(), poll.ID)
	if err != nil {
		slog.Error("failed to query questions", "error", err, "poll_id", poll.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	views := make([]models.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, models.QuestionView{Question: q, Choices: q.Choices})
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollView{
		Poll:      poll,
		Questions: views,
	})
}

// PublishPoll handles POST /polls/{id}/publish
func (h *PollHandler) PublishPoll(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, err := h.store.GetPoll(r.Context(), pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if poll.UserID != user.ID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the poll owner can publish it")
		return
	}

	if err := h.store.PublishPoll(r.Context(), poll.ID); err != nil {
		slog.Error("failed to publish poll", "error", err, "poll_id", poll.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to publish poll")
		return
	}

	slog.Info("poll published", "poll_id", poll.ID)

	poll.Published = true
	middleware.JSONResponse(w, http.StatusOK, poll)
}

// AddQuestion handles POST /polls/{id}/questions
// The question type is never part of the request: it is derived from
// whether the choices string is empty. The choices string is split only
// on literal commas, so a comma inside an option corrupts the list; that
// matches the stored encoding and is an accepted limitation.
func (h *PollHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.AddQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	poll, err := h.store.GetPoll(r.Context(), pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if poll.UserID != user.ID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the poll owner can add questions")
		return
	}

	question, err := models.NewQuestion(poll.ID, req.Text, submission.SplitChoices(req.Choices))
	if errors.Is(err, models.ErrEmptyText) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}
	if err != nil {
		slog.Error("failed to build question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add question")
		return
	}

	question, err = h.store.AddQuestion(r.Context(), question)
	if err != nil {
		slog.Error("failed to insert question", "error", err, "poll_id", poll.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add question")
		return
	}

	slog.Info("question added", "poll_id", poll.ID, "question_id", question.ID, "type", question.Type)

	middleware.JSONResponse(w, http.StatusCreated, models.AddQuestionResponse{
		QuestionID: question.ID,
		Type:       question.Type,
	})
}
