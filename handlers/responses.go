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

type ResponseHandler struct {
	store *store.Store
}

func NewResponseHandler(st *store.Store) *ResponseHandler {
	return &ResponseHandler{store: st}
}

// SubmitResponse handles POST /polls/{id}/responses
// Submissions are anonymous: no respondent identity is recorded. The
// answer keys are stored as sent, without checking them against the
// poll's question ids; an unanswered question is simply absent.
func (h *ResponseHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Answers) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one answer is required")
		return
	}

	if _, err := h.store.GetPoll(r.Context(), pollID); errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	} else if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Map iteration order is whatever the runtime hands over, like the
	// original form iteration. Nothing downstream assumes the pairs
	// match question order; the codec only promises index alignment.
	pairs := make([]submission.Pair, 0, len(req.Answers))
	for field, value := range req.Answers {
		pairs = append(pairs, submission.Pair{Field: field, Value: value})
	}
	fields, values := submission.Encode(pairs)

	resp, err := h.store.AddResponse(r.Context(), models.NewPollResponse(pollID, fields, values))
	if err != nil {
		slog.Error("failed to insert response", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save response")
		return
	}

	slog.Info("response submitted", "poll_id", pollID, "response_id", resp.ID, "answers", len(pairs))

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponseResponse{
		ResponseID: resp.ID,
	})
}

// ListResponses handles GET /polls/{id}/responses
// Owner only; returns each stored response decoded back into its
// field/value pairs.
func (h *ResponseHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
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
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the poll owner can view responses")
		return
	}

	responses, err := h.store.ResponsesForPoll(r.Context(), poll.ID)
	if err != nil {
		slog.Error("failed to query responses", "error", err, "poll_id", poll.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	views := make([]models.ResponseView, 0, len(responses))
	for _, resp := range responses {
		views = append(views, decodeResponse(resp))
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// GetSummary handles GET /polls/{id}/summary
// Tallies decoded answers per field key across every response. Fields
// appear in first-seen order; counts key on the literal answer text.
func (h *ResponseHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
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

	responses, err := h.store.ResponsesForPoll(r.Context(), poll.ID)
	if err != nil {
		slog.Error("failed to query responses", "error", err, "poll_id", poll.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var order []string
	tallies := make(map[string]*models.QuestionTally)
	for _, resp := range responses {
		for _, pair := range submission.Decode(resp.Fields, resp.Values) {
			t, seen := tallies[pair.Field]
			if !seen {
				t = &models.QuestionTally{Field: pair.Field, Counts: map[string]int{}}
				tallies[pair.Field] = t
				order = append(order, pair.Field)
			}
			t.Counts[pair.Value]++
			t.Total++
		}
	}

	out := make([]models.QuestionTally, 0, len(order))
	for _, field := range order {
		out = append(out, *tallies[field])
	}

	middleware.JSONResponse(w, http.StatusOK, models.SummaryResponse{
		PollID:    poll.ID,
		Responses: len(responses),
		Tallies:   out,
	})
}

func decodeResponse(resp models.PollResponse) models.ResponseView {
	pairs := submission.Decode(resp.Fields, resp.Values)
	answers := make([]models.Answer, 0, len(pairs))
	for _, p := range pairs {
		answers = append(answers, models.Answer{Field: p.Field, Value: p.Value})
	}
	return models.ResponseView{
		ID:          resp.ID,
		PollID:      resp.PollID,
		Answers:     answers,
		SubmittedAt: resp.CreatedAt,
	}
}
