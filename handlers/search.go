// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pollcraft/pollcraft/middleware"
	"github.com/pollcraft/pollcraft/models"
	"github.com/pollcraft/pollcraft/store"
)

type SearchHandler struct {
	store *store.Store
}

func NewSearchHandler(st *store.Store) *SearchHandler {
	return &SearchHandler{store: st}
}

// Search handles GET /search?type=user|poll&q=...
// Case-sensitive substring match: users by name or email, polls by
// title. No matches is a normal outcome and returns empty results.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("type")
	query := r.URL.Query().Get("q")

	switch kind {
	case "user":
		users, err := h.store.SearchUsers(r.Context(), query)
		if err != nil {
			slog.Error("failed to search users", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if users == nil {
			users = []models.User{}
		}
		middleware.JSONResponse(w, http.StatusOK, models.SearchResponse{
			Query: query,
			Users: users,
		})

	case "poll":
		polls, err := h.store.SearchPolls(r.Context(), query)
		if err != nil {
			slog.Error("failed to search polls", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if polls == nil {
			polls = []models.Poll{}
		}
		middleware.JSONResponse(w, http.StatusOK, models.SearchResponse{
			Query: query,
			Polls: polls,
		})

	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "type must be user or poll")
	}
}
