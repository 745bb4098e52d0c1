// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pollcraft/pollcraft/auth"
	"github.com/pollcraft/pollcraft/middleware"
	"github.com/pollcraft/pollcraft/models"
	"github.com/pollcraft/pollcraft/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// SignUp handles POST /users
func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input, mirroring the sign-up form constraints
	fields := map[string]string{}
	if len(req.Name) < 4 || len(req.Name) > 20 {
		fields["name"] = "username must be 4-20 characters"
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") || len(req.Email) > 50 {
		fields["email"] = "a valid email is required"
	}
	if len(req.Password) < 8 || len(req.Password) > 50 {
		fields["password"] = "password must be 8-50 characters"
	}
	if len(fields) > 0 {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Name, req.Email, hash)
	if errors.Is(err, store.ErrDuplicate) {
		// Recoverable: the caller is told to retry with a different name
		middleware.ErrorResponse(w, http.StatusConflict, "That username or email is already taken")
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	slog.Info("user signed up", "user_id", user.ID, "name", user.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.SignUpResponse{
		UserID: user.ID,
		Name:   user.Name,
	})
}

// SignIn handles POST /sessions
func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name and password are required")
		return
	}

	user, err := h.store.UserByNameOrEmail(r.Context(), req.Name)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid information. Please try again.")
		return
	}
	if err != nil {
		slog.Error("failed to look up user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid information. Please try again.")
		return
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	if err := h.store.CreateSession(r.Context(), token, user.ID); err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	slog.Info("user signed in", "user_id", user.ID, "name", user.Name)

	middleware.JSONResponse(w, http.StatusOK, models.SignInResponse{
		SessionToken: token,
		UserID:       user.ID,
		Name:         user.Name,
	})
}

// SignOut handles DELETE /sessions
func (h *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(middleware.SessionHeader)
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session token is required")
		return
	}

	if err := h.store.DeleteSession(r.Context(), token); err != nil {
		slog.Error("failed to delete session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign out")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user)
}

// UpdateDemographics handles PUT /users/me/demographics
func (h *UserHandler) UpdateDemographics(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	var req models.DemographicsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	fields := map[string]string{}
	if req.Age < 0 || req.Age > 120 {
		fields["age"] = "age must be between 0 and 120"
	}
	if !models.ValidRace(req.Race) {
		fields["race"] = "race must be one of the offered options"
	}
	if !models.ValidGender(req.Gender) {
		fields["gender"] = "gender must be one of the offered options"
	}
	if !models.ValidEducation(req.Education) {
		fields["education"] = "education must be one of the offered options"
	}
	if len(fields) > 0 {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	err := h.store.UpdateDemographics(r.Context(), user.ID, req.Age, req.Race, req.Gender, req.Education)
	if err != nil {
		slog.Error("failed to update demographics", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	slog.Info("demographics updated", "user_id", user.ID)

	updated, err := h.store.UserByID(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to reload user", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, updated)
}

// GetUserPolls handles GET /users/{name}/polls
func (h *UserHandler) GetUserPolls(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	user, err := h.store.UserByName(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to look up user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	polls, err := h.store.PollsForUser(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to query polls", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if polls == nil {
		polls = []models.Poll{}
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}
