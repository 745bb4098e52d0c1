// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/pollcraft/pollcraft/handlers"
	"github.com/pollcraft/pollcraft/middleware"
	"github.com/pollcraft/pollcraft/store"
)

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(st)
	pollHandler := handlers.NewPollHandler(st)
	responseHandler := handlers.NewResponseHandler(st)
	searchHandler := handlers.NewSearchHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts and sessions
	mux.HandleFunc("POST /users", middleware.WithLogging(userHandler.SignUp))
	mux.HandleFunc("POST /sessions", middleware.WithLogging(userHandler.SignIn))
	mux.HandleFunc("DELETE /sessions", middleware.WithLogging(userHandler.SignOut))
	mux.HandleFunc("GET /users/me", middleware.WithLogging(middleware.RequireUser(st, userHandler.GetMe)))
	mux.HandleFunc("PUT /users/me/demographics", middleware.WithLogging(middleware.RequireUser(st, userHandler.UpdateDemographics)))
	mux.HandleFunc("GET /users/{name}/polls", middleware.WithLogging(middleware.RequireUser(st, userHandler.GetUserPolls)))

	// Poll definition (owner operations)
	mux.HandleFunc("POST /polls", middleware.WithLogging(middleware.RequireUser(st, pollHandler.CreatePoll)))
	mux.HandleFunc("POST /polls/{id}/publish", middleware.WithLogging(middleware.RequireUser(st, pollHandler.PublishPoll)))
	mux.HandleFunc("POST /polls/{id}/questions", middleware.WithLogging(middleware.RequireUser(st, pollHandler.AddQuestion)))
	mux.HandleFunc("GET /polls/{id}/responses", middleware.WithLogging(middleware.RequireUser(st, responseHandler.ListResponses)))

	// Respondent operations (public, anonymous)
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("POST /polls/{id}/responses", middleware.WithLogging(responseHandler.SubmitResponse))
	mux.HandleFunc("GET /polls/{id}/summary", middleware.WithLogging(responseHandler.GetSummary))

	// Search
	mux.HandleFunc("GET /search", middleware.WithLogging(middleware.RequireUser(st, searchHandler.Search)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollcraft API v1"))
	})

	return mux
}
