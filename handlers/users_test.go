// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pollcraft/pollcraft/middleware"
	"github.com/pollcraft/pollcraft/models"
	"github.com/pollcraft/pollcraft/store"
	"github.com/pollcraft/pollcraft/testutil"
)

func TestSignUp(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewUserHandler(store.New(conn))

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name: "valid sign up",
			requestBody: models.SignUpRequest{
				Name:     "alice",
				Email:    "alice@example.com",
				Password: "a decent password",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "name too short",
			requestBody: models.SignUpRequest{
				Name:     "al",
				Email:    "al@example.com",
				Password: "a decent password",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid email",
			requestBody: models.SignUpRequest{
				Name:     "bobby",
				Email:    "not-an-email",
				Password: "a decent password",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			requestBody: models.SignUpRequest{
				Name:     "carol",
				Email:    "carol@example.com",
				Password: "short",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "not json at all",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/users", tt.requestBody, nil)
			w := httptest.NewRecorder()
			handler.SignUp(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestSignUpDuplicateName(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewUserHandler(store.New(conn))

	body := models.SignUpRequest{
		Name:     "duplicated",
		Email:    "first@example.com",
		Password: "a decent password",
	}
	w := httptest.NewRecorder()
	handler.SignUp(w, testutil.MakeRequest("POST", "/users", body, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Same name, different email: the user is told to pick another name
	body.Email = "second@example.com"
	w = httptest.NewRecorder()
	handler.SignUp(w, testutil.MakeRequest("POST", "/users", body, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestSignIn(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewUserHandler(store.New(conn))

	testutil.CreateTestUser(t, conn, "dave", "dave@example.com", "dave's password")

	tests := []struct {
		name           string
		requestBody    models.SignInRequest
		expectedStatus int
	}{
		{
			name:           "sign in by username",
			requestBody:    models.SignInRequest{Name: "dave", Password: "dave's password"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "sign in by email",
			requestBody:    models.SignInRequest{Name: "dave@example.com", Password: "dave's password"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong password",
			requestBody:    models.SignInRequest{Name: "dave", Password: "guessing"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown account",
			requestBody:    models.SignInRequest{Name: "nobody", Password: "whatever123"},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/sessions", tt.requestBody, nil)
			w := httptest.NewRecorder()
			handler.SignIn(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.SignInResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.SessionToken == "" {
					t.Error("expected a session token")
				}
				if resp.Name != "dave" {
					t.Errorf("Name = %q, want dave", resp.Name)
				}
			}
		})
	}
}

func TestSignOut(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn)
	handler := NewUserHandler(st)

	_, token := testutil.CreateTestUser(t, conn, "erin", "erin@example.com", "erin's password")

	req := testutil.MakeRequest("DELETE", "/sessions", nil, map[string]string{
		middleware.SessionHeader: token,
	})
	w := httptest.NewRecorder()
	handler.SignOut(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	if _, err := st.UserForSession(req.Context(), token); err == nil {
		t.Error("session should be gone after sign-out")
	}
}

func TestUpdateDemographics(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewUserHandler(store.New(conn))

	user, _ := testutil.CreateTestUser(t, conn, "frank", "frank@example.com", "frank's password")

	tests := []struct {
		name           string
		requestBody    models.DemographicsRequest
		expectedStatus int
	}{
		{
			name: "valid update",
			requestBody: models.DemographicsRequest{
				Age:       29,
				Race:      "White",
				Gender:    "Male",
				Education: "College (undergraduate)",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "age out of range",
			requestBody: models.DemographicsRequest{
				Age:       130,
				Race:      "White",
				Gender:    "Male",
				Education: "Other",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "race not in the offered list",
			requestBody: models.DemographicsRequest{
				Age:       29,
				Race:      "Klingon",
				Gender:    "Male",
				Education: "Other",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PUT", "/users/me/demographics", tt.requestBody, nil)
			req = req.WithContext(middleware.WithUser(req.Context(), user))
			w := httptest.NewRecorder()
			handler.UpdateDemographics(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.User
				testutil.AssertJSON(t, w, &resp)
				if resp.Age != tt.requestBody.Age || resp.Race != tt.requestBody.Race {
					t.Errorf("demographics not applied: %+v", resp)
				}
			}
		})
	}
}

func TestGetUserPolls(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewUserHandler(store.New(conn))

	owner, _ := testutil.CreateTestUser(t, conn, "grace", "grace@example.com", "grace's password")
	viewer, _ := testutil.CreateTestUser(t, conn, "heidi", "heidi@example.com", "heidi's password")
	testutil.CreateTestPoll(t, conn, "Grace's Poll", owner.ID)

	req := testutil.MakeRequest("GET", "/users/grace/polls", nil, nil)
	req = req.WithContext(middleware.WithUser(req.Context(), viewer))
	req.SetPathValue("name", "grace")
	w := httptest.NewRecorder()
	handler.GetUserPolls(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var polls []models.Poll
	testutil.AssertJSON(t, w, &polls)
	if len(polls) != 1 || polls[0].Title != "Grace's Poll" {
		t.Errorf("unexpected polls: %+v", polls)
	}

	// unknown user is a 404, not a crash
	req = testutil.MakeRequest("GET", "/users/nobody/polls", nil, nil)
	req = req.WithContext(middleware.WithUser(req.Context(), viewer))
	req.SetPathValue("name", "nobody")
	w = httptest.NewRecorder()
	handler.GetUserPolls(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
