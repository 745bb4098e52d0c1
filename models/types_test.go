// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewQuestionDerivesType(t *testing.T) {
	tests := []struct {
		name        string
		choices     []string
		wantType    string
		wantChoices []string
	}{
		{
			name:        "nil choices means free response",
			choices:     nil,
			wantType:    TypeResponse,
			wantChoices: nil,
		},
		{
			name:        "empty choices means free response",
			choices:     []string{},
			wantType:    TypeResponse,
			wantChoices: nil,
		},
		{
			name:        "one choice is enough for a choice question",
			choices:     []string{"Yes"},
			wantType:    TypeChoice,
			wantChoices: []string{"Yes"},
		},
		{
			name:        "choices keep order and duplicates",
			choices:     []string{"Blue", "Red", "Blue", " Red "},
			wantType:    TypeChoice,
			wantChoices: []string{"Blue", "Red", "Blue", " Red "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuestion("poll-1", "Favorite color?", tt.choices)
			if err != nil {
				t.Fatalf("NewQuestion failed: %v", err)
			}
			if q.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", q.Type, tt.wantType)
			}
			if !reflect.DeepEqual(q.Choices, tt.wantChoices) {
				t.Errorf("Choices = %v, want %v", q.Choices, tt.wantChoices)
			}
			if q.ID == "" {
				t.Error("expected a generated question id")
			}
			if q.PollID != "poll-1" {
				t.Errorf("PollID = %q, want poll-1", q.PollID)
			}
		})
	}
}

func TestNewQuestionEmptyText(t *testing.T) {
	_, err := NewQuestion("poll-1", "", []string{"Red"})
	if !errors.Is(err, ErrEmptyText) {
		t.Errorf("NewQuestion with empty text = %v, want ErrEmptyText", err)
	}
}

func TestNewPollDefaults(t *testing.T) {
	poll := NewPoll("Unit Test Poll", "user-1")
	if poll.Published {
		t.Error("new polls must start unpublished")
	}
	if poll.ID == "" {
		t.Error("expected a generated poll id")
	}
	if poll.Title != "Unit Test Poll" || poll.UserID != "user-1" {
		t.Errorf("unexpected poll fields: %+v", poll)
	}
}

func TestDemographicValidators(t *testing.T) {
	if !ValidRace("Asian") || ValidRace("Martian") {
		t.Error("ValidRace accepts the offered list and nothing else")
	}
	if !ValidGender("Other") || ValidGender("Unlisted") {
		t.Error("ValidGender accepts the offered list and nothing else")
	}
	if !ValidEducation("Technical School") || ValidEducation("Kindergarten") {
		t.Error("ValidEducation accepts the offered list and nothing else")
	}
	// empty means "not provided" and is always acceptable
	if !ValidRace("") || !ValidGender("") || !ValidEducation("") {
		t.Error("empty demographic values must be accepted")
	}
}
