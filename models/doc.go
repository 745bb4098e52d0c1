// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SignUpRequest: name, email, password
  - SignInRequest: name (username or email), password
  - DemographicsRequest: age, race, gender, education
  - CreatePollRequest: title
  - AddQuestionRequest: text, choices (raw comma-joined string)
  - SubmitResponseRequest: answers (map[string]string)

# Response Types

Types for JSON responses:

  - SignUpResponse: user_id, name
  - SignInResponse: session_token, user_id, name
  - CreatePollResponse: poll_id
  - AddQuestionResponse: question_id, type
  - SubmitResponseResponse: response_id
  - PollView / QuestionView: poll with decoded questions
  - ResponseView: one decoded submission
  - SummaryResponse / QuestionTally: per-field answer counts
  - SearchResponse: matched users or polls
  - ErrorResponse: error, message, optional per-field messages

# Domain Types

Internal data structures:

  - User: account identity plus optional demographics
  - Poll: title, owner, published flag
  - Question: text plus derived type and choice list
  - PollResponse: one anonymous submission in encoded form

# Question Typing

NewQuestion is the only way a question type is assigned: a non-empty
choice list yields TypeChoice, anything else TypeResponse. Callers never
pass a type, so "choice question without options" cannot exist.

# Constants

Question types:

	TypeChoice   = "choice"
	TypeResponse = "response"

Demographic select values are in Races, Genders, and Educations, with
ValidRace, ValidGender, and ValidEducation to check submitted values.
*/
package models
