// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pollcraft API.

# Handler Types

Each handler is a struct holding the shared store:

  - UserHandler: accounts, sessions, demographics
  - PollHandler: poll creation, lookup, publishing, question definition
  - ResponseHandler: anonymous submissions, decoded listings, summaries
  - SearchHandler: substring search over users and polls

Handlers are created via constructor functions that accept *store.Store:

	pollHandler := handlers.NewPollHandler(st)

# Account Flow

	POST /users              → SignUp (409 when the name is taken)
	POST /sessions           → SignIn (returns session_token)
	DELETE /sessions         → SignOut
	GET /users/me            → GetMe
	PUT /users/me/demographics → UpdateDemographics
	GET /users/{name}/polls  → GetUserPolls

Authenticated routes require the X-Session-Token header; the middleware
resolves it into the request context before the handler runs.

# Poll Definition

	POST /polls                  → CreatePoll (published=false)
	POST /polls/{id}/publish     → PublishPoll (owner only)
	POST /polls/{id}/questions   → AddQuestion (owner only)

AddQuestion derives the question type: a non-empty choices string makes
a choice question, an empty one a free-response question. The choices
string is split on literal commas only.

# Response Collection

	GET /polls/{id}            → GetPoll (poll + decoded questions)
	POST /polls/{id}/responses → SubmitResponse (anonymous)
	GET /polls/{id}/responses  → ListResponses (owner only, decoded)
	GET /polls/{id}/summary    → GetSummary (per-field answer tallies)

A submission is an open mapping of field keys to answers. It is encoded
into two parallel comma-joined strings for storage and decoded back for
listing and aggregation; keys are not checked against the poll's
question ids.

# Search

	GET /search?type=user|poll&q=... → Search

Case-sensitive substring match on user name/email or poll title. An
empty query matches everything.
*/
package handlers
