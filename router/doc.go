// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package router wires the route table. Routes use Go 1.22+ method
// patterns; owner-only and account routes are wrapped in
// middleware.RequireUser, respondent routes stay public.
package router
