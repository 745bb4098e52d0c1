// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package auth handles password hashing (bcrypt) and session token
// generation.
package auth
