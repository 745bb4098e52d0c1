// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Error("hash must not equal the plaintext password")
	}

	if err := CheckPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("CheckPassword rejected the right password: %v", err)
	}

	err = CheckPassword(hash, "wrong password")
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("CheckPassword on wrong password = %v, want ErrWrongPassword", err)
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (per-hash salt)")
	}
}

func TestGenerateSessionToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateSessionToken()
		if err != nil {
			t.Fatalf("GenerateSessionToken failed: %v", err)
		}
		if token == "" {
			t.Fatal("expected non-empty token")
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true

		for _, c := range token {
			if c == '+' || c == '/' || c == '=' {
				t.Errorf("token %q contains non-URL-safe character %q", token, c)
			}
		}
	}
}
