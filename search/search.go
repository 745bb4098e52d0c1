// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package search implements the shared substring scan used by both
// user search and poll search.
package search

import "strings"

// Filter returns the items whose key contains query as a case-sensitive
// substring, in their original order. An empty query matches every item.
// The scan is linear; there is no ranking and no pagination.
func Filter[T any](items []T, query string, key func(T) string) []T {
	matches := []T{}
	for _, item := range items {
		if strings.Contains(key(item), query) {
			matches = append(matches, item)
		}
	}
	return matches
}
