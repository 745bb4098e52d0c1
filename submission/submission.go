// Copyright (c) 2026 Pollcraft Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package submission is the codec between an open-ended form submission
// and the flat pair of comma-joined strings it is stored as. Encode and
// Decode are intentionally symmetric and intentionally unescaped: content
// containing a comma does not survive the round trip, a documented
// limitation of the storage format.
package submission

import "strings"

// Pair is one answered question: the field key the form posted and the
// value the respondent entered.
type Pair struct {
	Field string
	Value string
}

// Encode flattens a submission into two parallel comma-joined strings,
// preserving the order the pairs were delivered in. That order is
// whatever the transport handed over; it is not guaranteed to match the
// poll's question order and nothing downstream may assume it does.
//
// A comma inside any field or value is indistinguishable from the
// delimiter after encoding, so such content does not round-trip. This
// limitation is deliberate; see Decode.
func Encode(pairs []Pair) (fields, values string) {
	keys := make([]string, 0, len(pairs))
	vals := make([]string, 0, len(pairs))
	for _, p := range pairs {
		keys = append(keys, p.Field)
		vals = append(vals, p.Value)
	}
	return strings.Join(keys, ","), strings.Join(vals, ",")
}

// Decode splits both strings on commas and zips them positionally. If
// the two sides disagree in length (possible only when the stored
// strings were not produced by Encode, or when encoded content contained
// commas), the pairing is truncated to the shorter side rather than
// failing. Empty inputs decode to nil.
func Decode(fields, values string) []Pair {
	if fields == "" && values == "" {
		return nil
	}

	keys := strings.Split(fields, ",")
	vals := strings.Split(values, ",")

	n := len(keys)
	if len(vals) < n {
		n = len(vals)
	}

	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{Field: keys[i], Value: vals[i]})
	}
	return pairs
}

// JoinChoices flattens a question's option list into its stored form.
// The same comma convention (and the same embedded-comma caveat) as
// Encode applies.
func JoinChoices(choices []string) string {
	return strings.Join(choices, ",")
}

// SplitChoices decodes a stored option list. An empty string means the
// question has no options and yields nil.
func SplitChoices(stored string) []string {
	if stored == "" {
		return nil
	}
	return strings.Split(stored, ",")
}
