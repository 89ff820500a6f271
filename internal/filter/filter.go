// Package filter implements the list refinements shared by every table
// page: case-insensitive text search, tab predicates, and tab counts.
package filter

import "strings"

// MatchText reports whether the query is a case-insensitive substring of
// any of the fields. An empty query matches everything.
func MatchText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Apply returns the rows that satisfy every predicate, preserving order.
func Apply[T any](rows []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		keep := true
		for _, p := range preds {
			if !p(r) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

// CountBy returns how many rows map to each key. Used for the count
// badges on tab bars.
func CountBy[T any](rows []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[key(r)]++
	}
	return counts
}
