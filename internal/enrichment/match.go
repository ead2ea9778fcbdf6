// Package enrichment turns sparse lead attributes into structured sales
// context. Everything here is pure: no I/O, no clock, no randomness.
package enrichment

import "strings"

// rule pairs a keyword group with the value it selects.
type rule[T any] struct {
	keywords []string
	value    T
}

// firstMatch walks rules top to bottom and returns the value of the first
// rule with a keyword contained in text. Matching is case-insensitive.
func firstMatch[T any](text string, rules []rule[T], fallback T) T {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.value
			}
		}
	}
	return fallback
}
