// Package strings provides string slice utilities shared across services.
package strings

import (
	"strings"
)

// DedupeAndTrim trims every element, drops empties, and removes duplicates
// while preserving first-seen order. Link id sets are normalized with this
// before validation so repeated ids cannot inflate coverage counts.
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}
