package logging

import (
	"regexp"
	"strings"
)

// redactor redacts sensitive values in log key-value pairs. The access
// token must never reach the log file.
type redactor struct {
	sensitiveWords map[string]bool
}

// newRedactor creates a new redactor with the default sensitive key set.
func newRedactor() *redactor {
	words := []string{"secret", "password", "token", "key", "auth", "authorization", "credential"}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return &redactor{
		sensitiveWords: m,
	}
}

// redact walks a flattened key-value slice and replaces values of
// sensitive keys with "[REDACTED]". Returns a new slice; the original is
// not modified.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	result := make([]any, len(pairs))
	copy(result, pairs)
	for i := 0; i+1 < len(result); i += 2 {
		key, ok := result[i].(string)
		if !ok {
			continue
		}
		if r.isSensitive(key) {
			result[i+1] = "[REDACTED]"
		}
	}
	return result
}

// isSensitive returns true if the key contains any sensitive word as a
// separate segment. Segments are split by non-alphanumeric characters.
func (r *redactor) isSensitive(key string) bool {
	key = strings.ToLower(key)
	for _, part := range splitByNonAlphanumeric(key) {
		if r.sensitiveWords[part] {
			return true
		}
	}
	return false
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

func splitByNonAlphanumeric(s string) []string {
	return nonAlphanumeric.Split(s, -1)
}
