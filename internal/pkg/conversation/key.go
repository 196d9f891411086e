package conversation

import "strings"

const separator = "_"

// Key derives the stable identifier of a direct-message thread between two
// users. The pair is sorted lexicographically before joining, so
// Key(a, b) == Key(b, a); a self-thread (a == b) is still deterministic.
func Key(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + separator + b
}

// Participants splits a key back into its two user ids.
func Participants(key string) (string, string, bool) {
	a, b, ok := strings.Cut(key, separator)
	if !ok || a == "" || b == "" {
		return "", "", false
	}
	return a, b, true
}
