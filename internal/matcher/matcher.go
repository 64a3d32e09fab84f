// Package matcher filters key texts with the pattern syntax shared by the
// hmapgen sub-commands.
package matcher

import "strings"

// Match reports whether key satisfies pattern. "*" matches everything, an
// empty pattern matches nothing, a trailing "*" is optional and anything else
// is a prefix.
func Match(pattern, key string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(key, strings.TrimSuffix(pattern, "*"))
}

// MatchAny reports whether key satisfies any of the comma separated patterns.
// An empty list matches everything.
func MatchAny(patterns, key string) bool {
	if strings.TrimSpace(patterns) == "" {
		return true
	}
	for _, p := range strings.Split(patterns, ",") {
		if Match(strings.TrimSpace(p), key) {
			return true
		}
	}
	return false
}
