package domain

import "strings"

// PatternSeparator separates the package name from its range inside a pattern.
const PatternSeparator = "@"

// JoinPattern builds a "name@range" pattern.
func JoinPattern(name, rng string) string {
	return name + PatternSeparator + rng
}

// PatternName returns the package name portion of a pattern.
// Scoped names keep their leading "@" (e.g. "@scope/pkg@1.0.0" yields "@scope/pkg").
func PatternName(pattern string) string {
	name, _ := splitPattern(pattern)
	return name
}

// PatternRange returns the range portion of a pattern, or "" if the pattern has none.
func PatternRange(pattern string) string {
	_, rng := splitPattern(pattern)
	return rng
}

func splitPattern(pattern string) (string, string) {
	offset := 0
	if strings.HasPrefix(pattern, PatternSeparator) {
		offset = 1
	}
	idx := strings.Index(pattern[offset:], PatternSeparator)
	if idx < 0 {
		return pattern, ""
	}
	idx += offset
	return pattern[:idx], pattern[idx+1:]
}
