package utils

import (
	"strconv"
	"strings"
)

// ParsePositiveInt parses s, falling back to def for blanks, garbage and
// values below 1.
func ParsePositiveInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// OptionalInt parses s, returning nil when it is blank or not a number.
func OptionalInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// SafeRedirect keeps post-login redirects on this site. Anything that is not
// a local absolute path becomes fallback.
func SafeRedirect(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	return next
}
