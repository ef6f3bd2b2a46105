package utils

import "strings"

// OptionalString trims s and returns nil when nothing is left. Used for
// partial updates, where nil means "leave unchanged".
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// OptionalBool parses a checkbox or select value. Empty means unchanged.
func OptionalBool(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "1", "yes":
		b := true
		return &b
	case "false", "off", "0", "no":
		b := false
		return &b
	}
	return nil
}
