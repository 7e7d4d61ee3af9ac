package catalog

import "strings"

// SanitizeName derives a binding-safe name from a capability's original
// name: every character outside [A-Za-z0-9_] becomes an underscore. The
// mapping is idempotent. Distinct names may sanitize to the same binding
// name; within one namespace the later capability silently overwrites the
// earlier.
func SanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return r
		case r >= 'a' && r <= 'z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
