// Package ascii holds the whitespace rules applied to input lines.
//
// Besides the usual blanks, the file, group, record and unit separators
// (0x1C to 0x1F) count as whitespace.
package ascii

import (
	"strings"
	"unicode"
)

// IsSpace reports whether r is whitespace.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// TrimSpace returns s without its leading and trailing whitespace.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// Fields splits s around runs of whitespace.
func Fields(s string) []string {
	return strings.FieldsFunc(s, IsSpace)
}
