package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeHeader normalizes a header or synonym for comparison.
// The normalization pipeline:
// 1. Unicode NFKC (full-width letters and digits fold to ASCII).
// 2. Strip whitespace and underscores.
// 3. Case-fold to lower.
func NormalizeHeader(s string) string {
	s = norm.NFKC.String(s)

	var result strings.Builder

	result.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// isSeparator returns true for runes ignored by NormalizeHeader.
func isSeparator(r rune) bool {
	return r == '_' || unicode.IsSpace(r)
}
