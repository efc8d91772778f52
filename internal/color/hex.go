package color

import (
	"fmt"
	"strings"
)

// Sanitize removes the first "#" found in the string along with any
// surrounding whitespace.
//
// Only a single "#" is removed, so "##FFF" sanitizes to "#FFF" and fails the
// length check in ExpandToSix.
func Sanitize(raw string) string {
	return strings.TrimSpace(strings.Replace(raw, "#", "", 1))
}

// ExpandToSix returns the sanitized input as exactly six hex digits.
//
// Six-digit input is returned as is. Three-digit shorthand is expanded by
// doubling each digit, so "FC2" becomes "FFCC22". Any other length fails
// with ErrInvalidFormat; alpha forms ("FC2A", "FFCC22AA") are not accepted.
//
// ExpandToSix only checks the length; Parse rejects non-hex digits.
func ExpandToSix(raw string) (string, error) {
	hex := Sanitize(raw)

	switch len(hex) {
	case 6:
		return hex, nil
	case 3:
		r, g, b := hex[0:1], hex[1:2], hex[2:3]
		return r + r + g + g + b + b, nil
	default:
		return "", fmt.Errorf("%w: got %d digits in %q, expected 3 or 6 hex digits",
			ErrInvalidFormat, len(hex), raw)
	}
}

// Canonicalize formats a hex color string as "#RRGGBB" in uppercase.
//
// A "#" prefix is added when the string has none. The digits themselves are
// not validated or expanded; pass the result of ExpandToSix for a canonical
// six-digit form.
func Canonicalize(raw string) string {
	hex := strings.TrimSpace(raw)
	if !strings.Contains(hex, "#") {
		hex = "#" + hex
	}
	return strings.ToUpper(hex)
}

// isHexDigits reports whether every byte of s is 0-9, a-f or A-F.
func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
