package text

import (
	"strings"
	"unicode"
)

// Thai tone marks (mai ek, mai tho, mai tri, mai chattawa).
// They carry no signal for keyword matching and vary wildly in casual typing,
// so normalization drops them entirely.
func isToneMark(r rune) bool {
	return r >= '่' && r <= '๋'
}

// Normalize lowercases the input, drops Thai tone marks, replaces punctuation
// and symbols with spaces and collapses runs of whitespace.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	lowered := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case isToneMark(r):
			// dropped
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
