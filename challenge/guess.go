package challenge

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeAnswer folds case, strips diacritics and collapses whitespace:
//
//	"  Le   Marais " → "le marais"
//	"Vigenère"       → "vigenere"
func NormalizeAnswer(s string) string {
	// transform.Chain keeps state, so each call gets its own.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	return strings.Join(strings.Fields(cases.Fold().String(stripped)), " ")
}

// CheckGuess reports whether guess matches the answer of c after
// NormalizeAnswer on both sides.
func CheckGuess(c Challenge, guess string) bool {
	return NormalizeAnswer(guess) == NormalizeAnswer(c.Answer)
}
