// SPDX-License-Identifier: MIT
// Package: cryptex/alphabet
//
// alphabet.go — letter ↔ index mapping over the 26-letter Latin alphabet.
//
// Contract:
//   - Only ASCII letters 'A'..'Z' and 'a'..'z' are letters here; accented
//     and non-Latin runes are "non-letters" for every scheme.
//   - Case is carried separately from the index so shifting helpers can
//     restore it (Shift, Mirror).
//
// Complexity: every helper is O(1).

package alphabet

// Size is the number of letters in the working alphabet.
const Size = 26

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// IsUpper reports whether r is an upper-case ASCII letter.
func IsUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// LetterIndex maps 'A'..'Z' (case-insensitive) to 0..25.
// Returns ErrInvalidCharacter for anything that is not an ASCII letter.
func LetterIndex(r rune) (int, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), nil
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), nil
	default:
		return 0, Errorf("LetterIndex", ErrInvalidCharacter, "%q", r)
	}
}

// Letter returns the letter at index idx (reduced mod 26), in upper or
// lower case.
func Letter(idx int, upper bool) rune {
	idx = Mod(idx, Size)
	if upper {
		return rune('A' + idx)
	}

	return rune('a' + idx)
}

// Shift moves a letter k positions forward (k may be negative), keeping its
// case. Non-letters are returned unchanged.
func Shift(r rune, k int) rune {
	idx, err := LetterIndex(r)
	if err != nil {
		return r
	}

	return Letter(idx+k, IsUpper(r))
}

// Mirror maps the letter at index i to the letter at 25-i, keeping case.
// Non-letters are returned unchanged.
func Mirror(r rune) rune {
	idx, err := LetterIndex(r)
	if err != nil {
		return r
	}

	return Letter(Size-1-idx, IsUpper(r))
}

// Mod is the non-negative remainder of a/m (m > 0).
func Mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}

	return a
}
