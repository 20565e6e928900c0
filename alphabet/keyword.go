// SPDX-License-Identifier: MIT
// Package: cryptex/alphabet
//
// keyword.go — keyword validation and keyword → column order ranking.
//
// A column order is read as: order[k] is the original column index that is
// read k-th. For "RAT" the ranks are A(1) R(0) T(2), so the order is [1 0 2].
// Ties between repeated letters are broken left-to-right (stable sort), so
// "BAA" yields [1 2 0].

package alphabet

import (
	"sort"
	"unicode"
)

// ValidateKeyword checks that kw is non-empty and made of ASCII letters.
//
// Errors:
//   - ErrEmptyKeyword      — kw == "".
//   - ErrInvalidCharacter  — kw contains a non-letter.
func ValidateKeyword(kw string) error {
	if kw == "" {
		return ErrEmptyKeyword
	}
	for _, r := range kw {
		if !IsLetter(r) {
			return Errorf("ValidateKeyword", ErrInvalidCharacter, "keyword %q has %q", kw, r)
		}
	}

	return nil
}

// KeywordColumnOrder ranks the letters of keyword alphabetically
// (case-insensitive, stable on ties) and returns the 0-based column indices
// in reading order.
//
// Errors: ErrEmptyKeyword, ErrInvalidCharacter (see ValidateKeyword).
// Complexity: O(k log k) for a keyword of length k.
func KeywordColumnOrder(keyword string) ([]int, error) {
	if err := ValidateKeyword(keyword); err != nil {
		return nil, err
	}

	letters := []rune(keyword)
	order := make([]int, len(letters))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return unicode.ToUpper(letters[order[a]]) < unicode.ToUpper(letters[order[b]])
	})

	return order, nil
}

// KeywordShifts turns keyword letters into Vigenère shifts (A=0 .. Z=25).
// Errors: ErrEmptyKeyword, ErrInvalidCharacter.
func KeywordShifts(keyword string) ([]int, error) {
	if err := ValidateKeyword(keyword); err != nil {
		return nil, err
	}

	shifts := make([]int, 0, len(keyword))
	for _, r := range keyword {
		idx, _ := LetterIndex(r) // validated above
		shifts = append(shifts, idx)
	}

	return shifts, nil
}
