// SPDX-License-Identifier: MIT
// Package: cryptex/alphabet
//
// errors.go — the shared sentinel taxonomy for every cipher package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with Errorf (wraps via %w), so the
//     message reads "<Method>: <detail>: cryptex: <sentinel>".
//   • Ciphers MUST NOT panic on user input; option constructors (WithX)
//     may panic on nonsensical values.

package alphabet

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter indicates the input holds a symbol outside the
	// alphabet of a scheme that has no pass-through policy for it.
	ErrInvalidCharacter = errors.New("cryptex: invalid character")

	// ErrInvalidParameter indicates a scheme parameter is out of its domain
	// (rails < 2, chunk size < 1, Gronsfeld shift outside 0..25, ...).
	ErrInvalidParameter = errors.New("cryptex: invalid parameter")

	// ErrInvalidPermutation indicates a row/column permutation is not a
	// bijection on 1..N.
	ErrInvalidPermutation = errors.New("cryptex: invalid permutation")

	// ErrEmptyKeyword indicates a keyword-driven scheme received "".
	ErrEmptyKeyword = errors.New("cryptex: empty keyword")

	// ErrInvalidKeySquare indicates a key square of the wrong length, with
	// duplicates, or with symbols outside its fixed alphabet.
	ErrInvalidKeySquare = errors.New("cryptex: invalid key square")

	// ErrMalformedInput indicates ciphertext that does not follow the token
	// grammar or grid shape expected by a decipherment.
	ErrMalformedInput = errors.New("cryptex: malformed input")
)

// Errorf wraps a sentinel with the method name and a formatted detail.
// The result keeps err reachable for errors.Is.
//
// Example:
//
//	return alphabet.Errorf("RailFence", alphabet.ErrInvalidParameter, "rails=%d", n)
//	// RailFence: rails=1: cryptex: invalid parameter
func Errorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
