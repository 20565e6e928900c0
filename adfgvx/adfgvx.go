// SPDX-License-Identifier: MIT
// Package: cryptex/adfgvx
//
// adfgvx.go — the two-stage fractionating cipher.
//
// Stage 1 (substitution): every symbol becomes its (row, column) label pair
// in the key square, e.g. with square "PHQGIU MEAYLN ..." 'P' → "AA".
// Stage 2 (transposition): the pair stream goes through keyword Columnar
// transposition (ragged last row, transposition.NewColumnar).
//
// Decipherment runs the stages in reverse: Columnar.Decipher restores the
// pair stream from its length alone, then each pair is looked up.
//
// Input policy: ASCII letters (case-folded) and digits are enciphered,
// whitespace is skipped, any other rune fails with ErrInvalidCharacter.

package adfgvx

import (
	"strings"
	"unicode"

	"github.com/katalvlaran/cryptex/alphabet"
	"github.com/katalvlaran/cryptex/transposition"
)

// Cipher is an ADFGVX cipher bound to one key square and one keyword.
type Cipher struct {
	square   *KeySquare
	columnar transposition.Columnar
}

// New validates both keys before any text is processed.
//
// Errors:
//   - ErrInvalidKeySquare                  — see NewKeySquare.
//   - ErrEmptyKeyword, ErrInvalidCharacter — see transposition.NewColumnar.
func New(keySquare, keyword string) (Cipher, error) {
	sq, err := NewKeySquare(keySquare)
	if err != nil {
		return Cipher{}, err
	}
	col, err := transposition.NewColumnar(keyword)
	if err != nil {
		return Cipher{}, alphabet.Errorf("ADFGVX", err, "keyword")
	}

	return Cipher{square: sq, columnar: col}, nil
}

// Square returns the key square.
func (c Cipher) Square() *KeySquare { return c.square }

// Keyword returns the transposition keyword.
func (c Cipher) Keyword() string { return c.columnar.Keyword() }

// Encipher substitutes then transposes.
func (c Cipher) Encipher(text string) (string, error) {
	if c.square == nil {
		return "", alphabet.Errorf("ADFGVX", alphabet.ErrInvalidKeySquare, "zero value")
	}

	var pairs strings.Builder
	pairs.Grow(2 * len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		row, col, err := c.square.Coordinates(r)
		if err != nil {
			return "", alphabet.Errorf("ADFGVX", err, "encipher")
		}
		pairs.WriteByte(row)
		pairs.WriteByte(col)
	}

	return c.columnar.Encipher(pairs.String())
}

// Decipher undoes the transposition and maps each pair back to a symbol.
// The result is upper case without whitespace.
//
// Errors: ErrMalformedInput on odd length or a rune outside ADFGVX.
func (c Cipher) Decipher(text string) (string, error) {
	if c.square == nil {
		return "", alphabet.Errorf("ADFGVX", alphabet.ErrInvalidKeySquare, "zero value")
	}

	ct := []rune(strings.ToUpper(text))
	if len(ct)%2 != 0 {
		return "", alphabet.Errorf("ADFGVX", alphabet.ErrMalformedInput, "odd length %d", len(ct))
	}
	for _, r := range ct {
		if labelIndex(r) < 0 {
			return "", alphabet.Errorf("ADFGVX", alphabet.ErrMalformedInput, "rune %q outside %s", r, Labels)
		}
	}

	stream, err := c.columnar.Decipher(string(ct))
	if err != nil {
		return "", err
	}

	pairs := []rune(stream)
	out := make([]rune, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		sym, err := c.square.Symbol(pairs[i], pairs[i+1])
		if err != nil {
			return "", err
		}
		out = append(out, sym)
	}

	return string(out), nil
}
