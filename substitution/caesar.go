package substitution

import (
	"strings"

	"github.com/katalvlaran/cryptex/alphabet"
)

// rot13Shift is the fixed shift of ROT13.
const rot13Shift = 13

// Caesar shifts every letter by a fixed amount.
//
// Encipher: letter i → (i+shift) mod 26.
// Decipher: letter i → (i-shift) mod 26.
type Caesar struct {
	shift int
}

// NewCaesar returns a Caesar cipher. Any integer shift is accepted and
// reduced mod 26, so -1 and 25 are the same cipher.
func NewCaesar(shift int) Caesar {
	return Caesar{shift: alphabet.Mod(shift, alphabet.Size)}
}

// ROT13 returns the Caesar cipher with shift 13; it is its own inverse.
func ROT13() Caesar {
	return NewCaesar(rot13Shift)
}

// Shift reports the normalised shift in 0..25.
func (c Caesar) Shift() int { return c.shift }

// Encipher shifts letters forward. It never fails.
func (c Caesar) Encipher(text string) (string, error) {
	return shiftAll(text, c.shift), nil
}

// Decipher shifts letters backward. It never fails.
func (c Caesar) Decipher(text string) (string, error) {
	return shiftAll(text, -c.shift), nil
}

// shiftAll applies a constant shift to every letter of text.
func shiftAll(text string, k int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(alphabet.Shift(r, k))
	}

	return b.String()
}
