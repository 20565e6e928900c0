package substitution

import (
	"strings"

	"github.com/katalvlaran/cryptex/alphabet"
)

// maxGronsfeldShift bounds every digit of a Gronsfeld key.
const maxGronsfeldShift = alphabet.Size - 1

// Polyalphabetic shifts the p-th letter of the text by key[p mod len(key)].
// Only letters consume a key position.
//
// Vigenère and Gronsfeld differ only in how the key is written (letters vs
// numbers); both resolve to this type.
type Polyalphabetic struct {
	key []int
}

// NewVigenere builds a Vigenère cipher from an alphabetic keyword
// (A=0 .. Z=25, case-insensitive).
//
// Errors:
//   - ErrEmptyKeyword      — keyword == "".
//   - ErrInvalidCharacter  — keyword contains a non-letter.
func NewVigenere(keyword string) (Polyalphabetic, error) {
	key, err := alphabet.KeywordShifts(keyword)
	if err != nil {
		return Polyalphabetic{}, err
	}

	return Polyalphabetic{key: key}, nil
}

// NewGronsfeld builds a Gronsfeld cipher from numeric shifts.
// Each shift must lie in 0..25.
//
// Errors:
//   - ErrEmptyKeyword      — len(key) == 0.
//   - ErrInvalidParameter  — a shift is outside 0..25.
func NewGronsfeld(key []int) (Polyalphabetic, error) {
	if len(key) == 0 {
		return Polyalphabetic{}, alphabet.Errorf("Gronsfeld", alphabet.ErrEmptyKeyword, "no shifts")
	}
	cp := make([]int, len(key))
	for i, k := range key {
		if k < 0 || k > maxGronsfeldShift {
			return Polyalphabetic{}, alphabet.Errorf("Gronsfeld", alphabet.ErrInvalidParameter, "shift[%d]=%d", i, k)
		}
		cp[i] = k
	}

	return Polyalphabetic{key: cp}, nil
}

// Key returns a copy of the shift vector.
func (p Polyalphabetic) Key() []int {
	out := make([]int, len(p.key))
	copy(out, p.key)

	return out
}

// Encipher adds the key stream to the letters of text.
func (p Polyalphabetic) Encipher(text string) (string, error) {
	return p.apply(text, 1), nil
}

// Decipher subtracts the key stream from the letters of text.
func (p Polyalphabetic) Decipher(text string) (string, error) {
	return p.apply(text, -1), nil
}

// apply walks text once; sign selects encipher (+1) or decipher (-1).
func (p Polyalphabetic) apply(text string, sign int) string {
	if len(p.key) == 0 {
		return text
	}

	var (
		b   strings.Builder
		pos int
	)
	b.Grow(len(text))
	for _, r := range text {
		if !alphabet.IsLetter(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(alphabet.Shift(r, sign*p.key[pos%len(p.key)]))
		pos++
	}

	return b.String()
}
