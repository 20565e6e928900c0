package composite

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/cryptex/alphabet"
	"github.com/katalvlaran/cryptex/transposition"
)

const (
	// DefaultBinaryKeyword is the transposition keyword of the reference
	// Binary-Columnar puzzle.
	DefaultBinaryKeyword = "FINAL"
	// minBinaryWidth is the zero-padded width of every converted number.
	minBinaryWidth = 8
	// spaceMarker replaces spaces so they stay visible after transposition.
	spaceMarker = '_'
)

// BinaryDigits rewrites every maximal run of ASCII digits as the binary
// form of its value (zero-padded to at least 8 bits) and every space as '_'.
// Other runes pass through.
//
//	"48.8566° N" → "00110000.10000101110110°_N"
//
// Decipher reads every maximal run of '0'/'1' as one binary number, so
// leading zeros of the original number are not restored ("007" → "7"), and
// every '_' becomes a space.
type BinaryDigits struct{}

// Encipher converts digit runs and spaces.
// Errors: ErrInvalidParameter if a digit run overflows 64 bits.
func (BinaryDigits) Encipher(text string) (string, error) {
	src := []rune(text)

	var b strings.Builder
	for i := 0; i < len(src); {
		r := src[i]
		switch {
		case isDigit(r):
			j := i
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			n, err := strconv.ParseUint(string(src[i:j]), 10, 64)
			if err != nil {
				return "", alphabet.Errorf("BinaryDigits", alphabet.ErrInvalidParameter, "number %q", string(src[i:j]))
			}
			bits := strconv.FormatUint(n, 2)
			if pad := minBinaryWidth - len(bits); pad > 0 {
				b.WriteString(strings.Repeat("0", pad))
			}
			b.WriteString(bits)
			i = j
		case r == ' ':
			b.WriteRune(spaceMarker)
			i++
		default:
			b.WriteRune(r)
			i++
		}
	}

	return b.String(), nil
}

// Decipher converts binary runs back to decimal and '_' back to spaces.
// Errors: ErrMalformedInput if a binary run overflows 64 bits.
func (BinaryDigits) Decipher(text string) (string, error) {
	src := []rune(text)

	var b strings.Builder
	for i := 0; i < len(src); {
		r := src[i]
		switch {
		case r == '0' || r == '1':
			j := i
			for j < len(src) && (src[j] == '0' || src[j] == '1') {
				j++
			}
			n, err := strconv.ParseUint(string(src[i:j]), 2, 64)
			if err != nil {
				return "", alphabet.Errorf("BinaryDigits", alphabet.ErrMalformedInput, "run %q", string(src[i:j]))
			}
			b.WriteString(strconv.FormatUint(n, 10))
			i = j
		case r == spaceMarker:
			b.WriteRune(' ')
			i++
		default:
			b.WriteRune(r)
			i++
		}
	}

	return b.String(), nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// NewBinaryColumnar composes BinaryDigits with an unpadded Columnar
// transposition under keyword.
// Errors: ErrEmptyKeyword, ErrInvalidCharacter (keyword).
func NewBinaryColumnar(keyword string) (*Chain, error) {
	col, err := transposition.NewColumnar(keyword)
	if err != nil {
		return nil, alphabet.Errorf("BinaryColumnar", err, "keyword")
	}

	return NewChain(BinaryDigits{}, col)
}
