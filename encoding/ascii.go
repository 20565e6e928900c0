package encoding

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/cryptex/alphabet"
)

const (
	// binaryWidth is the token width of BinaryASCII.
	binaryWidth = 8
	// maxByteRune is the largest code point BinaryASCII can represent.
	maxByteRune = 0xFF
)

// DecimalASCII writes every rune as its base-10 code point.
type DecimalASCII struct{}

// Encipher returns the space-joined decimal code points of text.
func (DecimalASCII) Encipher(text string) (string, error) {
	tokens := make([]string, 0, len(text))
	for _, r := range text {
		tokens = append(tokens, strconv.Itoa(int(r)))
	}

	return strings.Join(tokens, " "), nil
}

// Decipher parses whitespace-separated decimal code points.
// Errors: ErrMalformedInput on a non-numeric token or an invalid code point.
func (DecimalASCII) Decipher(text string) (string, error) {
	var b strings.Builder
	for _, tok := range strings.Fields(text) {
		n, err := strconv.ParseUint(tok, 10, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return "", alphabet.Errorf("DecimalASCII", alphabet.ErrMalformedInput, "token %q", tok)
		}
		b.WriteRune(rune(n))
	}

	return b.String(), nil
}

// BinaryASCII writes every rune as an 8-bit zero-padded binary code point.
type BinaryASCII struct{}

// Encipher returns the space-joined 8-bit binary code points of text.
// Errors: ErrInvalidCharacter for runes above 0xFF (they need more than 8 bits).
func (BinaryASCII) Encipher(text string) (string, error) {
	tokens := make([]string, 0, len(text))
	for _, r := range text {
		if r > maxByteRune {
			return "", alphabet.Errorf("BinaryASCII", alphabet.ErrInvalidCharacter, "%q above 0xFF", r)
		}
		tok := strconv.FormatInt(int64(r), 2)
		tokens = append(tokens, strings.Repeat("0", binaryWidth-len(tok))+tok)
	}

	return strings.Join(tokens, " "), nil
}

// Decipher parses whitespace-separated 8-digit binary tokens.
// Errors: ErrMalformedInput if a token is not exactly 8 binary digits.
func (BinaryASCII) Decipher(text string) (string, error) {
	var b strings.Builder
	for _, tok := range strings.Fields(text) {
		if len(tok) != binaryWidth {
			return "", alphabet.Errorf("BinaryASCII", alphabet.ErrMalformedInput, "token %q is not %d bits", tok, binaryWidth)
		}
		n, err := strconv.ParseUint(tok, 2, binaryWidth)
		if err != nil {
			return "", alphabet.Errorf("BinaryASCII", alphabet.ErrMalformedInput, "token %q", tok)
		}
		b.WriteRune(rune(n))
	}

	return b.String(), nil
}

// NumberLetter writes every letter as its 1-based alphabet position.
type NumberLetter struct{}

// Encipher returns space-joined positions (A=1..Z=26); non-letters are dropped.
func (NumberLetter) Encipher(text string) (string, error) {
	tokens := make([]string, 0, len(text))
	for _, r := range text {
		idx, err := alphabet.LetterIndex(r)
		if err != nil {
			continue
		}
		tokens = append(tokens, strconv.Itoa(idx+1))
	}

	return strings.Join(tokens, " "), nil
}

// Decipher maps positions back to upper-case letters.
// Errors: ErrMalformedInput for a token outside 1..26.
func (NumberLetter) Decipher(text string) (string, error) {
	var b strings.Builder
	for _, tok := range strings.Fields(text) {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 || n > alphabet.Size {
			return "", alphabet.Errorf("NumberLetter", alphabet.ErrMalformedInput, "token %q", tok)
		}
		b.WriteRune(alphabet.Letter(n-1, true))
	}

	return b.String(), nil
}
