package adfgvx

import (
	"unicode"

	"github.com/katalvlaran/cryptex/alphabet"
)

const (
	// Labels names the rows and columns of the key square.
	Labels = "ADFGVX"
	// squareSide is the number of rows (and columns) of the key square.
	squareSide = len(Labels)
	// squareSize is the number of symbols a key square holds.
	squareSize = squareSide * squareSide
)

// labelIndex maps a label letter to its axis position; -1 if r is not a label.
func labelIndex(r rune) int {
	for i, l := range Labels {
		if l == r {
			return i
		}
	}

	return -1
}

// KeySquare is a 6×6 Polybius square over A–Z and 0–9.
// It is immutable after construction and safe to share.
type KeySquare struct {
	symbols [squareSize]rune
	index   map[rune]int
}

// NewKeySquare parses a 36-symbol key (read row-major). Letters are
// case-folded to upper case.
//
// Errors: ErrInvalidKeySquare if the key does not hold exactly 36 distinct
// symbols from A–Z, 0–9.
func NewKeySquare(key string) (*KeySquare, error) {
	src := []rune(key)
	if len(src) != squareSize {
		return nil, alphabet.Errorf("KeySquare", alphabet.ErrInvalidKeySquare, "length %d, need %d", len(src), squareSize)
	}

	ks := &KeySquare{index: make(map[rune]int, squareSize)}
	for i, r := range src {
		r = unicode.ToUpper(r)
		if !isSquareSymbol(r) {
			return nil, alphabet.Errorf("KeySquare", alphabet.ErrInvalidKeySquare, "symbol %q at %d", r, i)
		}
		if _, dup := ks.index[r]; dup {
			return nil, alphabet.Errorf("KeySquare", alphabet.ErrInvalidKeySquare, "duplicate %q at %d", r, i)
		}
		ks.symbols[i] = r
		ks.index[r] = i
	}

	return ks, nil
}

// isSquareSymbol reports whether r belongs to the fixed A–Z, 0–9 alphabet.
func isSquareSymbol(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// String returns the 36 symbols row-major.
func (ks *KeySquare) String() string {
	return string(ks.symbols[:])
}

// Coordinates returns the (row, column) labels of symbol r (case-folded).
// Errors: ErrInvalidCharacter if r is not in the square.
func (ks *KeySquare) Coordinates(r rune) (row, col byte, err error) {
	i, ok := ks.index[unicode.ToUpper(r)]
	if !ok {
		return 0, 0, alphabet.Errorf("KeySquare", alphabet.ErrInvalidCharacter, "%q", r)
	}

	return Labels[i/squareSide], Labels[i%squareSide], nil
}

// Symbol returns the symbol at the (row, column) labels.
// Errors: ErrMalformedInput if either label is not one of ADFGVX.
func (ks *KeySquare) Symbol(row, col rune) (rune, error) {
	ri, ci := labelIndex(row), labelIndex(col)
	if ri < 0 || ci < 0 {
		return 0, alphabet.Errorf("KeySquare", alphabet.ErrMalformedInput, "pair %q%q", row, col)
	}

	return ks.symbols[ri*squareSide+ci], nil
}
