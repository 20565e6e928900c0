package transposition

import (
	"github.com/katalvlaran/cryptex/alphabet"
)

// Columnar writes the text row-major under a keyword and reads the columns
// in the alphabetical rank of the keyword letters.
//
//	R A T
//	h e l          "helllo" → columns A, R, T → "el" + "hl" + "lo"
//	l l o
type Columnar struct {
	keyword string
	order   []int
	cfg     config
}

// NewColumnar builds a Columnar cipher for keyword.
// Options: WithFullGrid, WithPad.
//
// Errors: ErrEmptyKeyword, ErrInvalidCharacter (keyword must be letters).
func NewColumnar(keyword string, opts ...Option) (Columnar, error) {
	order, err := alphabet.KeywordColumnOrder(keyword)
	if err != nil {
		return Columnar{}, err
	}

	return Columnar{keyword: keyword, order: order, cfg: newConfig(opts...)}, nil
}

// Keyword reports the keyword the column order was derived from.
func (c Columnar) Keyword() string { return c.keyword }

// Order returns a copy of the 0-based column reading order.
func (c Columnar) Order() []int {
	out := make([]int, len(c.order))
	copy(out, c.order)

	return out
}

// Encipher reads the keyword grid column by column.
func (c Columnar) Encipher(text string) (string, error) {
	if len(c.order) == 0 {
		return "", alphabet.Errorf("Columnar", alphabet.ErrEmptyKeyword, "zero value")
	}
	src := []rune(text)
	if c.cfg.fullGrid {
		src = padTo(src, len(c.order), c.cfg.pad)
	}

	return string(columnRead(src, len(c.order), c.order)), nil
}

// Decipher rebuilds column lengths from the text length and restores rows.
// Errors: ErrMalformedInput if WithFullGrid is set and the length is not a
// multiple of the keyword length.
func (c Columnar) Decipher(text string) (string, error) {
	if len(c.order) == 0 {
		return "", alphabet.Errorf("Columnar", alphabet.ErrEmptyKeyword, "zero value")
	}
	ct := []rune(text)
	if c.cfg.fullGrid && len(ct)%len(c.order) != 0 {
		return "", alphabet.Errorf("Columnar", alphabet.ErrMalformedInput, "length %d not a multiple of %d", len(ct), len(c.order))
	}

	return string(columnWrite(ct, len(c.order), c.order)), nil
}

// padTo right-pads src with pad up to a multiple of size.
func padTo(src []rune, size int, pad rune) []rune {
	if size <= 0 || len(src)%size == 0 {
		return src
	}
	out := make([]rune, len(src), len(src)+size-len(src)%size)
	copy(out, src)
	for len(out)%size != 0 {
		out = append(out, pad)
	}

	return out
}
