package cipher

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Scheme is a cipher selector plus every parameter any Kind may need.
// Fields a Kind does not use are ignored.
//
//	Caesar          Shift (any integer, reduced mod 26)
//	Vigenere        Keyword
//	Gronsfeld       Key (shifts 0..25)
//	RailFence       Rails (≥ 2)
//	Columnar        Keyword; Pad turns on full-grid padding
//	PermutedMatrix  RowPermutation, ColumnPermutation (1-based); Pad
//	ADFGVX          KeySquare (36 symbols), Keyword
//	BinaryColumnar  Keyword (defaults to "FINAL")
//
// A Scheme is a plain value; it can be decoded from YAML, TOML or JSON.
type Scheme struct {
	Kind              Kind   `yaml:"kind" toml:"kind" json:"kind"`
	Shift             int    `yaml:"shift,omitempty" toml:"shift,omitempty" json:"shift,omitempty"`
	Keyword           string `yaml:"keyword,omitempty" toml:"keyword,omitempty" json:"keyword,omitempty"`
	Key               []int  `yaml:"key,omitempty" toml:"key,omitempty" json:"key,omitempty"`
	Rails             int    `yaml:"rails,omitempty" toml:"rails,omitempty" json:"rails,omitempty"`
	RowPermutation    []int  `yaml:"row_permutation,omitempty" toml:"row_permutation,omitempty" json:"row_permutation,omitempty"`
	ColumnPermutation []int  `yaml:"column_permutation,omitempty" toml:"column_permutation,omitempty" json:"column_permutation,omitempty"`
	KeySquare         string `yaml:"key_square,omitempty" toml:"key_square,omitempty" json:"key_square,omitempty"`
	Pad               string `yaml:"pad,omitempty" toml:"pad,omitempty" json:"pad,omitempty"`
}

// Validate reports whether s would build. It runs the same constructor as
// Build, so parameter errors surface before any text is processed.
func (s Scheme) Validate() error {
	_, err := Build(s)

	return err
}

// Label is the player-facing description of s, e.g.
// "Vigenère Cipher (key: RAT)".
func (s Scheme) Label() string {
	title := s.Kind.Title()
	switch s.Kind {
	case Caesar:
		if s.Shift < 0 {
			return fmt.Sprintf("%s (Shift - %d)", title, -s.Shift)
		}
		return fmt.Sprintf("%s (Shift + %d)", title, s.Shift)
	case Vigenere, Columnar, ADFGVX:
		return fmt.Sprintf("%s (key: %s)", title, s.Keyword)
	case BinaryColumnar:
		return fmt.Sprintf("%s (key: %s)", title, s.binaryKeyword())
	case Gronsfeld:
		return fmt.Sprintf("%s (key: %s)", title, joinInts(s.Key, " "))
	case RailFence:
		return fmt.Sprintf("%s (%d rails)", title, s.Rails)
	case PermutedMatrix:
		return fmt.Sprintf("%s (%dx%d matrix with permutations)", title, len(s.RowPermutation), len(s.ColumnPermutation))
	default:
		return title
	}
}

// padRune decodes Pad. ok is false when Pad is empty.
func (s Scheme) padRune() (r rune, ok bool, err error) {
	if s.Pad == "" {
		return 0, false, nil
	}
	if utf8.RuneCountInString(s.Pad) != 1 {
		return 0, false, errorf("Scheme", ErrInvalidParameter, "pad %q must be one character", s.Pad)
	}
	r, _ = utf8.DecodeRuneInString(s.Pad)

	return r, true, nil
}

func joinInts(xs []int, sep string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, sep)
}
