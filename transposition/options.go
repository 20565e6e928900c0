package transposition

import (
	"unicode/utf8"

	"github.com/katalvlaran/cryptex/alphabet"
)

// Option customises a transposition cipher at construction time.
// Option constructors panic on meaningless values (programmer error); the
// ciphers themselves never panic.
type Option func(*config)

// config is the resolved option set.
type config struct {
	pad      rune
	fullGrid bool
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	c := config{pad: alphabet.DefaultPad}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithPad sets the filler rune used to complete a block.
// Panics if r is not a valid rune.
func WithPad(r rune) Option {
	if !utf8.ValidRune(r) {
		panic("transposition: WithPad(invalid rune)")
	}

	return func(c *config) {
		c.pad = r
	}
}

// WithFullGrid makes Columnar pad its last row so every column has the same
// length. Decipherment then requires a full grid.
func WithFullGrid() Option {
	return func(c *config) {
		c.fullGrid = true
	}
}
