// Package composite chains ciphers so the output of one stage is the
// plaintext of the next, and provides the Binary-Columnar puzzle built that
// way.
//
// A Chain enciphers through its stages in order and deciphers through them
// in reverse order. Any value with Encipher/Decipher methods can be a stage,
// so transposition ciphers consume encodings as ordinary text:
//
//	bc, _ := composite.NewBinaryColumnar("FINAL")
//	// BinaryDigits → Columnar("FINAL")
package composite

import (
	"fmt"

	"github.com/katalvlaran/cryptex/alphabet"
)

// Stage is one reversible text transform.
type Stage interface {
	Encipher(text string) (string, error)
	Decipher(text string) (string, error)
}

// Chain applies stages in sequence.
type Chain struct {
	stages []Stage
}

// NewChain builds a chain. Errors: ErrInvalidParameter if no stages are
// given or a stage is nil.
func NewChain(stages ...Stage) (*Chain, error) {
	if len(stages) == 0 {
		return nil, alphabet.Errorf("Chain", alphabet.ErrInvalidParameter, "no stages")
	}
	for i, s := range stages {
		if s == nil {
			return nil, alphabet.Errorf("Chain", alphabet.ErrInvalidParameter, "stage %d is nil", i)
		}
	}
	cp := make([]Stage, len(stages))
	copy(cp, stages)

	return &Chain{stages: cp}, nil
}

// Len reports the number of stages.
func (c *Chain) Len() int { return len(c.stages) }

// Encipher runs every stage front to back.
func (c *Chain) Encipher(text string) (string, error) {
	var err error
	for i, s := range c.stages {
		text, err = s.Encipher(text)
		if err != nil {
			return "", fmt.Errorf("chain encipher failed at step %d: %w", i, err)
		}
	}

	return text, nil
}

// Decipher runs every stage back to front.
func (c *Chain) Decipher(text string) (string, error) {
	var err error
	for i := len(c.stages) - 1; i >= 0; i-- {
		text, err = c.stages[i].Decipher(text)
		if err != nil {
			return "", fmt.Errorf("chain decipher failed at step %d: %w", i, err)
		}
	}

	return text, nil
}
