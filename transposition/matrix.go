// SPDX-License-Identifier: MIT
// Package: cryptex/transposition
//
// matrix.go — Permuted Matrix transposition (row + column permutation).
//
// Algorithm (per block of rows×cols runes, whitespace stripped first):
//  1. Split the text with ChunkAndPad(text, rows*cols, pad).
//  2. Lay each block row-major into a rows×cols grid.
//  3. Reorder rows: new row i is old row rowPerm[i] (1-based).
//  4. Read columns in colPerm order (1-based), each top to bottom.
//  5. Concatenate the blocks in order.
//
// Worked example, rows=[2,1], cols=[3,1,5,2,6,4], "HELLO WORLD":
//
//	HELLOW        ORLDXX        col 3: L L   col 2: R E
//	ORLDXX   →    HELLOW   →    col 1: O H   col 6: X W
//	(padded)      (rows 2,1)    col 5: X O   col 4: D L
//
//	→ "LLOHXOREXWDL"
//
// Decipherment runs the steps backwards per block: columnWrite restores the
// permuted grid, then rows go back to their original slots.

package transposition

import (
	"strings"
	"unicode"

	"github.com/katalvlaran/cryptex/alphabet"
)

// PermutedMatrix is the general block transposition driven by a row
// permutation and a column permutation.
type PermutedMatrix struct {
	rowPerm []int // 0-based
	colPerm []int // 0-based
	cfg     config
}

// NewPermutedMatrix validates both 1-based permutations before any text is
// processed. Options: WithPad.
//
// Errors: ErrInvalidPermutation if either list is not a permutation of 1..N.
func NewPermutedMatrix(rowPerm, colPerm []int, opts ...Option) (PermutedMatrix, error) {
	rows, err := alphabet.ZeroBased(rowPerm)
	if err != nil {
		return PermutedMatrix{}, alphabet.Errorf("PermutedMatrix", err, "rows")
	}
	cols, err := alphabet.ZeroBased(colPerm)
	if err != nil {
		return PermutedMatrix{}, alphabet.Errorf("PermutedMatrix", err, "columns")
	}

	return PermutedMatrix{rowPerm: rows, colPerm: cols, cfg: newConfig(opts...)}, nil
}

// Rows reports the grid height.
func (m PermutedMatrix) Rows() int { return len(m.rowPerm) }

// Cols reports the grid width.
func (m PermutedMatrix) Cols() int { return len(m.colPerm) }

// BlockSize is rows*cols, the length of every ciphertext block.
func (m PermutedMatrix) BlockSize() int { return len(m.rowPerm) * len(m.colPerm) }

// Encipher strips whitespace, pads to whole blocks and permutes each block.
func (m PermutedMatrix) Encipher(text string) (string, error) {
	if m.BlockSize() == 0 {
		return "", alphabet.Errorf("PermutedMatrix", alphabet.ErrInvalidPermutation, "zero value")
	}
	chunks, err := alphabet.ChunkAndPad(stripSpace(text), m.BlockSize(), m.cfg.pad)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, chunk := range chunks {
		b.WriteString(string(m.encipherBlock([]rune(chunk))))
	}

	return b.String(), nil
}

// Decipher inverts Encipher block by block. The padding is kept: the result
// is the whitespace-free, padded plaintext.
//
// Errors: ErrMalformedInput if the length is not a multiple of rows*cols.
func (m PermutedMatrix) Decipher(text string) (string, error) {
	size := m.BlockSize()
	if size == 0 {
		return "", alphabet.Errorf("PermutedMatrix", alphabet.ErrInvalidPermutation, "zero value")
	}
	ct := []rune(text)
	if len(ct)%size != 0 {
		return "", alphabet.Errorf("PermutedMatrix", alphabet.ErrMalformedInput, "length %d not a multiple of %d", len(ct), size)
	}

	out := make([]rune, 0, len(ct))
	for start := 0; start < len(ct); start += size {
		out = append(out, m.decipherBlock(ct[start:start+size])...)
	}

	return string(out), nil
}

// encipherBlock permutes rows, then reads columns in colPerm order.
func (m PermutedMatrix) encipherBlock(block []rune) []rune {
	cols := len(m.colPerm)
	grid := make([]rune, len(block))
	for i, r := range m.rowPerm {
		copy(grid[i*cols:(i+1)*cols], block[r*cols:(r+1)*cols])
	}

	return columnRead(grid, cols, m.colPerm)
}

// decipherBlock refills the permuted grid and puts rows back in place.
func (m PermutedMatrix) decipherBlock(block []rune) []rune {
	cols := len(m.colPerm)
	grid := columnWrite(block, cols, m.colPerm)
	out := make([]rune, len(block))
	for i, r := range m.rowPerm {
		copy(out[r*cols:(r+1)*cols], grid[i*cols:(i+1)*cols])
	}

	return out
}

// stripSpace removes every Unicode whitespace rune.
func stripSpace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, text)
}
