// SPDX-License-Identifier: MIT
// Package: cryptex/transposition
//
// grid.go — the canonical column-read kernel shared by Columnar,
// PermutedMatrix and (through composite/adfgvx) every keyed transposition.
//
// Layout contract:
//   - The text is laid out row-major in ncols columns; the last row may be
//     short (cells past len(text) do not exist).
//   - order lists 0-based column indices in reading order; each column is
//     read top to bottom.
//   - Column c holds ceil((n-c)/ncols) symbols, which lets the inverse
//     recover column lengths from n alone.

package transposition

// columnRead reads src column by column following order.
// Complexity: O(len(src)).
func columnRead(src []rune, ncols int, order []int) []rune {
	out := make([]rune, 0, len(src))

	var (
		k   int
		col int
		at  int
	)
	for k = 0; k < len(order); k++ {
		col = order[k]
		for at = col; at < len(src); at += ncols {
			out = append(out, src[at])
		}
	}

	return out
}

// columnWrite inverts columnRead: it refills the columns in reading order
// and returns the row-major text.
// Complexity: O(len(ct)).
func columnWrite(ct []rune, ncols int, order []int) []rune {
	n := len(ct)
	out := make([]rune, n)

	var (
		pos int
		k   int
		at  int
	)
	for k = 0; k < len(order); k++ {
		for at = order[k]; at < n; at += ncols {
			out[at] = ct[pos]
			pos++
		}
	}

	return out
}
