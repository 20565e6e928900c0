// Package transposition implements ciphers that keep every symbol of the
// text but move it to a new position: Rail Fence, keyword Columnar
// transposition and the generalised Permuted Matrix.
//
// 🚀 One grid, three ciphers
//
//	All three write the text into a grid and read it back in another order.
//	The shared kernel (grid.go) reads a row-major grid column by column in a
//	given column order, and inverts that read for decipherment:
//
//	  Columnar       = columnRead(text, len(keyword), keywordColumnOrder)
//	  PermutedMatrix = per block: permute rows, then columnRead(block, cols, colPerm)
//	  RailFence      = zigzag index permutation, read rail by rail
//
// ✨ Policies:
//   - RailFence and Columnar keep every rune (spaces included).
//   - Columnar leaves the last row short by default; WithFullGrid pads it.
//   - PermutedMatrix strips whitespace and pads each block with 'X'
//     (WithPad overrides); decipherment returns the padded stream.
//
// ⚙️ Usage:
//
//	rf, _ := transposition.NewRailFence(3)
//	out, _ := rf.Encipher("HELLO") // "HOELL"
//
//	pm, _ := transposition.NewPermutedMatrix([]int{2, 1}, []int{3, 1, 5, 2, 6, 4})
//	out, _ = pm.Encipher("HELLO WORLD") // "LLOHXOREXWDL"
//
// Complexity: O(n) time and memory for n runes (plus O(k log k) once per
// keyword of length k).
package transposition
