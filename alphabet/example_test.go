package alphabet_test

import (
	"fmt"

	"github.com/katalvlaran/cryptex/alphabet"
)

// ExampleKeywordColumnOrder shows the reading order derived from a keyword.
//
//	F I N A L
//	1 2 4 0 3   (rank of each column)
//
// Columns are then read A, F, I, L, N → original indices 3, 0, 1, 4, 2.
func ExampleKeywordColumnOrder() {
	order, err := alphabet.KeywordColumnOrder("FINAL")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(order)
	// Output:
	// [3 0 1 4 2]
}

// ExampleChunkAndPad splits text into 2×6 blocks padded with 'X'.
func ExampleChunkAndPad() {
	chunks, _ := alphabet.ChunkAndPad("RUEDERIVOLI", 12, alphabet.DefaultPad)
	fmt.Println(chunks)
	// Output:
	// [RUEDERIVOLIX]
}
