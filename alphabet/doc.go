// Package alphabet holds the small, shared building blocks every cipher in
// cryptex is assembled from.
//
// What lives here:
//
//	• Letter ↔ index mapping over A..Z (LetterIndex, Letter, Shift, Mirror)
//	• Keyword ranking for columnar ciphers (KeywordColumnOrder)
//	• Keyword → shift vectors for polyalphabetic ciphers (KeywordShifts)
//	• Fixed-size blocking with padding (ChunkAndPad)
//	• 1-based permutation validation (ValidatePermutation, ZeroBased, Invert)
//	• The error taxonomy shared by all packages (errors.go)
//
// Everything is pure and allocation-light; no function keeps state between
// calls, so all helpers are safe for concurrent use.
//
//	order, _ := alphabet.KeywordColumnOrder("RAT") // [1 0 2]
//	chunks, _ := alphabet.ChunkAndPad("HELLOWORLD", 12, alphabet.DefaultPad)
//	// ["HELLOWORLDXX"]
package alphabet
