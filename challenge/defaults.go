package challenge

import (
	"github.com/katalvlaran/cryptex/cipher"
)

const (
	// DefaultSetID is the id of the reference hunt; FromTemplate uses it as
	// the usual template.
	DefaultSetID = "1"

	// HuntKeySquare is the ADFGVX key square of the reference hunt.
	HuntKeySquare = "PHQGIUMEAYLNOFDXJKRCVSTZWB0123456789"
	// HuntKeyword is the ADFGVX transposition keyword of the reference hunt.
	HuntKeyword = "FINAL"
)

// DefaultSet returns the eight-stage Paris hunt. Encrypted messages are left
// empty; run it through Generator.Generate to fill them.
func DefaultSet() *Set {
	return &Set{
		ID:          DefaultSetID,
		Title:       "A Walk to the Marais",
		Description: "From the continent down to a street corner in central Paris, one cipher per stage.",
		Challenges: []Challenge{
			{
				Stage:      Continent,
				Answer:     "Europe",
				Hint:       "Convert each number to its ASCII character",
				Tutorial:   "Every character has a numeric ASCII code. 65 is A, 66 is B, 97 is a.",
				Difficulty: 1,
				Scheme:     cipher.Scheme{Kind: cipher.DecimalASCII},
			},
			{
				Stage:      Country,
				Answer:     "France",
				Hint:       "Each letter is shifted thirteen positions forward in the alphabet",
				Tutorial:   "A Caesar cipher moves every letter a fixed number of places down the alphabet. With a shift of 2, A becomes C and B becomes D.",
				Difficulty: 2,
				Scheme:     cipher.Scheme{Kind: cipher.Caesar, Shift: 13},
			},
			{
				Stage:      Region,
				Answer:     "North",
				Hint:       "Each letter is mapped to its mirror in the alphabet (A=Z, B=Y...)",
				Tutorial:   "Atbash reverses the alphabet: A becomes Z, B becomes Y, and so on. Applying it twice gives the original text back.",
				Difficulty: 2,
				Scheme:     cipher.Scheme{Kind: cipher.Atbash},
			},
			{
				Stage:      City,
				Answer:     "Paris",
				Hint:       "Each letter is shifted according to a keyword",
				Tutorial:   "Vigenère repeats a keyword under the message. Each keyword letter gives the shift of the message letter above it: A shifts by 0, B by 1, and so on.",
				Difficulty: 3,
				Scheme:     cipher.Scheme{Kind: cipher.Vigenere, Keyword: "RAT"},
			},
			{
				Stage:      District,
				Answer:     "Le Marais",
				Hint:       "The text zigzags over 3 rails and is read off row by row",
				Tutorial:   "Write the text diagonally down and up across 3 rows, then read each row left to right. HELLO becomes HOELL.",
				Difficulty: 3,
				Scheme:     cipher.Scheme{Kind: cipher.RailFence, Rails: 3},
			},
			{
				Stage:      Area,
				Answer:     "Marais",
				Hint:       "The text is written in rows under RAT and read column by column in alphabetical key order",
				Tutorial:   "Write the text in rows under the keyword R A T, then read the columns in the order A, R, T.",
				Difficulty: 4,
				Scheme:     cipher.Scheme{Kind: cipher.Columnar, Keyword: "RAT"},
			},
			{
				Stage:      Street,
				Answer:     "Rue de Rivoli",
				Hint:       "A 2x6 matrix with row permutation [2,1] and column permutation [3,1,5,2,6,4]",
				Tutorial:   "Spaces are removed and the text is padded with X to 12 characters, written into 2 rows of 6, rows swapped, then columns 3,1,5,2,6,4 are read top to bottom.",
				Difficulty: 4,
				Scheme: cipher.Scheme{
					Kind:              cipher.PermutedMatrix,
					RowPermutation:    []int{2, 1},
					ColumnPermutation: []int{3, 1, 5, 2, 6, 4},
				},
			},
			{
				Stage:      Coordinates,
				Answer:     "DHHEFFXBCEBBX",
				Hint:       "Digits were first turned into letters (A=1, B=2 ...), with N and E both written as X",
				Tutorial:   "Each symbol becomes a pair of labels from A D F G V X found in the key square, and the pairs are transposed under the keyword FINAL. Undo the transposition, then look each pair up in the square.",
				Difficulty: 5,
				Scheme:     cipher.Scheme{Kind: cipher.ADFGVX, KeySquare: HuntKeySquare, Keyword: HuntKeyword},
			},
		},
	}
}
