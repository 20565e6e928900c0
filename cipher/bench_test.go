package cipher_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/cryptex/cipher"
)

// BenchmarkBuild measures dispatch plus construction of the costliest kind.
func BenchmarkBuild(b *testing.B) {
	s := cipher.Scheme{Kind: cipher.ADFGVX, KeySquare: huntSquare, Keyword: "FINAL"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cipher.Build(s); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkEncipher_AllKinds enciphers one text under every kind.
func BenchmarkEncipher_AllKinds(b *testing.B) {
	text := strings.Repeat("Rue de Rivoli ", 16)
	schemes := []cipher.Scheme{
		{Kind: cipher.Caesar, Shift: 13},
		{Kind: cipher.Vigenere, Keyword: "RAT"},
		{Kind: cipher.RailFence, Rails: 3},
		{Kind: cipher.Columnar, Keyword: "RAT"},
		{Kind: cipher.PermutedMatrix, RowPermutation: []int{2, 1}, ColumnPermutation: []int{3, 1, 5, 2, 6, 4}},
		{Kind: cipher.Morse},
		{Kind: cipher.BinaryColumnar},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, s := range schemes {
			if _, err := cipher.Encipher(s, text); err != nil {
				b.Fatalf("%s: %v", s.Kind, err)
			}
		}
	}
}
