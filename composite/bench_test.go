package composite_test

import (
	"testing"

	"github.com/katalvlaran/cryptex/composite"
	"github.com/katalvlaran/cryptex/substitution"
)

// BenchmarkBinaryColumnar_RoundTrip measures digit expansion plus keyword
// transposition on a coordinate string.
func BenchmarkBinaryColumnar_RoundTrip(b *testing.B) {
	c, _ := composite.NewBinaryColumnar(composite.DefaultBinaryKeyword)
	const coords = "48.8566° N, 2.3522° E"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ct, _ := c.Encipher(coords)
		if _, err := c.Decipher(ct); err != nil {
			b.Fatalf("Decipher failed: %v", err)
		}
	}
}

// BenchmarkChain_Encipher measures stage dispatch overhead.
func BenchmarkChain_Encipher(b *testing.B) {
	c, _ := composite.NewChain(substitution.ROT13(), substitution.Atbash{}, substitution.ROT13())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Encipher("RUE DE RIVOLI PARIS")
	}
}
