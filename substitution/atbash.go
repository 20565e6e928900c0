package substitution

import (
	"strings"

	"github.com/katalvlaran/cryptex/alphabet"
)

// Atbash maps each letter to its mirror (A↔Z, B↔Y, ...).
type Atbash struct{}

// Encipher mirrors every letter. It never fails.
func (Atbash) Encipher(text string) (string, error) {
	return mirrorAll(text), nil
}

// Decipher is identical to Encipher (Atbash is self-inverse).
func (Atbash) Decipher(text string) (string, error) {
	return mirrorAll(text), nil
}

func mirrorAll(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(alphabet.Mirror(r))
	}

	return b.String()
}
