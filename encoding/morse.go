package encoding

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/cryptex/alphabet"
)

// Morse maps symbols to International Morse code.
//
// Grammar:
//   - Symbols are joined by one space.
//   - A space in the text becomes a lone " " token, so one word gap reads as
//     three spaces: "HI YOU" → ".... ..   -.-- --- ..-".
//   - Runes without a code pass through literally as their own token.
//
// Decipher splits on single spaces; a run of 2k empty fields stands for k
// spaces of the original text.
type Morse struct{}

// morseTable is the encode table. Letters are stored upper case.
var morseTable = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.", '!': "-.-.--",
	'/': "-..-.", '(': "-.--.", ')': "-.--.-", '&': ".-...", ':': "---...",
	';': "-.-.-.", '=': "-...-", '+': ".-.-.", '-': "-....-", '"': ".-..-.",
	'@': ".--.-.",
}

// morseReverse is the read-only decode table built once from morseTable.
var morseReverse = func() map[string]rune {
	rev := make(map[string]rune, len(morseTable))
	for r, code := range morseTable {
		rev[code] = r
	}

	return rev
}()

// Encipher converts text to Morse; letters are case-folded.
func (Morse) Encipher(text string) (string, error) {
	tokens := make([]string, 0, len(text))
	for _, r := range text {
		if r == ' ' {
			tokens = append(tokens, " ")
			continue
		}
		if code, ok := morseTable[unicode.ToUpper(r)]; ok {
			tokens = append(tokens, code)
			continue
		}
		tokens = append(tokens, string(r))
	}

	return strings.Join(tokens, " "), nil
}

// Decipher converts Morse back to upper-case text.
//
// Errors: ErrMalformedInput when a dot/dash token has no code, or a run of
// separators cannot be split into whole spaces.
func (Morse) Decipher(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	var (
		b     strings.Builder
		empty int
	)
	flush := func() error {
		if empty%2 != 0 {
			return alphabet.Errorf("Morse", alphabet.ErrMalformedInput, "unbalanced separator run of %d", empty+1)
		}
		b.WriteString(strings.Repeat(" ", empty/2))
		empty = 0

		return nil
	}

	for _, field := range strings.Split(text, " ") {
		if field == "" {
			empty++
			continue
		}
		if err := flush(); err != nil {
			return "", err
		}
		r, err := decodeMorseToken(field)
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
	}
	if err := flush(); err != nil {
		return "", err
	}

	return b.String(), nil
}

// decodeMorseToken resolves one token: a known code, or a literal rune that
// was passed through on encipher.
func decodeMorseToken(tok string) (rune, error) {
	if r, ok := morseReverse[tok]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(tok) == 1 && strings.Trim(tok, ".-") != "" {
		r, _ := utf8.DecodeRuneInString(tok)

		return r, nil
	}

	return 0, alphabet.Errorf("Morse", alphabet.ErrMalformedInput, "token %q", tok)
}
