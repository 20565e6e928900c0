package cipher

import (
	"strings"
)

// Kind selects one cipher algorithm.
type Kind uint8

const (
	// KindInvalid is the zero Kind; it never builds.
	KindInvalid Kind = iota
	Caesar
	Atbash
	ROT13
	Vigenere
	Gronsfeld
	RailFence
	Columnar
	PermutedMatrix
	ADFGVX
	DecimalASCII
	BinaryASCII
	NumberLetter
	Morse
	BinaryColumnar

	kindCount
)

// kindNames are the stable identifiers used in files and on the command line.
var kindNames = [kindCount]string{
	KindInvalid:    "invalid",
	Caesar:         "caesar",
	Atbash:         "atbash",
	ROT13:          "rot13",
	Vigenere:       "vigenere",
	Gronsfeld:      "gronsfeld",
	RailFence:      "railfence",
	Columnar:       "columnar",
	PermutedMatrix: "permuted_matrix",
	ADFGVX:         "adfgvx",
	DecimalASCII:   "decimal_ascii",
	BinaryASCII:    "binary_ascii",
	NumberLetter:   "number_letter",
	Morse:          "morse",
	BinaryColumnar: "binary_columnar",
}

// kindTitles are the human-readable names shown to players.
var kindTitles = [kindCount]string{
	KindInvalid:    "Invalid",
	Caesar:         "Caesar Cipher",
	Atbash:         "Atbash Cipher",
	ROT13:          "ROT13",
	Vigenere:       "Vigenère Cipher",
	Gronsfeld:      "Gronsfeld Cipher",
	RailFence:      "Rail Fence Cipher",
	Columnar:       "Columnar Transposition",
	PermutedMatrix: "Matrix Transposition",
	ADFGVX:         "ADFGVX Cipher",
	DecimalASCII:   "Decimal ASCII",
	BinaryASCII:    "Binary ASCII",
	NumberLetter:   "Number to Letter",
	Morse:          "Morse Code",
	BinaryColumnar: "Binary Columnar",
}

// kindAliases accepts the long spellings used by the hunt tutorials.
var kindAliases = map[string]Kind{
	"rail_fence":             RailFence,
	"columnar_transposition": Columnar,
	"matrix":                 PermutedMatrix,
	"number_to_letter":       NumberLetter,
	"morse_code":             Morse,
}

// String returns the stable identifier of k.
func (k Kind) String() string {
	if k >= kindCount {
		return kindNames[KindInvalid]
	}

	return kindNames[k]
}

// Title returns the display name of k.
func (k Kind) Title() string {
	if k >= kindCount {
		return kindTitles[KindInvalid]
	}

	return kindTitles[k]
}

// Valid reports whether k names a real algorithm.
func (k Kind) Valid() bool { return k > KindInvalid && k < kindCount }

// ParseKind resolves an identifier case-insensitively; '-' and ' ' are read
// as '_'. Errors: ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)

	for k := KindInvalid + 1; k < kindCount; k++ {
		if kindNames[k] == key {
			return k, nil
		}
	}
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}

	return KindInvalid, errorf("ParseKind", ErrUnknownKind, "%q", s)
}

// Kinds lists every valid Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}

// MarshalText encodes k by name so YAML, TOML and JSON files stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errorf("MarshalText", ErrUnknownKind, "kind %d", uint8(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText decodes a name produced by MarshalText (or an alias).
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
