package cipher

import (
	"errors"

	"github.com/katalvlaran/cryptex/alphabet"
)

// Re-exported sentinels so callers of the dispatch layer need one import.
// They are the same values as in package alphabet; errors.Is matches either.
var (
	ErrInvalidCharacter   = alphabet.ErrInvalidCharacter
	ErrInvalidParameter   = alphabet.ErrInvalidParameter
	ErrInvalidPermutation = alphabet.ErrInvalidPermutation
	ErrEmptyKeyword       = alphabet.ErrEmptyKeyword
	ErrInvalidKeySquare   = alphabet.ErrInvalidKeySquare
	ErrMalformedInput     = alphabet.ErrMalformedInput
)

// ErrUnknownKind indicates a Kind outside the table or an unknown name.
var ErrUnknownKind = errors.New("cryptex: unknown cipher kind")

// errorf is the package-local spelling of alphabet.Errorf.
func errorf(method string, err error, format string, args ...interface{}) error {
	return alphabet.Errorf(method, err, format, args...)
}
