package cipher

import (
	"github.com/katalvlaran/cryptex/adfgvx"
	"github.com/katalvlaran/cryptex/composite"
	"github.com/katalvlaran/cryptex/encoding"
	"github.com/katalvlaran/cryptex/substitution"
	"github.com/katalvlaran/cryptex/transposition"
)

// Transformer is a built, reusable cipher.
type Transformer interface {
	Encipher(text string) (string, error)
	Decipher(text string) (string, error)
}

// builder constructs the Transformer of one Kind from a Scheme.
type builder func(s Scheme) (Transformer, error)

// builders is the dispatch table, indexed by Kind. A nil slot is a Kind with
// no algorithm.
var builders = [kindCount]builder{
	Caesar:         buildCaesar,
	Atbash:         func(Scheme) (Transformer, error) { return substitution.Atbash{}, nil },
	ROT13:          func(Scheme) (Transformer, error) { return substitution.ROT13(), nil },
	Vigenere:       buildVigenere,
	Gronsfeld:      buildGronsfeld,
	RailFence:      buildRailFence,
	Columnar:       buildColumnar,
	PermutedMatrix: buildPermutedMatrix,
	ADFGVX:         buildADFGVX,
	DecimalASCII:   func(Scheme) (Transformer, error) { return encoding.DecimalASCII{}, nil },
	BinaryASCII:    func(Scheme) (Transformer, error) { return encoding.BinaryASCII{}, nil },
	NumberLetter:   func(Scheme) (Transformer, error) { return encoding.NumberLetter{}, nil },
	Morse:          func(Scheme) (Transformer, error) { return encoding.Morse{}, nil },
	BinaryColumnar: buildBinaryColumnar,
}

// Build validates s and returns its Transformer.
// Errors: ErrUnknownKind, or the construction error of the selected cipher
// (ErrEmptyKeyword, ErrInvalidParameter, ErrInvalidPermutation,
// ErrInvalidKeySquare, ErrInvalidCharacter).
func Build(s Scheme) (Transformer, error) {
	if !s.Kind.Valid() || builders[s.Kind] == nil {
		return nil, errorf("Build", ErrUnknownKind, "kind %d", uint8(s.Kind))
	}
	t, err := builders[s.Kind](s)
	if err != nil {
		return nil, errorf("Build", err, "%s", s.Kind)
	}

	return t, nil
}

// Encipher builds s and enciphers plaintext with it.
func Encipher(s Scheme, plaintext string) (string, error) {
	t, err := Build(s)
	if err != nil {
		return "", err
	}

	return t.Encipher(plaintext)
}

// Decipher builds s and deciphers ciphertext with it.
func Decipher(s Scheme, ciphertext string) (string, error) {
	t, err := Build(s)
	if err != nil {
		return "", err
	}

	return t.Decipher(ciphertext)
}

// Verify reports whether enciphering candidate under s reproduces
// ciphertext exactly. It never deciphers, so it also works for lossy
// schemes.
func Verify(s Scheme, candidate, ciphertext string) (bool, error) {
	got, err := Encipher(s, candidate)
	if err != nil {
		return false, err
	}

	return got == ciphertext, nil
}

func buildCaesar(s Scheme) (Transformer, error) {
	return substitution.NewCaesar(s.Shift), nil
}

func buildVigenere(s Scheme) (Transformer, error) {
	v, err := substitution.NewVigenere(s.Keyword)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func buildGronsfeld(s Scheme) (Transformer, error) {
	g, err := substitution.NewGronsfeld(s.Key)
	if err != nil {
		return nil, err
	}

	return g, nil
}

func buildRailFence(s Scheme) (Transformer, error) {
	rf, err := transposition.NewRailFence(s.Rails)
	if err != nil {
		return nil, err
	}

	return rf, nil
}

func buildColumnar(s Scheme) (Transformer, error) {
	pad, ok, err := s.padRune()
	if err != nil {
		return nil, err
	}
	var opts []transposition.Option
	if ok {
		opts = append(opts, transposition.WithFullGrid(), transposition.WithPad(pad))
	}
	c, err := transposition.NewColumnar(s.Keyword, opts...)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func buildPermutedMatrix(s Scheme) (Transformer, error) {
	pad, ok, err := s.padRune()
	if err != nil {
		return nil, err
	}
	var opts []transposition.Option
	if ok {
		opts = append(opts, transposition.WithPad(pad))
	}
	m, err := transposition.NewPermutedMatrix(s.RowPermutation, s.ColumnPermutation, opts...)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func buildADFGVX(s Scheme) (Transformer, error) {
	c, err := adfgvx.New(s.KeySquare, s.Keyword)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func buildBinaryColumnar(s Scheme) (Transformer, error) {
	c, err := composite.NewBinaryColumnar(s.binaryKeyword())
	if err != nil {
		return nil, err
	}

	return c, nil
}

// binaryKeyword falls back to the reference keyword when none is set.
func (s Scheme) binaryKeyword() string {
	if s.Keyword == "" {
		return composite.DefaultBinaryKeyword
	}

	return s.Keyword
}
