package cipher_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cryptex/cipher"
)

const huntSquare = "PHQGIUMEAYLNOFDXJKRCVSTZWB0123456789"

// TestReferenceVectors pins the concrete vectors through the dispatch layer.
func TestReferenceVectors(t *testing.T) {
	cases := []struct {
		name   string
		scheme cipher.Scheme
		in     string
		want   string
	}{
		{"Caesar13", cipher.Scheme{Kind: cipher.Caesar, Shift: 13}, "France", "Senapr"},
		{"Atbash", cipher.Scheme{Kind: cipher.Atbash}, "North", "Mligs"},
		{"VigenereRAT", cipher.Scheme{Kind: cipher.Vigenere, Keyword: "RAT"}, "Paris", "Gakzs"},
		{"RailFence3", cipher.Scheme{Kind: cipher.RailFence, Rails: 3}, "HELLO", "HOELL"},
		{"PermutedMatrix2x6", cipher.Scheme{
			Kind:              cipher.PermutedMatrix,
			RowPermutation:    []int{2, 1},
			ColumnPermutation: []int{3, 1, 5, 2, 6, 4},
		}, "HELLO WORLD", "LLOHXOREXWDL"},
		{"DecimalASCII", cipher.Scheme{Kind: cipher.DecimalASCII}, "AB", "65 66"},
		{"ADFGVX", cipher.Scheme{Kind: cipher.ADFGVX, KeySquare: huntSquare, Keyword: "FINAL"},
			"DHHEFFXBCEBBX", "DFGDDFDFDVGFDDGDADVDFADFDV"},
		{"BinaryColumnarDefault", cipher.Scheme{Kind: cipher.BinaryColumnar}, "Rue 7", "_0R01u0101e0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cipher.Encipher(tc.scheme, tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	pt, err := cipher.Decipher(cipher.Scheme{Kind: cipher.DecimalASCII}, "65 66")
	require.NoError(t, err)
	assert.Equal(t, "AB", pt)
}

// TestRoundTrip_EveryKind checks decipher(encipher(x)) against each Kind's
// documented normalisation.
func TestRoundTrip_EveryKind(t *testing.T) {
	const text = "Rue de Rivoli"

	want := map[cipher.Kind]string{
		cipher.PermutedMatrix: "RuedeRivoliX",
		cipher.ADFGVX:         "RUEDERIVOLI",
		cipher.NumberLetter:   "RUEDERIVOLI",
		cipher.Morse:          "RUE DE RIVOLI",
	}
	schemes := map[cipher.Kind]cipher.Scheme{
		cipher.Caesar:         {Kind: cipher.Caesar, Shift: 7},
		cipher.Atbash:         {Kind: cipher.Atbash},
		cipher.ROT13:          {Kind: cipher.ROT13},
		cipher.Vigenere:       {Kind: cipher.Vigenere, Keyword: "LEMON"},
		cipher.Gronsfeld:      {Kind: cipher.Gronsfeld, Key: []int{3, 1, 4, 1, 5}},
		cipher.RailFence:      {Kind: cipher.RailFence, Rails: 4},
		cipher.Columnar:       {Kind: cipher.Columnar, Keyword: "RAT"},
		cipher.PermutedMatrix: {Kind: cipher.PermutedMatrix, RowPermutation: []int{2, 1}, ColumnPermutation: []int{3, 1, 5, 2, 6, 4}},
		cipher.ADFGVX:         {Kind: cipher.ADFGVX, KeySquare: huntSquare, Keyword: "FINAL"},
		cipher.DecimalASCII:   {Kind: cipher.DecimalASCII},
		cipher.BinaryASCII:    {Kind: cipher.BinaryASCII},
		cipher.NumberLetter:   {Kind: cipher.NumberLetter},
		cipher.Morse:          {Kind: cipher.Morse},
		cipher.BinaryColumnar: {Kind: cipher.BinaryColumnar, Keyword: "FINAL"},
	}
	require.Len(t, schemes, len(cipher.Kinds()), "every kind needs a round-trip case")

	for _, k := range cipher.Kinds() {
		s := schemes[k]
		t.Run(k.String(), func(t *testing.T) {
			ct, err := cipher.Encipher(s, text)
			require.NoError(t, err)

			pt, err := cipher.Decipher(s, ct)
			require.NoError(t, err)

			exp, ok := want[k]
			if !ok {
				exp = text
			}
			assert.Equal(t, exp, pt)
		})
	}
}

// TestSelfInverse covers Atbash and ROT13.
func TestSelfInverse(t *testing.T) {
	const text = "Le Marais, 4e arrondissement"
	for _, k := range []cipher.Kind{cipher.Atbash, cipher.ROT13} {
		s := cipher.Scheme{Kind: k}
		once, err := cipher.Encipher(s, text)
		require.NoError(t, err)
		twice, err := cipher.Encipher(s, once)
		require.NoError(t, err)
		assert.Equal(t, text, twice, k.String())
	}
}

// TestDeterminism enciphers twice and expects identical output.
func TestDeterminism(t *testing.T) {
	s := cipher.Scheme{Kind: cipher.ADFGVX, KeySquare: huntSquare, Keyword: "FINAL"}
	a, err := cipher.Encipher(s, "488566N23522E")
	require.NoError(t, err)
	b, err := cipher.Encipher(s, "488566N23522E")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestValidate_FailsFast checks construction errors per Kind.
func TestValidate_FailsFast(t *testing.T) {
	cases := []struct {
		name   string
		scheme cipher.Scheme
		want   error
	}{
		{"ZeroKind", cipher.Scheme{}, cipher.ErrUnknownKind},
		{"OutOfRangeKind", cipher.Scheme{Kind: cipher.Kind(200)}, cipher.ErrUnknownKind},
		{"VigenereEmpty", cipher.Scheme{Kind: cipher.Vigenere}, cipher.ErrEmptyKeyword},
		{"VigenereDigits", cipher.Scheme{Kind: cipher.Vigenere, Keyword: "R4T"}, cipher.ErrInvalidCharacter},
		{"GronsfeldRange", cipher.Scheme{Kind: cipher.Gronsfeld, Key: []int{26}}, cipher.ErrInvalidParameter},
		{"RailFenceOne", cipher.Scheme{Kind: cipher.RailFence, Rails: 1}, cipher.ErrInvalidParameter},
		{"ColumnarEmpty", cipher.Scheme{Kind: cipher.Columnar}, cipher.ErrEmptyKeyword},
		{"ColumnarPad", cipher.Scheme{Kind: cipher.Columnar, Keyword: "RAT", Pad: "XY"}, cipher.ErrInvalidParameter},
		{"MatrixDuplicate", cipher.Scheme{Kind: cipher.PermutedMatrix, RowPermutation: []int{1, 1}, ColumnPermutation: []int{1, 2}}, cipher.ErrInvalidPermutation},
		{"MatrixGap", cipher.Scheme{Kind: cipher.PermutedMatrix, RowPermutation: []int{1, 2}, ColumnPermutation: []int{1, 3}}, cipher.ErrInvalidPermutation},
		{"ADFGVXShortSquare", cipher.Scheme{Kind: cipher.ADFGVX, KeySquare: "ABC", Keyword: "FINAL"}, cipher.ErrInvalidKeySquare},
		{"ADFGVXNoKeyword", cipher.Scheme{Kind: cipher.ADFGVX, KeySquare: huntSquare}, cipher.ErrEmptyKeyword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.scheme.Validate()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestVerify accepts the right answer and rejects a near miss.
func TestVerify(t *testing.T) {
	s := cipher.Scheme{Kind: cipher.Vigenere, Keyword: "RAT"}

	ok, err := cipher.Verify(s, "Paris", "Gakzs")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cipher.Verify(s, "paris", "Gakzs")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = cipher.Verify(cipher.Scheme{}, "x", "y")
	assert.ErrorIs(t, err, cipher.ErrUnknownKind)
}

// TestDecipher_Malformed propagates token-grammar errors.
func TestDecipher_Malformed(t *testing.T) {
	_, err := cipher.Decipher(cipher.Scheme{Kind: cipher.DecimalASCII}, "65 x")
	assert.ErrorIs(t, err, cipher.ErrMalformedInput)

	_, err = cipher.Decipher(cipher.Scheme{Kind: cipher.BinaryASCII}, "0101")
	assert.ErrorIs(t, err, cipher.ErrMalformedInput)
}

// TestParseKind covers names, aliases and separators.
func TestParseKind(t *testing.T) {
	for _, k := range cipher.Kinds() {
		got, err := cipher.ParseKind(strings.ToUpper(k.String()))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := cipher.ParseKind("permuted-matrix")
	require.NoError(t, err)
	assert.Equal(t, cipher.PermutedMatrix, got)

	got, err = cipher.ParseKind("Rail Fence")
	require.NoError(t, err)
	assert.Equal(t, cipher.RailFence, got)

	_, err = cipher.ParseKind("enigma")
	assert.ErrorIs(t, err, cipher.ErrUnknownKind)

	_, err = cipher.ParseKind("invalid")
	assert.ErrorIs(t, err, cipher.ErrUnknownKind)
}

// TestScheme_TextEncoding checks that kinds appear by name in files.
func TestScheme_TextEncoding(t *testing.T) {
	s := cipher.Scheme{Kind: cipher.RailFence, Rails: 3}

	js, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"railfence","rails":3}`, string(js))

	var fromYAML cipher.Scheme
	require.NoError(t, yaml.Unmarshal([]byte("kind: permuted_matrix\nrow_permutation: [2, 1]\ncolumn_permutation: [3, 1, 5, 2, 6, 4]\n"), &fromYAML))
	assert.Equal(t, cipher.PermutedMatrix, fromYAML.Kind)
	assert.Equal(t, []int{3, 1, 5, 2, 6, 4}, fromYAML.ColumnPermutation)

	var bad cipher.Scheme
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"enigma"}`), &bad))

	_, err = json.Marshal(cipher.Scheme{})
	assert.Error(t, err)
}

// TestScheme_Label matches the display strings used by the default hunt.
func TestScheme_Label(t *testing.T) {
	cases := map[string]cipher.Scheme{
		"Caesar Cipher (Shift + 13)":                          {Kind: cipher.Caesar, Shift: 13},
		"Vigenère Cipher (key: RAT)":                          {Kind: cipher.Vigenere, Keyword: "RAT"},
		"Rail Fence Cipher (3 rails)":                         {Kind: cipher.RailFence, Rails: 3},
		"Columnar Transposition (key: RAT)":                   {Kind: cipher.Columnar, Keyword: "RAT"},
		"Matrix Transposition (2x6 matrix with permutations)": {Kind: cipher.PermutedMatrix, RowPermutation: []int{2, 1}, ColumnPermutation: []int{3, 1, 5, 2, 6, 4}},
		"Gronsfeld Cipher (key: 3 1 4)":                       {Kind: cipher.Gronsfeld, Key: []int{3, 1, 4}},
		"Binary Columnar (key: FINAL)":                        {Kind: cipher.BinaryColumnar},
		"Decimal ASCII":                                       {Kind: cipher.DecimalASCII},
	}
	for want, s := range cases {
		assert.Equal(t, want, s.Label())
	}
}

// TestColumnarPad_FullGrid enables full-grid padding through Pad.
func TestColumnarPad_FullGrid(t *testing.T) {
	s := cipher.Scheme{Kind: cipher.Columnar, Keyword: "RAT", Pad: "Q"}

	ct, err := cipher.Encipher(s, "Marais")
	require.NoError(t, err)
	assert.Len(t, ct, 6)

	ct, err = cipher.Encipher(s, "Paris")
	require.NoError(t, err)
	assert.Len(t, ct, 6)

	_, err = cipher.Decipher(s, "abcde")
	assert.ErrorIs(t, err, cipher.ErrMalformedInput)
}
