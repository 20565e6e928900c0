// Package encoding implements the token encodings used as beginner puzzles:
// decimal code points, 8-bit binary code points, letter positions
// (A=1..Z=26) and International Morse code.
//
// Unlike the ciphers in substitution, these change the length of the text:
// every symbol becomes a token, and tokens are joined by single spaces.
//
//	DecimalASCII  "AB"      → "65 66"
//	BinaryASCII   "AB"      → "01000001 01000010"
//	NumberLetter  "Ab-c"    → "1 2 3"          (non-letters dropped)
//	Morse         "SOS HI"  → "... --- ...   .... .."
//
// Decipherment parses the token grammar back and fails with
// alphabet.ErrMalformedInput when a token does not fit it.
//
// Lossy policies:
//   - NumberLetter drops non-letters and deciphers to upper case.
//   - Morse deciphers to upper case.
package encoding
