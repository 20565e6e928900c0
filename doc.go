// Package cryptex is a library of classical, reversible text ciphers and the
// puzzle tooling built on them, from single-letter shifts to the ADFGVX
// field cipher.
//
// 🚀 What is cryptex?
//
//	A pure, deterministic cipher toolkit that brings together:
//		• Substitution: Caesar, ROT13, Atbash, Vigenère, Gronsfeld
//		• Encodings: decimal and binary ASCII, number-to-letter, Morse
//		• Transposition: Rail Fence, keyword Columnar, permuted matrix
//		• Fractionation: ADFGVX (key square + columnar)
//		• Composition: chains of any ciphers, Binary-Columnar
//		• Puzzles: geography-hunt challenge sets in YAML, TOML or JSON
//
// ✨ Why choose cryptex?
//
//   - Every cipher enciphers AND deciphers
//   - Precise sentinel errors (errors.Is) instead of silent repair
//   - Immutable cipher values, safe to share between goroutines
//   - One dispatch point (cipher.Scheme) for data-driven content
//
// Packages:
//
//	alphabet/      — letter indices, keyword column order, chunking, permutations, errors
//	substitution/  — Caesar, ROT13, Atbash, Vigenère, Gronsfeld
//	encoding/      — DecimalASCII, BinaryASCII, NumberLetter, Morse
//	transposition/ — RailFence, Columnar, PermutedMatrix
//	adfgvx/        — KeySquare and the ADFGVX cipher
//	composite/     — Chain, BinaryDigits, BinaryColumnar
//	cipher/        — Kind, Scheme, Build/Encipher/Decipher/Verify
//	challenge/     — hunt model, generation, guess checking, file formats
//	cmd/cryptex/   — command-line front end
//
// Quick example:
//
//	s := cipher.Scheme{Kind: cipher.RailFence, Rails: 3}
//	ct, _ := cipher.Encipher(s, "HELLO") // "HOELL"
//
//	H . . . O
//	. E . L .
//	. . L . .
//
// No security is implied: these ciphers are for puzzles and teaching.
//
//	go get github.com/katalvlaran/cryptex
package cryptex
