// Package cipher is the single entry point to every algorithm in cryptex:
// a Kind enum, a Scheme value carrying the parameters, and a dispatch table
// from Kind to constructor.
//
// 🚀 Why a table?
//
//	Puzzle content is stored as data ("kind: vigenere, keyword: RAT"), not
//	as function names. Build resolves the Kind through a fixed table that is
//	complete at program start, so an unknown kind is a typed error
//	(ErrUnknownKind) instead of a failed name lookup.
//
// ✨ Operations:
//   - Build(s)              → Transformer (validated, reusable)
//   - Encipher(s, text)     → ciphertext
//   - Decipher(s, text)     → plaintext (subject to each Kind's lossy policy)
//   - Verify(s, cand, ct)   → Encipher(s, cand) == ct
//   - Scheme.Validate()     → construction errors before any text is seen
//   - Kinds(), ParseKind()  → enumerate and resolve kinds by name
//
// ⚙️ Usage:
//
//	s := cipher.Scheme{Kind: cipher.Vigenere, Keyword: "RAT"}
//	ct, err := cipher.Encipher(s, "Paris") // "Gakzs"
//	if errors.Is(err, cipher.ErrEmptyKeyword) {
//	  // ...
//	}
//
// Kind marshals as text ("vigenere", "permuted_matrix", ...), so Schemes
// round-trip through YAML, TOML and JSON by name.
//
// Everything in this package is stateless and safe for concurrent use.
package cipher
