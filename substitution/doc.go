// Package substitution implements the letter-for-letter classical ciphers
// used to build puzzle text: Caesar, ROT13, Atbash, Vigenère and Gronsfeld.
//
// 🚀 What is a substitution cipher?
//
//	Each letter is replaced by another letter of the same alphabet; the
//	position of the letter in the text never changes. Monoalphabetic
//	ciphers (Caesar, Atbash) use one replacement table for the whole text,
//	polyalphabetic ones (Vigenère, Gronsfeld) cycle through several.
//
// ✨ Shared policy:
//   - Only ASCII letters are transformed; case is preserved.
//   - Every other rune (digits, spaces, punctuation, accented letters)
//     passes through unchanged.
//   - Vigenère and Gronsfeld advance the key only on letters, so
//     "LE MARAIS" and "LEMARAIS" use the same key stream.
//   - Atbash and ROT13 are self-inverse: Decipher == Encipher.
//
// ⚙️ Usage:
//
//	c := substitution.NewCaesar(13)
//	out, _ := c.Encipher("France") // "Senapr"
//
//	v, err := substitution.NewVigenere("RAT")
//	if err != nil {
//	  // ErrEmptyKeyword or ErrInvalidCharacter
//	}
//	out, _ = v.Encipher("Paris") // "Gakzs"
//
// All types are immutable values; they are safe for concurrent use.
//
// Complexity: O(n) time and O(n) memory for a text of n runes.
package substitution
