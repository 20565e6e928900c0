// Package adfgvx implements the ADFGVX fractionating cipher: a Polybius
// key-square substitution over the 36 symbols A–Z, 0–9 followed by a
// keyword columnar transposition.
//
// 🚀 Why "fractionating"?
//
//	Each plaintext symbol is split into two label letters (row, column),
//	and the transposition then separates the two halves. No single
//	ciphertext letter carries a whole plaintext symbol.
//
//	      A D F G V X
//	    A P H Q G I U
//	    D M E A Y L N
//	    F O F D X J K      'D' → row F, column F → "FF"
//	    G R C V S T Z
//	    V W B 0 1 2 3
//	    X 4 5 6 7 8 9
//
// ⚙️ Usage:
//
//	c, err := adfgvx.New("PHQGIUMEAYLNOFDXJKRCVSTZWB0123456789", "FINAL")
//	if err != nil {
//	  // ErrInvalidKeySquare, ErrEmptyKeyword, ErrInvalidCharacter
//	}
//	ct, _ := c.Encipher("DHHEFFXBCEBBX")
//	pt, _ := c.Decipher(ct)
//
// A Cipher is immutable; its key-square lookup table is built once and only
// read afterwards, so one Cipher may be shared across goroutines.
package adfgvx
