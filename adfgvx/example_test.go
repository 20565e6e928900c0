package adfgvx_test

import (
	"fmt"

	"github.com/katalvlaran/cryptex/adfgvx"
)

// ExampleNew reproduces the "coordinates" stage of the reference hunt.
//
// Stage 1 turns 13 symbols into 26 label letters; stage 2 writes them under
// FINAL and reads the columns in order A, F, I, L, N.
func ExampleNew() {
	c, err := adfgvx.New("PHQGIUMEAYLNOFDXJKRCVSTZWB0123456789", "FINAL")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	ct, _ := c.Encipher("DHHEFFXBCEBBX")
	pt, _ := c.Decipher(ct)
	fmt.Println(ct)
	fmt.Println(pt)
	// Output:
	// DFGDDFDFDVGFDDGDADVDFADFDV
	// DHHEFFXBCEBBX
}
