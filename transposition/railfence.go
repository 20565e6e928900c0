package transposition

import (
	"github.com/katalvlaran/cryptex/alphabet"
)

// minRails is the smallest meaningful rail count.
const minRails = 2

// RailFence writes the text in a zigzag over a number of rails and reads
// the rails top to bottom.
//
//	H . . . O      rails=3, "HELLO"
//	. E . L .
//	. . L . .      → "HO" + "EL" + "L" = "HOELL"
type RailFence struct {
	rails int
}

// NewRailFence returns a Rail Fence cipher.
// Errors: ErrInvalidParameter if rails < 2.
func NewRailFence(rails int) (RailFence, error) {
	if rails < minRails {
		return RailFence{}, alphabet.Errorf("RailFence", alphabet.ErrInvalidParameter, "rails=%d, need >= %d", rails, minRails)
	}

	return RailFence{rails: rails}, nil
}

// Rails reports the rail count.
func (rf RailFence) Rails() int { return rf.rails }

// Encipher reads the zigzag rail by rail.
func (rf RailFence) Encipher(text string) (string, error) {
	if err := rf.valid(); err != nil {
		return "", err
	}
	src := []rune(text)
	order := rf.readOrder(len(src))
	out := make([]rune, len(src))
	for k, at := range order {
		out[k] = src[at]
	}

	return string(out), nil
}

// Decipher places each ciphertext rune back at its zigzag position.
func (rf RailFence) Decipher(text string) (string, error) {
	if err := rf.valid(); err != nil {
		return "", err
	}
	ct := []rune(text)
	order := rf.readOrder(len(ct))
	out := make([]rune, len(ct))
	for k, at := range order {
		out[at] = ct[k]
	}

	return string(out), nil
}

// valid guards against the zero value.
func (rf RailFence) valid() error {
	if rf.rails < minRails {
		return alphabet.Errorf("RailFence", alphabet.ErrInvalidParameter, "rails=%d", rf.rails)
	}

	return nil
}

// readOrder lists text positions in the order they are read off the rails.
// Complexity: O(n) time, O(n) memory.
func (rf RailFence) readOrder(n int) []int {
	cycle := 2 * (rf.rails - 1)
	buckets := make([][]int, rf.rails)

	var (
		i    int
		m    int
		rail int
	)
	for i = 0; i < n; i++ {
		m = i % cycle
		rail = m
		if m >= rf.rails {
			rail = cycle - m
		}
		buckets[rail] = append(buckets[rail], i)
	}

	order := make([]int, 0, n)
	for _, b := range buckets {
		order = append(order, b...)
	}

	return order
}
