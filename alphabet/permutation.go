// SPDX-License-Identifier: MIT
// Package: cryptex/alphabet
//
// permutation.go — 1-based permutation checks and conversions shared by the
// transposition and fractionation packages.
//
// Design:
//   - No logging, no panics on user input; only ErrInvalidPermutation.
//   - O(n) time, one O(n) marker slice.

package alphabet

// ValidatePermutation checks that perm is a permutation of 1..len(perm)
// with no duplicates or gaps. An empty permutation is rejected.
func ValidatePermutation(perm []int) error {
	n := len(perm)
	if n == 0 {
		return Errorf("ValidatePermutation", ErrInvalidPermutation, "empty")
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element: not a permutation of 1..n.
		if v < 1 || v > n {
			return Errorf("ValidatePermutation", ErrInvalidPermutation, "%v: %d not in 1..%d", perm, v, n)
		}
		if seen[v-1] {
			return Errorf("ValidatePermutation", ErrInvalidPermutation, "%v: duplicate %d", perm, v)
		}
		seen[v-1] = true
	}

	return nil
}

// ZeroBased validates a 1-based permutation and returns its 0-based copy.
func ZeroBased(perm []int) ([]int, error) {
	if err := ValidatePermutation(perm); err != nil {
		return nil, err
	}
	out := make([]int, len(perm))
	for i, v := range perm {
		out[i] = v - 1
	}

	return out, nil
}

// Invert returns q with q[p[i]] = i for a 0-based permutation p.
// The caller guarantees p is a valid 0-based permutation.
func Invert(p []int) []int {
	q := make([]int, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q
}
