// SPDX-License-Identifier: MIT

package irrepdim

import "math/big"

// U3 returns the dimension of the U(3) irrep [f1,f2,f3], or 0 when
// f1 ≥ f2 ≥ f3 does not hold.
// Complexity: O(1).
func U3(f [3]int) uint64 {
	if f[0] < f[1] || f[1] < f[2] {
		return 0
	}
	a := uint64(f[0] - f[1] + 1)
	b := uint64(f[0] - f[2] + 2)
	c := uint64(f[1] - f[2] + 1)

	return a * b * c / 2
}

// UN returns the dimension of the U(N) irrep with the given labels,
// N = len(labels). An empty label list is the trivial irrep of dimension 1.
//
// Returns ErrNotDominant if the labels are not non-increasing.
// Complexity: O(N²) big-rational multiplications.
func UN(labels []int) (*big.Int, error) {
	for i := 1; i < len(labels); i++ {
		if labels[i] > labels[i-1] {
			return nil, ErrNotDominant
		}
	}

	result := big.NewRat(1, 1)
	factor := new(big.Rat)
	for l := 2; l <= len(labels); l++ {
		for k := 1; k <= l-1; k++ {
			factor.SetFrac64(int64(labels[k-1]-labels[l-1]+l-k), int64(l-k))
			result.Mul(result, factor)
		}
	}
	if !result.IsInt() {
		return nil, ErrNonIntegral
	}

	return new(big.Int).Set(result.Num()), nil
}
