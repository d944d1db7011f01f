// SPDX-License-Identifier: MIT

// Package reduction reduces a U(N) irrep into U(3) irreps for a
// harmonic-oscillator shell.
//
// 🚀 How it works
//
//	Starting from the top row of a Gelfand pattern (multiplicity form, see
//	package gelfand), every legal one-particle lowering step (package diffs)
//	is followed until the row is empty. Step number N−r+1, taken with r
//	particles left, removes Index quanta from the state r−1 of the shell and
//	adds Index·(nz, nx, ny) of that state to a running weight. Each complete
//	path ends on one U(3) weight; Multiplicities counts the paths per weight.
//
//	LevelDimensionality then turns weight multiplicities into the number of
//	times each U(3) irrep occurs, using a fixed six-term alternating sum.
//
// ⚙️ Usage:
//
//	r := reduction.New()
//	r.GenerateXYZ(2)                           // shell n=2, N=6
//	mult, err := r.Reduce(gelfand.Pattern{1, 0, 4, 0, 1}, 6)
//	for _, irrep := range mult.Irreps() {
//		fmt.Println(irrep.Weight, irrep.Multiplicity)
//	}
//
// Performance:
//
//   - Reduce visits every descent path once: O(P·N) time for P paths,
//     O(N) stack depth, O(W) memory for W distinct weights.
//   - ReduceParallel splits the upper levels of the tree across goroutines
//     and merges private tallies, giving identical results.
//
// Errors:
//
//   - ErrParticleMismatch: the row does not hold the declared particle count.
//   - ErrNoShell: GenerateXYZ was never called.
//   - ErrShellMismatch: the particle count is not the degeneracy of the shell.
//   - ErrUnknownWeight: LevelDimensionality was asked about a weight never reached.
package reduction
