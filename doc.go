// SPDX-License-Identifier: MIT

// Package untou3 reduces irreducible representations of U(N) into
// irreducible representations of U(3), as needed when a harmonic-oscillator
// shell-model basis is organized by SU(3) symmetry.
//
// 🚀 What does it compute?
//
//	A U(N) irrep [f] with labels in [0, 4] is written in multiplicity form
//	R = [r4, r3, r2, r1, r0]. Every Gelfand pattern of [f] is a sequence of
//	one-particle lowering steps; weighting each step with the quanta of one
//	oscillator state yields a U(3) weight. Counting patterns per weight and
//	applying a six-term correction gives how often each U(3) irrep occurs.
//
// Everything is organized under small subpackages:
//
//	gelfand/     pattern rows in multiplicity form, masks, labels
//	diffs/       the eager lowering-step table keyed by mask
//	oscillator/  (nz, nx, ny) quanta of one shell, in traversal order
//	reduction/   the descent traversal, multiplicities, level dimensionality
//	irrepdim/    analytical U(3) and U(N) dimensions for cross-checks
//	cmd/         the untou3 command line
//
// Quick example (shell n=2, N=6, [f] = [4,2,2,2,2,0]):
//
//	r := reduction.New()
//	r.GenerateXYZ(2)
//	mult, _ := r.Reduce(gelfand.Pattern{1, 0, 4, 0, 1}, 6)
//	fmt.Println(mult.TotalDimension()) // 405 = dim[4,2,2,2,2,0]
//
//	go install github.com/katalvlaran/untou3/cmd/untou3@latest
package untou3
