// SPDX-License-Identifier: MIT

// Package irrepdim evaluates the analytical dimension formulas of unitary
// group irreps. They serve as an independent check on a reduction: the
// dimensions of the U(3) irreps found in a U(N) irrep, each multiplied by
// its level dimensionality, must add up to the dimension of the U(N) irrep.
//
// Formulas:
//
//   - U(3): dim[f1,f2,f3] = (f1−f2+1)(f1−f3+2)(f2−f3+1)/2.
//   - U(N): dim[f] = Π_{1≤k<l≤N} (f_k − f_l + l − k)/(l − k), evaluated in
//     exact rational arithmetic since partial products are not integral.
package irrepdim
