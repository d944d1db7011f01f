// SPDX-License-Identifier: MIT

// Package diffs precomputes every admissible one-particle lowering step of a
// Gelfand-pattern row, keyed by the row's nonzero-position mask.
//
// 🚀 What is a lowering step?
//
//	Removing one particle from a U(N) row [f] gives a U(N−1) row [f'] that
//	interlaces it: f_1 ≥ f'_1 ≥ f_2 ≥ … ≥ f'_{N−1} ≥ f_N. In multiplicity
//	form every group of equal labels loses one entry, and between two
//	consecutive groups exactly one entry lands anywhere in the closed range
//	spanned by them. A Step stores that change as a Delta (entries sum to −1)
//	and the label sum removed by it as Index.
//
// ⚙️ Usage:
//
//	tbl := diffs.New()
//	for _, s := range tbl.ByPattern(gelfand.Pattern{1, 0, 4, 0, 1}) {
//		lower := gelfand.Add(row, s.Delta)
//		_ = lower
//	}
//
// Performance:
//
//   - Construction: O(2^Size · S) where S is the largest step count per mask.
//   - ByMask / ByPattern: O(1), returning views into table-owned storage.
//
// The table is immutable after New and safe for concurrent readers.
package diffs
