// SPDX-License-Identifier: MIT

// Package gelfand encodes one row of a Gelfand pattern in multiplicity form
// and converts it to and from the canonical bitmask used as a cache key.
//
// What:
//
//   - Pattern holds MaxLabel+1 counts; index k counts the labels equal to
//     MaxLabel−k. The U(6) irrep [4,2,2,2,2,0] is therefore Pattern{1, 0, 4, 0, 1}.
//   - Encode keeps only which positions are nonzero (bit MaxLabel−k for index k).
//   - Decode returns the canonical 0/1 representative of a mask.
//   - Add applies a lowering delta to a row.
//
// Why:
//
//	Lowering a row by one particle depends only on where its nonzero counts
//	sit, not on their magnitudes, so a table indexed by Mask covers every row.
//
// Complexity:
//
//   - Encode, Decode, Add, Sum: O(MaxLabel).
//   - FromLabels, Labels: O(N) for N labels.
//
// Errors:
//
//   - ErrLabelRange: a label lies outside [0, MaxLabel].
//   - ErrNotNonIncreasing: labels of an irrep must be sorted descending.
//   - ErrFieldCount: Parse got a wrong number of fields.
//   - ErrBadNumber: Parse got a field that is not a non-negative integer.
package gelfand
