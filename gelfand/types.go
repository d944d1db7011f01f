// SPDX-License-Identifier: MIT

package gelfand

// MaxLabel is the largest U(N) label a row may carry. It fixes the row
// length to Size and the mask space to 2^Size.
const MaxLabel = 4

// Size is the number of counts stored in a Pattern.
const Size = MaxLabel + 1

// MaskCount is the number of distinct masks, 2^Size.
const MaskCount = 1 << Size

// Pattern is one Gelfand-pattern row in multiplicity form.
// Pattern[k] is the number of labels equal to MaxLabel−k.
type Pattern [Size]int16

// Mask records which positions of a Pattern are nonzero; bit MaxLabel−k
// stands for index k. Values lie in [0, MaskCount).
type Mask uint32
