// SPDX-License-Identifier: MIT

package gelfand

import (
	"strconv"
	"strings"
)

// Encode returns the mask of nonzero positions of p.
// Complexity: O(Size).
func Encode(p Pattern) Mask {
	var m Mask
	for k := 0; k < Size; k++ {
		if p[k] != 0 {
			m |= 1 << (MaxLabel - k)
		}
	}

	return m
}

// Decode returns the canonical 0/1 pattern of m, so that Encode(Decode(m)) == m.
// Magnitudes of the row that produced m are not recovered.
// Complexity: O(Size).
func Decode(m Mask) Pattern {
	var p Pattern
	for k := 0; k < Size; k++ {
		p[k] = int16((m >> (MaxLabel - k)) & 1)
	}

	return p
}

// Add returns the elementwise sum a+b.
func Add(a, b Pattern) Pattern {
	var res Pattern
	for k := range res {
		res[k] = a[k] + b[k]
	}

	return res
}

// Sum returns the number of particles (labels) stored in p.
func Sum(p Pattern) int {
	total := 0
	for _, c := range p {
		total += int(c)
	}

	return total
}

// IsZero reports whether p is the empty row.
func IsZero(p Pattern) bool {
	return p == Pattern{}
}

// FromLabels converts U(N) irrep labels [f_1 ≥ f_2 ≥ … ≥ f_N] into
// multiplicity form.
//
// Returns ErrLabelRange for a label outside [0, MaxLabel] and
// ErrNotNonIncreasing if the labels are not sorted descending.
// Complexity: O(N).
func FromLabels(labels []int) (Pattern, error) {
	var p Pattern
	prev := MaxLabel
	for _, f := range labels {
		if f < 0 || f > MaxLabel {
			return Pattern{}, ErrLabelRange
		}
		if f > prev {
			return Pattern{}, ErrNotNonIncreasing
		}
		prev = f
		p[MaxLabel-f]++
	}

	return p, nil
}

// Labels expands p into the U(N) irrep labels it represents, largest first.
// For Pattern{1, 0, 4, 0, 1} it returns [4 2 2 2 2 0].
func (p Pattern) Labels() []int {
	labels := make([]int, 0, Sum(p))
	for k := 0; k < Size; k++ {
		for c := int16(0); c < p[k]; c++ {
			labels = append(labels, MaxLabel-k)
		}
	}

	return labels
}

// String renders p as "[1, 0, 4, 0, 1]".
func (p Pattern) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for k, c := range p {
		if k > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	sb.WriteByte(']')

	return sb.String()
}

// Parse reads Size decimal counts, r_MaxLabel first.
//
// Returns ErrFieldCount if len(fields) != Size and ErrBadNumber for a field
// that is not an integer in [0, 32767].
func Parse(fields []string) (Pattern, error) {
	if len(fields) != Size {
		return Pattern{}, ErrFieldCount
	}
	var p Pattern
	for k, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 16)
		if err != nil || v < 0 {
			return Pattern{}, ErrBadNumber
		}
		p[k] = int16(v)
	}

	return p, nil
}
