// SPDX-License-Identifier: MIT

package gelfand

import "errors"

var (
	// ErrLabelRange indicates a U(N) label outside [0, MaxLabel].
	ErrLabelRange = errors.New("gelfand: label out of range")

	// ErrNotNonIncreasing indicates irrep labels that are not sorted descending.
	ErrNotNonIncreasing = errors.New("gelfand: labels must be non-increasing")

	// ErrFieldCount indicates Parse received other than Size fields.
	ErrFieldCount = errors.New("gelfand: wrong number of pattern fields")

	// ErrBadNumber indicates a field that does not parse as a non-negative count.
	ErrBadNumber = errors.New("gelfand: invalid pattern field")
)
