// SPDX-License-Identifier: MIT

package irrepdim

import "errors"

var (
	// ErrNotDominant indicates labels that are not sorted descending.
	ErrNotDominant = errors.New("irrepdim: labels must be non-increasing")

	// ErrNonIntegral indicates the product formula did not reduce to an
	// integer; it cannot happen for non-increasing labels.
	ErrNonIntegral = errors.New("irrepdim: dimension is not integral")
)
