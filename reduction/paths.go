// SPDX-License-Identifier: MIT

package reduction

import (
	"github.com/katalvlaran/untou3/diffs"
	"github.com/katalvlaran/untou3/gelfand"
)

// CountPaths returns the number of descent paths from p to the empty row,
// ignoring weights. It equals the number of Gelfand patterns with top row p,
// i.e. the dimension of the U(N) irrep.
// Complexity: O(P·N) for P paths.
func CountPaths(t *diffs.Table, p gelfand.Pattern) uint64 {
	steps := t.ByPattern(p)
	if len(steps) == 0 {
		return 1
	}
	var n uint64
	for _, s := range steps {
		n += CountPaths(t, gelfand.Add(p, s.Delta))
	}

	return n
}

// Lower returns the rows reachable from p by one lowering step, in table order.
func Lower(t *diffs.Table, p gelfand.Pattern) []gelfand.Pattern {
	steps := t.ByPattern(p)
	out := make([]gelfand.Pattern, 0, len(steps))
	for _, s := range steps {
		out = append(out, gelfand.Add(p, s.Delta))
	}

	return out
}
