// SPDX-License-Identifier: MIT

package diffs

import (
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/katalvlaran/untou3/gelfand"
)

// New eagerly enumerates the lowering steps of all gelfand.MaskCount masks.
//
// Steps of one mask are stored contiguously in enumeration order; masks are
// stored in increasing order. With WithWorkers(n>1) masks are generated on a
// bounded pool and compacted afterwards, giving the same layout.
// Complexity: O(2^Size · S) time and memory.
func New(opts ...Option) *Table {
	cfg := newConfig(opts...)

	perMask := make([][]Step, gelfand.MaskCount)
	if cfg.workers > 1 {
		p := pool.New().WithMaxGoroutines(cfg.workers)
		for m := 0; m < gelfand.MaskCount; m++ {
			m := m
			p.Go(func() {
				perMask[m] = generate(gelfand.Mask(m))
			})
		}
		p.Wait()
	} else {
		for m := 0; m < gelfand.MaskCount; m++ {
			perMask[m] = generate(gelfand.Mask(m))
		}
	}

	total := 0
	for _, s := range perMask {
		total += len(s)
	}

	t := &Table{steps: make([]Step, 0, total)}
	for m, s := range perMask {
		t.first[m] = len(t.steps)
		t.count[m] = len(s)
		t.steps = append(t.steps, s...)
	}

	cfg.log.Debug("lowering-step table built",
		zap.Int("masks", gelfand.MaskCount),
		zap.Int("steps", total),
		zap.Int("workers", cfg.workers))

	return t
}

// ByMask returns the steps for mask m. The slice is empty iff m == 0.
// It aliases table storage and must not be modified.
func (t *Table) ByMask(m gelfand.Mask) []Step {
	c := t.count[m]
	if c == 0 {
		return nil
	}
	f := t.first[m]

	return t.steps[f : f+c : f+c]
}

// ByPattern returns the steps for the mask of p.
func (t *Table) ByPattern(p gelfand.Pattern) []Step {
	return t.ByMask(gelfand.Encode(p))
}

// Count returns the number of steps stored for mask m.
func (t *Table) Count(m gelfand.Mask) int {
	return t.count[m]
}

// Len returns the total number of steps in the table.
func (t *Table) Len() int {
	return len(t.steps)
}

// Index returns the label sum removed by delta: Σ_k −delta[k]·(MaxLabel−k).
// A result outside [0, MaxLabel] means the step generator is broken; Index
// panics in that case.
func Index(delta gelfand.Pattern) int {
	idx := 0
	for k := 0; k < gelfand.Size; k++ {
		idx += int(delta[k]) * (gelfand.MaxLabel - k) * -1
	}
	if idx < 0 || idx > gelfand.MaxLabel {
		panic(fmt.Sprintf("diffs: derived index %d of %v outside [0, %d]", idx, delta, gelfand.MaxLabel))
	}

	return idx
}

// generate enumerates the steps of one canonical row.
//
// The working delta starts as the negation of the row. Walking the nonzero
// positions pairwise, one unit is added at every index between the current
// and the next nonzero position; when no next position exists the delta is
// complete. A single working buffer is incremented before descending and
// restored on return.
func generate(m gelfand.Mask) []Step {
	in := gelfand.Decode(m)

	first := nextNonzero(in, 0)
	if first == gelfand.Size {
		return nil
	}

	var diff gelfand.Pattern
	for k := range in {
		diff[k] = -in[k]
	}

	out := make([]Step, 0, stepCount(in))
	var walk func(from int)
	walk = func(from int) {
		second := nextNonzero(in, from+1)
		if second == gelfand.Size {
			out = append(out, Step{Delta: diff, Index: Index(diff)})

			return
		}
		for i := from; i <= second; i++ {
			diff[i]++
			walk(second)
			diff[i]--
		}
	}
	walk(first)

	return out
}

// nextNonzero returns the first index ≥ from with a nonzero entry, or Size.
func nextNonzero(p gelfand.Pattern, from int) int {
	for from < gelfand.Size && p[from] == 0 {
		from++
	}

	return from
}

// stepCount is Π (gap+1) over consecutive nonzero positions of p; 1 for a
// single nonzero position, 0 for the empty row.
func stepCount(p gelfand.Pattern) int {
	prev := nextNonzero(p, 0)
	if prev == gelfand.Size {
		return 0
	}
	n := 1
	for next := nextNonzero(p, prev+1); next < gelfand.Size; next = nextNonzero(p, next+1) {
		n *= next - prev + 1
		prev = next
	}

	return n
}
