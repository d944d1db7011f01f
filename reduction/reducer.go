// SPDX-License-Identifier: MIT

package reduction

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/untou3/diffs"
	"github.com/katalvlaran/untou3/gelfand"
	"github.com/katalvlaran/untou3/oscillator"
)

// New returns a Reducer. Without WithTable it builds its own lowering-step
// table. GenerateXYZ must be called before reducing.
func New(opts ...Option) *Reducer {
	cfg := newConfig(opts...)

	return &Reducer{
		table:   cfg.table,
		workers: cfg.workers,
		log:     cfg.log,
	}
}

// GenerateXYZ (re)builds the oscillator quanta for shell n. Panics if n < 0.
func (r *Reducer) GenerateXYZ(n int) {
	if r.quanta == nil {
		r.quanta = oscillator.New(n)

		return
	}
	r.quanta.Generate(n)
}

// Table returns the lowering-step table used by r.
func (r *Reducer) Table() *diffs.Table {
	return r.table
}

// Quanta returns the current quanta table, nil before GenerateXYZ.
func (r *Reducer) Quanta() *oscillator.Quanta {
	return r.quanta
}

// Reduce walks every descent path of p and returns the per-weight path
// counts. count is the number of particles N in p.
//
// The empty row with count 0 needs no shell and yields one path at (0,0,0).
//
// Returns ErrParticleMismatch if gelfand.Sum(p) != count, ErrNoShell before
// GenerateXYZ, and ErrShellMismatch if count is not the degeneracy of the
// generated shell.
// Complexity: O(P·N) for P descent paths.
func (r *Reducer) Reduce(p gelfand.Pattern, count int) (*Multiplicities, error) {
	if err := r.check(p, count); err != nil {
		return nil, err
	}

	start := time.Now()
	w := r.newWalker()
	w.walk(p, count, Weight{})

	r.log.Debug("reduction finished",
		zap.Stringer("pattern", p),
		zap.Int("particles", count),
		zap.Int("weights", w.mult.Len()),
		zap.Uint64("paths", w.mult.Total()),
		zap.Duration("elapsed", time.Since(start)))

	return w.mult, nil
}

// check enforces the caller contract that is cheap to verify.
func (r *Reducer) check(p gelfand.Pattern, count int) error {
	if gelfand.Sum(p) != count {
		return ErrParticleMismatch
	}
	if count == 0 {
		return nil
	}
	if r.quanta == nil {
		return ErrNoShell
	}
	if oscillator.Degeneracy(r.quanta.Shell()) != count {
		return ErrShellMismatch
	}

	return nil
}

func (r *Reducer) newWalker() *walker {
	return &walker{table: r.table, quanta: r.quanta, mult: newMultiplicities()}
}

// walker holds the state of one depth-first traversal.
type walker struct {
	table  *diffs.Table
	quanta *oscillator.Quanta
	mult   *Multiplicities
}

// walk tallies every path from p (with remaining particles) down to the
// empty row, starting from the accumulated weight acc.
func (w *walker) walk(p gelfand.Pattern, remaining int, acc Weight) {
	steps := w.table.ByPattern(p)
	if len(steps) == 0 {
		w.mult.counts[acc]++

		return
	}

	nz, nx, ny := w.quanta.At(remaining - 1)
	for _, s := range steps {
		next := Weight{acc[0] + s.Index*nz, acc[1] + s.Index*nx, acc[2] + s.Index*ny}
		w.walk(gelfand.Add(p, s.Delta), remaining-1, next)
	}
}
