// SPDX-License-Identifier: MIT

package reduction

import (
	"github.com/katalvlaran/untou3/diffs"
	"github.com/katalvlaran/untou3/internal/logger"
	"github.com/katalvlaran/untou3/oscillator"
)

// Weight is a U(3) weight (f1, f2, f3), accumulated along the z, x, y axes.
type Weight [3]int

// Irrep is a U(3) irrep found in a reduction.
type Irrep struct {
	// Weight holds the irrep labels, f1 ≥ f2 ≥ f3.
	Weight Weight
	// Multiplicity is the level dimensionality: how often the irrep occurs.
	Multiplicity int64
	// Dimension is the dimension of the U(3) irrep itself.
	Dimension uint64
}

// Multiplicities maps each reached weight to the number of descent paths
// ending on it. It is produced by one reduction and read-only afterwards.
type Multiplicities struct {
	counts map[Weight]uint64
}

// Reducer performs U(N) → U(3) reductions for one oscillator shell at a time.
//
// The lowering-step table may be shared between reducers. GenerateXYZ must
// not run concurrently with a reduction on the same Reducer.
type Reducer struct {
	table   *diffs.Table
	quanta  *oscillator.Quanta
	workers int
	log     logger.Logger
}

// shift is one term of the level-dimensionality correction.
type shift struct {
	delta Weight
	sign  int64
}

// correction lists the terms added to the base multiplicity mult[w].
var correction = [...]shift{
	{delta: Weight{1, 1, -2}, sign: +1},
	{delta: Weight{2, -1, -1}, sign: +1},
	{delta: Weight{2, 0, -2}, sign: -1},
	{delta: Weight{1, -1, 0}, sign: -1},
	{delta: Weight{0, 1, -1}, sign: -1},
}
