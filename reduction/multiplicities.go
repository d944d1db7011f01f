// SPDX-License-Identifier: MIT

package reduction

import (
	"encoding/binary"
	"maps"

	"github.com/cespare/xxhash/v2"
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/untou3/irrepdim"
)

func newMultiplicities() *Multiplicities {
	return &Multiplicities{counts: make(map[Weight]uint64)}
}

// IsDominant reports whether f1 ≥ f2 ≥ f3.
func (w Weight) IsDominant() bool {
	return w[0] >= w[1] && w[1] >= w[2]
}

// Add returns w+d componentwise.
func (w Weight) Add(d Weight) Weight {
	return Weight{w[0] + d[0], w[1] + d[1], w[2] + d[2]}
}

// Get returns the multiplicity of w, 0 if it was never reached.
func (m *Multiplicities) Get(w Weight) uint64 {
	return m.counts[w]
}

// Len returns the number of distinct weights.
func (m *Multiplicities) Len() int {
	return len(m.counts)
}

// Total returns the number of descent paths, i.e. the sum of all multiplicities.
func (m *Multiplicities) Total() uint64 {
	var total uint64
	for _, c := range m.counts {
		total += c
	}

	return total
}

// Map returns a copy of the underlying weight → multiplicity map.
func (m *Multiplicities) Map() map[Weight]uint64 {
	return maps.Clone(m.counts)
}

// Merge adds the multiplicities of other into m.
func (m *Multiplicities) Merge(other *Multiplicities) {
	for w, c := range other.counts {
		m.counts[w] += c
	}
}

// Range calls fn for every weight in descending lexicographic order until
// fn returns false.
// Complexity: O(W log W).
func (m *Multiplicities) Range(fn func(Weight, uint64) bool) {
	it := m.ordered().Iterator()
	for it.Next() {
		if !fn(it.Key().(Weight), it.Value().(uint64)) {
			return
		}
	}
}

// LevelDimensionality returns the multiplicity of the U(3) irrep w in the
// reduced representation:
//
//	D(w) = m(w) + m(w+(1,1,−2)) + m(w+(2,−1,−1))
//	            − m(w+(2,0,−2)) − m(w+(1,−1,0)) − m(w+(0,1,−1))
//
// Missing shifted weights count as 0. A non-dominant w yields 0 without
// error; a dominant w that was never reached yields ErrUnknownWeight.
// Complexity: O(1).
func (m *Multiplicities) LevelDimensionality(w Weight) (int64, error) {
	if !w.IsDominant() {
		return 0, nil
	}
	base, ok := m.counts[w]
	if !ok {
		return 0, ErrUnknownWeight
	}

	d := int64(base)
	for _, t := range correction {
		d += t.sign * int64(m.counts[w.Add(t.delta)])
	}

	return d, nil
}

// Irreps returns every U(3) irrep with nonzero level dimensionality,
// ordered by descending (f1, f2, f3).
// Complexity: O(W log W).
func (m *Multiplicities) Irreps() []Irrep {
	var out []Irrep
	m.Range(func(w Weight, _ uint64) bool {
		// w is a key of m, so only the dominance check can zero it.
		d, _ := m.LevelDimensionality(w)
		if d != 0 {
			out = append(out, Irrep{Weight: w, Multiplicity: d, Dimension: irrepdim.U3(w)})
		}

		return true
	})

	return out
}

// TotalDimension returns Σ D(w)·dim(w) over all irreps. For a complete
// reduction it equals the dimension of the original U(N) irrep.
func (m *Multiplicities) TotalDimension() int64 {
	var total int64
	for _, irrep := range m.Irreps() {
		total += irrep.Multiplicity * int64(irrep.Dimension)
	}

	return total
}

// Fingerprint hashes the ordered (weight, multiplicity) entries. Equal
// multiplicity maps have equal fingerprints regardless of how they were built.
func (m *Multiplicities) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 4*8)
	m.Range(func(w Weight, c uint64) bool {
		buf = buf[:0]
		for _, f := range w {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(f)))
		}
		buf = binary.LittleEndian.AppendUint64(buf, c)
		_, _ = d.Write(buf)

		return true
	})

	return d.Sum64()
}

// ordered loads the counts into a red-black tree keyed by descending weight.
func (m *Multiplicities) ordered() *redblacktree.Tree {
	tree := redblacktree.NewWith(compareWeightsDesc)
	for w, c := range m.counts {
		tree.Put(w, c)
	}

	return tree
}

// compareWeightsDesc orders weights by descending f1, then f2, then f3.
func compareWeightsDesc(a, b interface{}) int {
	wa, wb := a.(Weight), b.(Weight)
	for i := range wa {
		switch {
		case wa[i] > wb[i]:
			return -1
		case wa[i] < wb[i]:
			return 1
		}
	}

	return 0
}
