// SPDX-License-Identifier: MIT

package oscillator

import "gonum.org/v1/gonum/stat/combin"

// Axis selects one Cartesian direction of the quanta table.
type Axis int

const (
	// AxisZ holds nz.
	AxisZ Axis = iota
	// AxisX holds nx.
	AxisX
	// AxisY holds ny.
	AxisY
)

const panicShellNegative = "oscillator: shell index must be >= 0"

// Quanta stores the (nz, nx, ny) triples of one shell as three parallel slices.
type Quanta struct {
	shell int
	axes  [3][]int
}

// New returns the table of shell n. Panics if n < 0.
func New(n int) *Quanta {
	q := &Quanta{}
	q.Generate(n)

	return q
}

// Generate rebuilds q for shell n, reusing its storage. Panics if n < 0.
// Complexity: O(n²).
func (q *Quanta) Generate(n int) {
	if n < 0 {
		panic(panicShellNegative)
	}
	size := Degeneracy(n)
	for a := range q.axes {
		q.axes[a] = q.axes[a][:0]
		if cap(q.axes[a]) < size {
			q.axes[a] = make([]int, 0, size)
		}
	}

	for k := 0; k <= n; k++ {
		for nx := k; nx >= 0; nx-- {
			q.axes[AxisZ] = append(q.axes[AxisZ], n-k)
			q.axes[AxisX] = append(q.axes[AxisX], nx)
			q.axes[AxisY] = append(q.axes[AxisY], k-nx)
		}
	}
	q.shell = n
}

// Shell returns the shell index the table was generated for.
func (q *Quanta) Shell() int {
	return q.shell
}

// Len returns the number of states, Degeneracy(Shell()).
func (q *Quanta) Len() int {
	return len(q.axes[AxisZ])
}

// At returns the quanta of state i.
func (q *Quanta) At(i int) (nz, nx, ny int) {
	return q.axes[AxisZ][i], q.axes[AxisX][i], q.axes[AxisY][i]
}

// Axis returns the quanta along a for all states. The slice aliases q.
func (q *Quanta) Axis(a Axis) []int {
	return q.axes[a]
}

// Degeneracy returns the number of states in shell n, C(n+2, 2).
func Degeneracy(n int) int {
	return combin.Binomial(n+2, 2)
}

// ShellOf returns the shell whose degeneracy equals count, or
// ErrNotTriangular.
func ShellOf(count int) (int, error) {
	for n := 0; ; n++ {
		d := Degeneracy(n)
		if d == count {
			return n, nil
		}
		if d > count {
			return 0, ErrNotTriangular
		}
	}
}
