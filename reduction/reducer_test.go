package reduction_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/untou3/diffs"
	"github.com/katalvlaran/untou3/gelfand"
	"github.com/katalvlaran/untou3/internal/logger"
	"github.com/katalvlaran/untou3/irrepdim"
	"github.com/katalvlaran/untou3/reduction"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// reference is the U(6) irrep [4,2,2,2,2,0] on shell n=2.
var reference = gelfand.Pattern{1, 0, 4, 0, 1}

// sharedTable avoids rebuilding the lowering-step table in every test.
var sharedTable = diffs.New()

func newReducer(t *testing.T, shell int, opts ...reduction.Option) *reduction.Reducer {
	t.Helper()
	r := reduction.New(append([]reduction.Option{reduction.WithTable(sharedTable)}, opts...)...)
	r.GenerateXYZ(shell)

	return r
}

// TestReduce_Reference checks the end-to-end total of 405.
func TestReduce_Reference(t *testing.T) {
	r := newReducer(t, 2)
	mult, err := r.Reduce(reference, 6)
	require.NoError(t, err)

	assert.Equal(t, 61, mult.Len())
	assert.Equal(t, uint64(405), mult.Total())
	assert.Equal(t, int64(405), mult.TotalDimension())

	dim, err := irrepdim.UN(reference.Labels())
	require.NoError(t, err)
	assert.Equal(t, dim.Int64(), mult.TotalDimension())
}

// TestReduce_ReferenceIrreps pins the irrep content and its ordering.
func TestReduce_ReferenceIrreps(t *testing.T) {
	r := newReducer(t, 2)
	mult, err := r.Reduce(reference, 6)
	require.NoError(t, err)

	type irrep struct {
		W reduction.Weight
		D int64
	}
	var got []irrep
	for _, ir := range mult.Irreps() {
		got = append(got, irrep{W: ir.Weight, D: ir.Multiplicity})
		assert.Equal(t, irrepdim.U3(ir.Weight), ir.Dimension)
	}
	want := []irrep{
		{W: reduction.Weight{12, 8, 4}, D: 1},
		{W: reduction.Weight{12, 6, 6}, D: 1},
		{W: reduction.Weight{11, 8, 5}, D: 1},
		{W: reduction.Weight{11, 7, 6}, D: 1},
		{W: reduction.Weight{10, 10, 4}, D: 1},
		{W: reduction.Weight{10, 9, 5}, D: 1},
		{W: reduction.Weight{10, 8, 6}, D: 3},
		{W: reduction.Weight{9, 8, 7}, D: 1},
		{W: reduction.Weight{8, 8, 8}, D: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("irreps mismatch (-want +got):\n%s", diff)
	}
}

// TestReduce_TotalEqualsPathCount checks no path is lost or counted twice.
func TestReduce_TotalEqualsPathCount(t *testing.T) {
	for _, tc := range []struct {
		pattern gelfand.Pattern
		shell   int
		paths   uint64
	}{
		{pattern: gelfand.Pattern{0, 0, 0, 0, 1}, shell: 0, paths: 1},
		{pattern: gelfand.Pattern{0, 0, 1, 0, 2}, shell: 1, paths: 6},
		{pattern: gelfand.Pattern{0, 1, 1, 1, 0}, shell: 1, paths: 8},
		{pattern: gelfand.Pattern{2, 0, 0, 0, 1}, shell: 1, paths: 15},
		{pattern: reference, shell: 2, paths: 405},
		{pattern: gelfand.Pattern{0, 0, 3, 3, 4}, shell: 3, paths: 19800},
	} {
		r := newReducer(t, tc.shell)
		mult, err := r.Reduce(tc.pattern, gelfand.Sum(tc.pattern))
		require.NoError(t, err)
		assert.Equal(t, tc.paths, mult.Total(), "pattern %v", tc.pattern)
		assert.Equal(t, tc.paths, reduction.CountPaths(sharedTable, tc.pattern), "pattern %v", tc.pattern)
		assert.Equal(t, int64(tc.paths), mult.TotalDimension(), "pattern %v", tc.pattern)
	}
}

// TestReduce_SingleParticle is the one-path boundary case.
func TestReduce_SingleParticle(t *testing.T) {
	r := newReducer(t, 0)
	mult, err := r.Reduce(gelfand.Pattern{0, 0, 0, 0, 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, map[reduction.Weight]uint64{{0, 0, 0}: 1}, mult.Map())
}

// TestReduce_EmptyPattern records the accumulated weight of the empty path.
func TestReduce_EmptyPattern(t *testing.T) {
	r := reduction.New(reduction.WithTable(sharedTable))
	mult, err := r.Reduce(gelfand.Pattern{}, 0)
	require.NoError(t, err)
	assert.Equal(t, map[reduction.Weight]uint64{{0, 0, 0}: 1}, mult.Map())
}

// TestReduce_ShellOneWeights pins the full multiplicity map of [2,0,0] on shell 1.
func TestReduce_ShellOneWeights(t *testing.T) {
	r := newReducer(t, 1)
	mult, err := r.Reduce(gelfand.Pattern{0, 0, 1, 0, 2}, 3)
	require.NoError(t, err)

	want := map[reduction.Weight]uint64{
		{2, 0, 0}: 1, {1, 1, 0}: 1, {1, 0, 1}: 1,
		{0, 2, 0}: 1, {0, 1, 1}: 1, {0, 0, 2}: 1,
	}
	if diff := cmp.Diff(want, mult.Map()); diff != "" {
		t.Fatalf("multiplicities mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, mult.Irreps(), 1)
	assert.Equal(t, reduction.Weight{2, 0, 0}, mult.Irreps()[0].Weight)
}

func TestReduce_ContractErrors(t *testing.T) {
	r := reduction.New(reduction.WithTable(sharedTable))
	_, err := r.Reduce(reference, 6)
	assert.ErrorIs(t, err, reduction.ErrNoShell)

	r.GenerateXYZ(2)
	_, err = r.Reduce(reference, 5)
	assert.ErrorIs(t, err, reduction.ErrParticleMismatch)

	r.GenerateXYZ(1)
	_, err = r.Reduce(reference, 6)
	assert.ErrorIs(t, err, reduction.ErrShellMismatch)

	_, err = r.ReduceParallel(context.Background(), reference, 6)
	assert.ErrorIs(t, err, reduction.ErrShellMismatch)
}

// TestReduceParallel_MatchesSerial compares both traversals on several shells.
func TestReduceParallel_MatchesSerial(t *testing.T) {
	for _, tc := range []struct {
		pattern gelfand.Pattern
		shell   int
	}{
		{pattern: gelfand.Pattern{}, shell: 0},
		{pattern: gelfand.Pattern{0, 0, 0, 0, 1}, shell: 0},
		{pattern: gelfand.Pattern{0, 1, 1, 1, 0}, shell: 1},
		{pattern: reference, shell: 2},
		{pattern: gelfand.Pattern{0, 0, 3, 3, 4}, shell: 3},
	} {
		for _, workers := range []int{1, 3, 8} {
			r := newReducer(t, tc.shell, reduction.WithWorkers(workers))
			serial, err := r.Reduce(tc.pattern, gelfand.Sum(tc.pattern))
			require.NoError(t, err)
			parallel, err := r.ReduceParallel(context.Background(), tc.pattern, gelfand.Sum(tc.pattern))
			require.NoError(t, err)

			if diff := cmp.Diff(serial.Map(), parallel.Map()); diff != "" {
				t.Fatalf("pattern %v workers %d (-serial +parallel):\n%s", tc.pattern, workers, diff)
			}
			assert.Equal(t, serial.Fingerprint(), parallel.Fingerprint())
		}
	}
}

func TestReduceParallel_Cancelled(t *testing.T) {
	r := newReducer(t, 2, reduction.WithWorkers(2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ReduceParallel(ctx, reference, 6)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReduce_LogsSummary(t *testing.T) {
	log, logs := logger.NewObserverLogger("debug")
	r := newReducer(t, 2, reduction.WithLogger(log))
	_, err := r.Reduce(reference, 6)
	require.NoError(t, err)

	entries := logs.FilterMessage("reduction finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "[1, 0, 4, 0, 1]", fields["pattern"])
	assert.Equal(t, uint64(405), fields["paths"])
	assert.Equal(t, int64(61), fields["weights"])
}

func TestNew_BuildsOwnTable(t *testing.T) {
	r := reduction.New()
	require.NotNil(t, r.Table())
	assert.Nil(t, r.Quanta())
	assert.Equal(t, sharedTable.Len(), r.Table().Len())

	r.GenerateXYZ(2)
	require.NotNil(t, r.Quanta())
	assert.Equal(t, 2, r.Quanta().Shell())
}

func TestWithWorkers_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { reduction.WithWorkers(0) })
}
