package irrepdim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/untou3/irrepdim"
)

func TestU3(t *testing.T) {
	for _, tc := range []struct {
		name string
		f    [3]int
		want uint64
	}{
		{name: "scalar", f: [3]int{0, 0, 0}, want: 1},
		{name: "fundamental", f: [3]int{1, 0, 0}, want: 3},
		{name: "antifundamental", f: [3]int{1, 1, 0}, want: 3},
		{name: "octet", f: [3]int{2, 1, 0}, want: 8},
		{name: "decuplet", f: [3]int{3, 0, 0}, want: 10},
		{name: "shifted octet", f: [3]int{5, 4, 3}, want: 8},
		{name: "non-dominant", f: [3]int{1, 2, 0}, want: 0},
		{name: "non-dominant tail", f: [3]int{2, 0, 1}, want: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, irrepdim.U3(tc.f))
		})
	}
}

// TestUN_Reference checks the U(6) irrep [4,2,2,2,2,0].
func TestUN_Reference(t *testing.T) {
	d, err := irrepdim.UN([]int{4, 2, 2, 2, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, int64(405), d.Int64())
}

func TestUN_KnownValues(t *testing.T) {
	for _, tc := range []struct {
		labels []int
		want   int64
	}{
		{labels: nil, want: 1},
		{labels: []int{3}, want: 1},
		{labels: []int{1, 0, 0}, want: 3},
		{labels: []int{2, 1, 0}, want: 8},
		{labels: []int{1, 1, 0, 0}, want: 6},
		{labels: []int{1, 0, 0, 0, 0, 0}, want: 6},
		{labels: []int{2, 2, 2}, want: 1},
	} {
		d, err := irrepdim.UN(tc.labels)
		require.NoError(t, err)
		assert.Equal(t, tc.want, d.Int64(), "labels %v", tc.labels)
	}
}

// TestUN_AgreesWithU3 compares both formulas on U(3) irreps.
func TestUN_AgreesWithU3(t *testing.T) {
	for f1 := 0; f1 <= 5; f1++ {
		for f2 := 0; f2 <= f1; f2++ {
			for f3 := 0; f3 <= f2; f3++ {
				d, err := irrepdim.UN([]int{f1, f2, f3})
				require.NoError(t, err)
				assert.Equal(t, irrepdim.U3([3]int{f1, f2, f3}), d.Uint64())
			}
		}
	}
}

func TestUN_NotDominant(t *testing.T) {
	_, err := irrepdim.UN([]int{1, 2})
	assert.ErrorIs(t, err, irrepdim.ErrNotDominant)
}
