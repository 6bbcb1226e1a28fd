package montecarlo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmc/montecarlo"
)

// TestTourValidate_Accepts covers well-formed closed tours.
func TestTourValidate_Accepts(t *testing.T) {
	cases := map[string]struct {
		tour montecarlo.Tour
		n    int
	}{
		"single city": {tour: montecarlo.Tour{0, 0}, n: 1},
		"two cities":  {tour: montecarlo.Tour{1, 0, 1}, n: 2},
		"four cities": {tour: montecarlo.Tour{2, 0, 3, 1, 2}, n: 4},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, tc.tour.Validate(tc.n))
		})
	}
}

// TestTourValidate_Rejects covers every invariant violation separately.
func TestTourValidate_Rejects(t *testing.T) {
	cases := map[string]struct {
		tour montecarlo.Tour
		n    int
	}{
		"nil tour":          {tour: nil, n: 3},
		"n below one":       {tour: montecarlo.Tour{0, 0}, n: 0},
		"too short":         {tour: montecarlo.Tour{0, 1, 0}, n: 3},
		"too long":          {tour: montecarlo.Tour{0, 1, 2, 3, 0}, n: 3},
		"not closed":        {tour: montecarlo.Tour{0, 1, 2, 1}, n: 3},
		"index out of range": {tour: montecarlo.Tour{0, 3, 2, 0}, n: 3},
		"negative index":    {tour: montecarlo.Tour{0, -1, 2, 0}, n: 3},
		"duplicate city":    {tour: montecarlo.Tour{0, 1, 1, 0}, n: 3},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, tc.tour.Validate(tc.n), montecarlo.ErrBadTour)
		})
	}
}

// TestTourClone verifies independence of the copy.
func TestTourClone(t *testing.T) {
	orig := montecarlo.Tour{0, 2, 1, 0}
	cp := orig.Clone()

	require.Equal(t, orig, cp)

	cp[1] = 99
	require.Equal(t, montecarlo.Tour{0, 2, 1, 0}, orig, "clone must not alias the original")

	require.Nil(t, montecarlo.Tour(nil).Clone())
}

// TestTourEqualModuloRotation checks cyclic-order equality under different
// starting cities, and inequality for reversed or different orders.
func TestTourEqualModuloRotation(t *testing.T) {
	base := montecarlo.Tour{0, 1, 2, 3, 0}    // 0→1→2→3→0
	rotated := montecarlo.Tour{2, 3, 0, 1, 2} // same cycle, started at 2
	reversed := montecarlo.Tour{0, 3, 2, 1, 0}
	other := montecarlo.Tour{0, 2, 1, 3, 0}

	require.True(t, base.EqualModuloRotation(rotated))
	require.True(t, rotated.EqualModuloRotation(base))
	require.False(t, base.EqualModuloRotation(reversed), "direction matters")
	require.False(t, base.EqualModuloRotation(other))
	require.False(t, base.EqualModuloRotation(montecarlo.Tour{0, 1, 2, 0}), "length mismatch")
}

// TestTourString pins the rendering used by reports and failures.
func TestTourString(t *testing.T) {
	require.Equal(t, "[2 0 3 1 | 2]", montecarlo.Tour{2, 0, 3, 1, 2}.String())
	require.Equal(t, "[]", montecarlo.Tour{}.String())
}
