// Package montecarlo - tour length evaluation.
//
// Design:
//   - Pure function, no side effects: the same (table, tour) pair always
//     yields the same length.
//   - Defensive sentinels: indices are range-checked even though the
//     sampler cannot emit an invalid tour, so externally supplied tours
//     fail loudly instead of reading garbage.
//   - Stable summation: lengths are rounded to 1e-9 to avoid
//     cross-platform floating-point drift in comparisons and reports.
//
// Complexity: O(n) time for a tour of length n+1, O(1) extra space.
package montecarlo

import (
	"math"

	"github.com/katalvlaran/tspmc/distance"
)

// lengthScale controls final length stabilization precision (1e-9).
const lengthScale = 1e9

// TourLength sums the edge distances along the closed tour:
// table[tour[i]][tour[i+1]] for i in 0..n-1.
//
// Contract:
//   - table non-nil; tour closed with len >= 2.
//   - Every index within [0, table.Size()); violations yield ErrBadTour.
//
// Complexity: O(n).
func TourLength(table *distance.Table, tour Tour) (float64, error) {
	if table == nil {
		return 0, ErrNilTable
	}
	if len(tour) < 2 || tour[0] != tour[len(tour)-1] {
		return 0, ErrBadTour
	}

	var (
		n   = table.Size()
		L   = len(tour) - 1 // number of edges in the closed cycle
		sum float64
		i   int
		u   int
		v   int
		w   float64
		err error
	)

	for i = 0; i < L; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrBadTour
		}

		w, err = table.At(u, v)
		if err != nil {
			// At only fails on out-of-range indices; keep one sentinel.
			return 0, ErrBadTour
		}

		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*lengthScale) / lengthScale
}
