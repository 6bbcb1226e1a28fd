// Package distance - Table construction and access.
//
// Design:
//   - Flat storage: one []float64 of length n*n with row-stride indexing,
//     for cache friendliness and a single allocation.
//   - Eager fill: the upper triangle is computed once with math.Hypot and
//     mirrored, so symmetry and the zero diagonal hold by construction.
//   - Exclusive ownership: the table copies nothing from the caller except
//     the coordinate values it needs during construction; the points slice
//     may be reused or discarded afterwards.
//
// Complexity: O(n²) build time and memory; O(1) per lookup.
package distance

import (
	"math"

	"github.com/katalvlaran/tspmc/coords"
)

// Table is the n×n symmetric matrix of pairwise Euclidean city distances.
// The zero value is not usable; construct via NewTable.
type Table struct {
	n     int       // matrix order == number of cities
	cells []float64 // flat row-major backing storage, length n*n
}

// NewTable builds the full distance table over pts.
//
// Contract:
//   - len(pts) >= 1; n == 1 yields the degenerate 1×1 zero table.
//   - Every entry is populated before NewTable returns.
//
// Complexity: O(n²) time and space.
func NewTable(pts []coords.Point) (*Table, error) {
	n := len(pts)
	if n < 1 {
		return nil, ErrNoCities
	}

	t := &Table{n: n, cells: make([]float64, n*n)}

	// Fill the upper triangle and mirror; the diagonal stays exactly zero.
	var (
		i, j   int
		dx, dy float64
		d      float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i].X - pts[j].X
			dy = pts[i].Y - pts[j].Y
			d = math.Hypot(dx, dy) // stable sqrt(dx*dx + dy*dy)
			t.cells[i*n+j] = d
			t.cells[j*n+i] = d
		}
	}

	return t, nil
}

// Size returns the matrix order n (== number of cities).
// Complexity: O(1).
func (t *Table) Size() int {
	return t.n
}

// At returns the distance between cities i and j with bounds checking.
// Complexity: O(1).
func (t *Table) At(i, j int) (float64, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, ErrIndexOutOfRange
	}

	return t.cells[i*t.n+j], nil
}
