// Package montecarlo - the Tour value type and its structural helpers.
//
// A Tour bundles the whole closed cycle in one value: the first n entries
// are a permutation of 0..n-1 and entry n repeats entry 0 to close the
// cycle. Keeping sequence and closure together means the invariants are
// validated once at the boundary instead of re-derived ad hoc by every
// consumer.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) helpers; in-place work where possible.
package montecarlo

import "fmt"

// Tour is an ordered closed cycle of city indices: len(Tour) == n+1,
// Tour[0..n-1] is a permutation of 0..n-1, and Tour[n] == Tour[0].
type Tour []int

// Validate enforces the closed-cycle invariants against n cities.
//
// Checks, in order: n >= 1, length n+1, closure, index range, bijection.
// Returns ErrBadTour on any violation.
//
// Complexity: O(n) time, O(n) space for the seen-marker slice.
func (t Tour) Validate(n int) error {
	if n < 1 {
		return ErrBadTour
	}
	if len(t) != n+1 {
		return ErrBadTour
	}
	if t[0] != t[n] {
		return ErrBadTour
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n {
			return ErrBadTour
		}
		if seen[v] {
			return ErrBadTour
		}
		seen[v] = true
	}

	return nil
}

// Clone returns an independent copy of the tour. The incumbent keeps a
// clone so the per-trial buffer can be reused or discarded freely.
//
// Complexity: O(n) time and space.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)

	return out
}

// EqualModuloRotation reports whether two closed tours describe the same
// cyclic visiting order (same direction, any starting city). Both inputs
// must be closed (len == n+1); anything else compares as unequal.
//
// Complexity: O(n) time.
func (t Tour) EqualModuloRotation(o Tour) bool {
	if len(t) != len(o) || len(t) < 2 {
		return false
	}

	var (
		n  = len(t) - 1
		st = t[0]
	)
	if t[n] != st || o[len(o)-1] != o[0] {
		return false
	}

	// Locate t's start inside o's permutation prefix.
	var (
		j int
		p = -1
	)
	for j = 0; j < n; j++ {
		if o[j] == st {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	// Compare element-wise under rotation by p.
	var i int
	for i = 0; i < n; i++ {
		if t[i] != o[(p+i)%n] {
			return false
		}
	}

	return true
}

// String renders the tour compactly with the closing city marked, e.g.
// "[2 0 3 1 | 2]". Intended for reports and test failure messages.
func (t Tour) String() string {
	if len(t) == 0 {
		return "[]"
	}

	var (
		n = len(t) - 1
		s = "["
		i int
	)
	for i = 0; i < n; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", t[i])
	}
	s += fmt.Sprintf(" | %d]", t[n])

	return s
}
