// Package distance provides the precomputed pairwise Euclidean distance
// table used by the Monte Carlo TSP search.
//
// A Table is built exactly once from a city coordinate list and is never
// mutated afterward: it is eagerly and fully populated at construction
// (no lazy or partial computation) and may be shared read-only across any
// number of trials without locking.
//
// Invariants (hold for every successfully built Table of order n):
//
//	– shape:    exactly n×n, backed by one flat row-major buffer
//	– symmetry: At(i, j) == At(j, i)
//	– diagonal: At(i, i) == 0
//	– values:   finite and non-negative (Euclidean metric by construction)
//
// Errors (sentinel):
//
//	– ErrNoCities        if the coordinate list is empty.
//	– ErrIndexOutOfRange if At is asked for an index outside [0, n).
package distance
