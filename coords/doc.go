// Package coords loads city coordinates for TSP instances.
//
// A coordinate source is a plain text stream with one city per line,
// written as two whitespace-separated real numbers:
//
//	0.0 0.0
//	1.0 0.0
//	1.0 1.0
//	0.0 1.0
//
// City identity is positional: the city on line k gets index k-1, and the
// loaded slice order is the index order used by every downstream component.
// Coordinates are immutable once loaded.
//
// Errors (sentinel):
//
//	– ErrNoPoints  if the source contains no coordinate records at all.
//	– ErrBadRecord if any line is not exactly two parseable real numbers
//	               (wrapped with the offending 1-based line number).
//
// Any detected error is fatal to the whole load: the package never returns
// a partially parsed point list.
package coords
