// Package coords - parsing of coordinate sources.
//
// Design:
//   - Strict records: every non-empty line must be exactly two real numbers;
//     a single malformed line aborts the whole load (no partial results).
//   - Deterministic order: points are returned in line order, so the k-th
//     record always becomes city index k-1.
//   - No logging, no panics - only sentinel errors from types.go, wrapped
//     with positional context where useful.
//
// Complexity: O(L) time over the source length, O(N) space for N points.
package coords

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Parse reads coordinate records from r until EOF and returns them in
// source order.
//
// Contract:
//   - Blank (all-whitespace) lines are ignored.
//   - Every other line must split into exactly two float64 fields;
//     otherwise ErrBadRecord is returned, wrapped with the 1-based line number.
//   - An exhausted source with zero records yields ErrNoPoints.
//
// Complexity: O(L) time, O(N) space.
func Parse(r io.Reader) ([]Point, error) {
	var (
		pts  []Point        // accumulated points, line order
		line int            // 1-based line counter for error context
		sc   = bufio.NewScanner(r) // line-oriented scan over the source
	)

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // tolerate blank separators between records
		}

		p, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		// Underlying reader failure; not a format problem, forward as-is.
		return nil, fmt.Errorf("coords: read failed: %w", err)
	}

	if len(pts) == 0 {
		return nil, ErrNoPoints
	}

	return pts, nil
}

// LoadFile opens path and delegates to Parse.
// The open failure keeps the os error in its chain so that callers can
// still match fs.ErrNotExist via errors.Is.
func LoadFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("coords: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// parseRecord converts one whitespace-split line into a Point.
// Exactly two finite float fields are accepted; everything else is ErrBadRecord.
func parseRecord(fields []string) (Point, error) {
	if len(fields) != 2 {
		return Point{}, ErrBadRecord
	}

	var (
		p   Point
		err error
	)
	p.X, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Point{}, ErrBadRecord
	}
	p.Y, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, ErrBadRecord
	}

	// ParseFloat accepts "NaN" and "Inf" spellings; neither is a usable
	// city position, so reject them under the same sentinel.
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return Point{}, ErrBadRecord
	}

	return p, nil
}
