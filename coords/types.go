package coords

import "errors"

var (
	// ErrNoPoints indicates the source held zero coordinate records.
	ErrNoPoints = errors.New("coords: source contains no coordinate records")

	// ErrBadRecord indicates a line that is not a numeric coordinate pair.
	ErrBadRecord = errors.New("coords: record is not a numeric coordinate pair")
)

// Point is a single city position on the plane.
// Its index inside a []Point slice is the city identity used by the
// distance table and every tour.
type Point struct {
	X float64
	Y float64
}
