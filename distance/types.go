package distance

import "errors"

var (
	// ErrNoCities indicates an empty coordinate list; a table needs n >= 1.
	ErrNoCities = errors.New("distance: coordinate list is empty")

	// ErrIndexOutOfRange indicates a city index outside [0, n).
	ErrIndexOutOfRange = errors.New("distance: city index out of range")
)
