// Package montecarlo_test provides helpers shared across *_test.go files in
// this package: canonical instances, table construction and a recording sink.
package montecarlo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmc/coords"
	"github.com/katalvlaran/tspmc/distance"
	"github.com/katalvlaran/tspmc/montecarlo"
)

const (
	// seedDet is the deterministic seed used by reproducibility tests.
	seedDet = int64(42)

	// trialsSmall keeps loop-shaped tests fast while still exercising
	// multiple incumbent updates.
	trialsSmall = int64(64)
)

// unitSquare is the canonical 4-city instance; its optimal tour is the
// perimeter with length exactly 4.
func unitSquare() []coords.Point {
	return []coords.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// mustTable builds a distance table or fails the test immediately.
func mustTable(t *testing.T, pts []coords.Point) *distance.Table {
	t.Helper()
	tbl, err := distance.NewTable(pts)
	require.NoError(t, err)

	return tbl
}

// trialRecord captures one Trial callback for later assertions.
type trialRecord struct {
	trial  int64
	tour   montecarlo.Tour
	length float64
}

// recordSink is a montecarlo.Sink that stores everything it receives.
// Tours are cloned on arrival because the loop hands out its live buffer.
type recordSink struct {
	trials    []trialRecord
	summaries []montecarlo.Result
}

func (s *recordSink) Trial(trial int64, tour montecarlo.Tour, length float64) {
	s.trials = append(s.trials, trialRecord{trial: trial, tour: tour.Clone(), length: length})
}

func (s *recordSink) Summary(res montecarlo.Result) {
	s.summaries = append(s.summaries, res)
}
