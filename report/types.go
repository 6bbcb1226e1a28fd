package report

import (
	"errors"

	"github.com/katalvlaran/tspmc/montecarlo"
)

var (
	// ErrNilWriter indicates a nil io.Writer was passed to NewTextSink.
	ErrNilWriter = errors.New("report: writer is nil")

	// ErrNilTable indicates a nil distance table was passed to NewTextSink.
	ErrNilTable = errors.New("report: distance table is nil")

	// ErrShapeMismatch indicates the coordinate list and the distance table
	// disagree on the number of cities.
	ErrShapeMismatch = errors.New("report: coordinate count does not match table size")

	// ErrBadMode indicates a verbosity outside Silent..PerEdge.
	ErrBadMode = errors.New("report: unknown verbosity mode")
)

// NopSink discards every report. It satisfies montecarlo.Sink.
type NopSink struct{}

var _ montecarlo.Sink = NopSink{}

// Trial implements montecarlo.Sink.
func (NopSink) Trial(int64, montecarlo.Tour, float64) {}

// Summary implements montecarlo.Sink.
func (NopSink) Summary(montecarlo.Result) {}
