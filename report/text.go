// Package report - plain-text sink.
//
// Layout decisions:
//   - Per-trial lines are aligned on the trial counter so mode-1 output
//     stays scannable for large runs.
//   - Lengths are printed with six decimals; they arrive already
//     stabilized to 1e-9 by the evaluator, so the text is deterministic
//     for a fixed seed.
//   - The final report always carries the best tour, its length, the trial
//     count and the city coordinates; modes 1 and 2 add distribution
//     statistics over every sampled length.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/tspmc/coords"
	"github.com/katalvlaran/tspmc/distance"
	"github.com/katalvlaran/tspmc/montecarlo"
)

// TextSink renders trials and the final report as plain text.
// Not safe for concurrent use; the sequential search loop is the only
// intended caller.
type TextSink struct {
	w       io.Writer
	mode    montecarlo.Verbosity
	pts     []coords.Point
	table   *distance.Table
	lengths []float64 // every length seen via Trial, for summary statistics
	header  bool      // whether the per-trial header has been printed
	err     error     // first write failure, latched
}

var _ montecarlo.Sink = (*TextSink)(nil)

// NewTextSink builds a sink over w for the given mode, city coordinates
// and distance table. The coordinates are used to render the city list;
// the table supplies edge distances for the mode-2 breakdown.
func NewTextSink(w io.Writer, mode montecarlo.Verbosity, pts []coords.Point, table *distance.Table) (*TextSink, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	if table == nil {
		return nil, ErrNilTable
	}
	if len(pts) != table.Size() {
		return nil, ErrShapeMismatch
	}
	if mode < montecarlo.Silent || mode > montecarlo.PerEdge {
		return nil, ErrBadMode
	}

	return &TextSink{w: w, mode: mode, pts: pts, table: table}, nil
}

// Err returns the first write failure observed, or nil.
func (s *TextSink) Err() error {
	return s.err
}

// Trial renders one sampled tour. The search loop only calls it for modes
// PerTrial and PerEdge; the sink re-checks nothing.
func (s *TextSink) Trial(trial int64, tour montecarlo.Tour, length float64) {
	s.lengths = append(s.lengths, length)

	if !s.header {
		s.header = true
		s.printf("POSSIBLE PATHS:\n")
	}

	s.printf("%8d  %s  %.6f\n", trial, tour, length)

	if s.mode == montecarlo.PerEdge {
		s.edgeBreakdown(tour)
	}
}

// Summary renders the final report: best tour, length, trial count, the
// city list, and (modes 1/2) statistics over the sampled lengths.
func (s *TextSink) Summary(res montecarlo.Result) {
	if s.header {
		s.printf("\n") // separate the trial stream from the report
	}

	s.printf("BEST TOUR : %s\n", res.Tour)
	s.printf("LENGTH    : %.6f\n", res.Length)
	s.printf("TRIALS    : %s\n", humanize.Comma(res.Trials))

	if s.mode == montecarlo.PerEdge {
		s.edgeBreakdown(res.Tour)
	}

	s.printf("CITIES    :\n")
	var i int
	for i = 0; i < len(s.pts); i++ {
		s.printf("%8d  (%g, %g)\n", i, s.pts[i].X, s.pts[i].Y)
	}

	s.sampleStats()
}

// edgeBreakdown prints one line per edge of the closed tour.
func (s *TextSink) edgeBreakdown(tour montecarlo.Tour) {
	var (
		i    int
		u, v int
		d    float64
		err  error
	)
	for i = 0; i+1 < len(tour); i++ {
		u = tour[i]
		v = tour[i+1]
		d, err = s.table.At(u, v)
		if err != nil {
			// A tour that escaped the table's range would have failed
			// evaluation long before reaching the sink; stop quietly.
			return
		}
		s.printf("          %d -> %d  %.6f\n", u, v, d)
	}
}

// sampleStats closes the report with distribution statistics over every
// length streamed through Trial. Silent runs stream nothing, so the block
// is simply absent in mode 0.
func (s *TextSink) sampleStats() {
	if len(s.lengths) == 0 {
		return
	}

	data := stats.Float64Data(s.lengths)

	min, errMin := data.Min()
	mean, errMean := data.Mean()
	median, errMed := data.Median()
	p90, errP90 := data.Percentile(90)
	if errMin != nil || errMean != nil || errMed != nil || errP90 != nil {
		return // non-empty data cannot fail; guard anyway, never panic
	}

	s.printf("SAMPLED   : min=%.6f mean=%.6f median=%.6f p90=%.6f over %s tours\n",
		min, mean, median, p90, humanize.Comma(int64(len(s.lengths))))
}

// printf writes through the sink, latching the first failure.
func (s *TextSink) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	if _, err := fmt.Fprintf(s.w, format, args...); err != nil {
		s.err = err
	}
}
