// Package montecarlo - the search loop.
//
// Run is the only entry point with a policy decision: the incumbent is
// replaced on strictly smaller length, so among equal-length tours the
// earliest found is kept. Everything else is mechanical: sample, measure,
// forward to the sink, compare.
//
// State machine: a single trial counter from 0 to Trials (exclusive); the
// only other persistent state is the incumbent (best tour + length),
// initialized to "no tour, +Inf".
//
// Failure semantics: all validation happens before the first trial; once
// the loop starts, no trial can fail (sampling and measuring are total
// over the validated inputs).
package montecarlo

import (
	"math"

	"github.com/katalvlaran/tspmc/distance"
)

// Run executes opts.Trials independent trials over table and returns the
// shortest tour observed.
//
// Contracts:
//   - table must be non-nil (its construction already guarantees n >= 1).
//   - opts.Trials >= 0; Trials == 0 completes "successfully empty" and is
//     reported as ErrNoTrials so callers cannot mistake the zero Result
//     for a real tour.
//   - sink may be nil (no reporting). A non-nil sink receives Trial calls
//     only when opts.Verbosity is PerTrial or PerEdge, and exactly one
//     Summary call after the final trial of a non-empty run.
//
// Errors: ErrNilTable, ErrBadTrialCount, ErrBadVerbosity, ErrNoTrials.
//
// Complexity: O(Trials · n) time; O(n) space beyond the incumbent copy.
func Run(table *distance.Table, opts Options, sink Sink) (Result, error) {
	// Stage 1 - validation; the loop below must not be able to fail.
	if table == nil {
		return Result{}, ErrNilTable
	}
	if opts.Trials < 0 {
		return Result{}, ErrBadTrialCount
	}
	if opts.Verbosity < Silent || opts.Verbosity > PerEdge {
		return Result{}, ErrBadVerbosity
	}

	var (
		n   = table.Size()
		rng = NewRNG(opts.Seed) // session-owned stream, seeded once
	)

	// Stage 2 - the trials. Incumbent starts at "no tour, +Inf".
	var (
		best    Tour
		bestLen = math.Inf(1)
		t       int64
		tour    Tour
		length  float64
		err     error
	)
	for t = 0; t < opts.Trials; t++ {
		tour, err = SampleTour(n, rng)
		if err != nil {
			return Result{}, err
		}
		length, err = TourLength(table, tour)
		if err != nil {
			return Result{}, err
		}

		if sink != nil && opts.Verbosity != Silent {
			sink.Trial(t, tour, length)
		}

		// Strictly-less replacement: first-found wins on ties.
		if length < bestLen {
			bestLen = length
			best = tour.Clone() // copy out before the trial buffer is dropped
		}
	}

	// Stage 3 - terminal state.
	if opts.Trials == 0 {
		// Distinct outcome: no tour was sampled, the incumbent is still
		// "no tour / +Inf" and must not be rendered as a result.
		return Result{}, ErrNoTrials
	}

	res := Result{Tour: best, Length: bestLen, Trials: opts.Trials}
	if sink != nil {
		sink.Summary(res)
	}

	return res, nil
}
