package montecarlo

import "errors"

var (
	// ErrNilTable indicates a nil *distance.Table was passed to Run.
	ErrNilTable = errors.New("montecarlo: distance table is nil")

	// ErrBadTrialCount indicates a negative Options.Trials value.
	ErrBadTrialCount = errors.New("montecarlo: trial count must be non-negative")

	// ErrBadVerbosity indicates an Options.Verbosity outside Silent..PerEdge.
	ErrBadVerbosity = errors.New("montecarlo: unknown verbosity level")

	// ErrNoTrials indicates Trials == 0: the search ran to completion but
	// no tour was ever sampled, so no best tour exists.
	ErrNoTrials = errors.New("montecarlo: zero trials executed; no best tour")

	// ErrTooFewCities indicates a sampler request for n < 1 cities.
	ErrTooFewCities = errors.New("montecarlo: at least one city is required")

	// ErrBadTour indicates a tour that violates the closed-cycle invariants
	// (length n+1, permutation prefix, closure at the start city).
	ErrBadTour = errors.New("montecarlo: tour violates closed-cycle invariants")
)

// Verbosity selects how much per-trial detail the search forwards to the
// reporting sink. The numeric values match the CLI modes 0/1/2.
type Verbosity int

const (
	// Silent emits no per-trial output; only the final best is reported.
	Silent Verbosity = iota

	// PerTrial reports every sampled tour and its length as computed.
	PerTrial

	// PerEdge is PerTrial plus an edge-by-edge breakdown of each tour.
	PerEdge
)

// DefaultTrials is the trial count DefaultOptions selects.
const DefaultTrials int64 = 1000

// Options configures one search session.
//
// Trials    – number of tours to sample; must be >= 0 (0 yields ErrNoTrials).
// Seed      – random stream seed; 0 selects a fixed default stream so that
//             zero-value Options stay reproducible.
// Verbosity – per-trial reporting policy (see Verbosity).
type Options struct {
	Trials    int64
	Seed      int64
	Verbosity Verbosity
}

// DefaultOptions returns a reproducible silent session of DefaultTrials trials.
func DefaultOptions() Options {
	return Options{
		Trials:    DefaultTrials,
		Seed:      0,
		Verbosity: Silent,
	}
}

// Result is the terminal state of a completed search.
type Result struct {
	// Tour is the best (shortest) closed tour observed; len == n+1 with
	// Tour[0] == Tour[n].
	Tour Tour

	// Length is the total distance of Tour, stabilized to 1e-9.
	Length float64

	// Trials is the number of trials actually executed.
	Trials int64
}

// Sink receives per-trial and terminal reports from the search loop.
// Implementations decide how (and whether) to render; the loop only decides
// when to call. A Sink is invoked at most once per trial plus once at the
// end of a successful run.
type Sink interface {
	// Trial is called after a tour has been sampled and measured, only when
	// the session's Verbosity is PerTrial or PerEdge. The tour must be
	// treated as read-only; it is the live trial buffer.
	Trial(trial int64, tour Tour, length float64)

	// Summary is called exactly once after the final trial with the
	// completed result.
	Summary(res Result)
}
