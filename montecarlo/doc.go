// Package montecarlo approximates the Traveling Salesman Problem by pure
// random sampling: each trial draws one uniformly random closed tour over
// the cities, measures its total length against a precomputed distance
// table, and the shortest tour seen across all trials is the answer.
//
// The package deliberately implements nothing smarter than uniform
// sampling - no annealing, no branch-and-bound, no local search. Use it
// when a cheap statistical baseline is enough, or as the reference
// behavior for comparing real solvers.
//
// Components:
//
//	– SampleTour:  one uniformly random closed tour per call (every
//	               permutation equally likely; this is the statistical
//	               contract the method's convergence depends on).
//	– TourLength:  pure O(n) edge-sum evaluation of a tour.
//	– Run:         the search loop; exactly Trials independent trials,
//	               first-found-wins incumbent tracking, optional per-trial
//	               streaming to a reporting Sink.
//
// Determinism:
//
//	The session owns a single *rand.Rand seeded once at start (seed 0
//	selects a fixed default stream). The same Options therefore reproduce
//	the exact sequence of sampled tours. There is no global random state.
//
// Errors (sentinel):
//
//	– ErrNilTable      if Run receives a nil distance table.
//	– ErrBadTrialCount if Options.Trials is negative.
//	– ErrBadVerbosity  if Options.Verbosity is not Silent/PerTrial/PerEdge.
//	– ErrNoTrials      if Trials == 0: zero trials leave no incumbent, and
//	                   the caller must treat that as a distinct outcome
//	                   rather than a valid tour.
//	– ErrTooFewCities  if a sampler call asks for n < 1.
//	– ErrBadTour       if an evaluated tour violates closed-cycle invariants.
//
// Concurrency: single-threaded and synchronous. Trials are independent, so
// the loop could be parallelized, but each worker would need its own random
// stream and incumbent updates would need serialized first-found-wins
// ordering; sequential execution is the baseline correctness oracle here.
package montecarlo
