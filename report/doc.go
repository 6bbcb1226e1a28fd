// Package report renders Monte Carlo TSP search output.
//
// Implementations of montecarlo.Sink live here so the search loop stays
// free of formatting concerns:
//
//	– NopSink:  discards everything; useful for benchmarks and silent
//	            library callers.
//	– TextSink: plain-text rendering to an io.Writer with three modes
//	            matching the CLI: 0 only the final report, 1 one line per
//	            sampled tour, 2 per-tour lines plus an edge-by-edge
//	            breakdown.
//
// A TextSink also accumulates the lengths it sees per trial and closes the
// final report with summary statistics over the sampled distribution
// (min / mean / median / p90) plus a humanized trial count. Statistics are
// only available in modes 1 and 2, because mode 0 never streams trials.
//
// Sink methods cannot return errors (the search loop is total once it
// starts), so the first write failure is latched and exposed via
// TextSink.Err for the caller to inspect after the run.
package report
