// Command tspmc approximates the Traveling Salesman Problem over a city
// coordinate file using Monte Carlo sampling: it simulates the requested
// number of random closed tours and reports the shortest one found.
//
//	usage: tspmc [-h] -n <TRIALS> -m <MODE> -f <FILE> [-s <SEED>]
//
// Exit status is 0 on a completed run or help display, 1 on configuration
// errors, an unreadable or malformed coordinate file, or a trial count that
// does not fit the trial counter.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/tspmc/coords"
	"github.com/katalvlaran/tspmc/distance"
	"github.com/katalvlaran/tspmc/montecarlo"
	"github.com/katalvlaran/tspmc/report"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}
	if errors.Is(err, flag.ErrHelp) {
		return // help short-circuits with success
	}
	fmt.Fprintf(os.Stderr, "tspmc: error: %v\n", err)
	os.Exit(1)
}

// run wires the whole pipeline: configuration, coordinates, distance
// table, search, report.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	pts, err := coords.LoadFile(cfg.File)
	if err != nil {
		return err
	}

	tbl, err := distance.NewTable(pts)
	if err != nil {
		return err
	}

	sink, err := report.NewTextSink(stdout, cfg.Mode, pts, tbl)
	if err != nil {
		return err
	}

	opts := montecarlo.Options{
		Trials:    cfg.Trials,
		Seed:      cfg.Seed,
		Verbosity: cfg.Mode,
	}
	if _, err = montecarlo.Run(tbl, opts, sink); err != nil {
		if errors.Is(err, montecarlo.ErrNoTrials) {
			// -n 0 is a valid, completed run that sampled nothing; say so
			// instead of rendering a bogus tour, and exit successfully.
			fmt.Fprintln(stderr, "tspmc: no trials executed; no tour to report")
			return nil
		}
		return err
	}

	// The search cannot fail mid-run, but the terminal may have.
	return sink.Err()
}
