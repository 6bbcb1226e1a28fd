package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/tspmc/montecarlo"
)

// Configuration failures; all of them abort before any trial runs.
var (
	errMissingTrials = errors.New("number of trials is mandatory (-n)")
	errMissingMode   = errors.New("report mode is mandatory (-m), choose 0, 1 or 2")
	errMissingFile   = errors.New("coordinates file is mandatory (-f)")
	errBadTrials     = errors.New("number of trials must be a non-negative integer")
	errBadMode       = errors.New("invalid report mode, choose 0, 1 or 2")
	errTrialOverflow = errors.New("number of trials overflows the trial counter")
)

// config is the fully validated run configuration.
type config struct {
	Trials int64
	Mode   montecarlo.Verbosity
	File   string
	Seed   int64
}

// envDefaults carries process-environment defaults for the optional knobs.
// Flags always win; the environment only shifts what "unset" means, so a
// batch harness can pin a seed or a mode without editing every invocation.
type envDefaults struct {
	Seed int64 `env:"TSPMC_SEED" envDefault:"0"`
	Mode int   `env:"TSPMC_MODE" envDefault:"-1"` // -1 keeps -m mandatory
}

// parseConfig resolves environment defaults, parses flags and validates the
// combination. Help requests surface as flag.ErrHelp after printing usage.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	var defs envDefaults
	if err := env.Parse(&defs); err != nil {
		return config{}, fmt.Errorf("environment: %w", err)
	}

	fs := flag.NewFlagSet("tspmc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs.Output()) }

	trials := fs.String("n", "", "number of tours to sample")
	mode := fs.Int("m", defs.Mode, "report mode: 0 silent, 1 per tour, 2 per edge")
	file := fs.String("f", "", "city coordinates file")
	seed := fs.Int64("s", defs.Seed, "random seed; 0 selects the fixed default stream")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	// Mandatory options, checked in the flag order of the usage text.
	if *trials == "" {
		return config{}, errMissingTrials
	}
	t, err := parseTrials(*trials)
	if err != nil {
		return config{}, err
	}
	if *mode < 0 {
		return config{}, errMissingMode
	}
	if *mode > int(montecarlo.PerEdge) {
		return config{}, errBadMode
	}
	if *file == "" {
		return config{}, errMissingFile
	}

	return config{
		Trials: t,
		Mode:   montecarlo.Verbosity(*mode),
		File:   *file,
		Seed:   *seed,
	}, nil
}

// parseTrials converts the -n argument, separating "not a number" from
// "a number the trial counter cannot hold".
func parseTrials(arg string) (int64, error) {
	t, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", errTrialOverflow, arg)
		}
		return 0, fmt.Errorf("%w: %q", errBadTrials, arg)
	}
	if t < 0 {
		return 0, fmt.Errorf("%w: %s", errBadTrials, arg)
	}

	return t, nil
}

// printUsage writes the help text. Shown for -h (exit 0) and after
// configuration errors (exit 1).
func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage: tspmc [-h] -n <TRIALS> -m <MODE> -f <FILE> [-s <SEED>]
Approximate the best Traveling Salesman tour using Monte Carlo sampling.

Options:
  -n <TRIALS>  number of tours to sample
  -m <MODE>    report mode: 0 silent, 1 per tour, 2 per edge
  -f <FILE>    city coordinates file, one "x y" pair per line
  -s <SEED>    random seed; 0 selects the fixed default stream
  -h           show this help message and exit

Environment:
  TSPMC_SEED   default for -s
  TSPMC_MODE   default for -m

Example:
  tspmc -n 10000 -m 0 -f data/grid04_xy.txt
`)
}
