// Package tspmc approximates the Traveling Salesman Problem with a
// Monte Carlo search: sample uniformly random closed tours over a fixed
// set of city coordinates, measure each tour against a precomputed
// Euclidean distance table, and keep the shortest tour seen.
//
// The module is organized as small, focused subpackages:
//
//	coords/     – coordinate sources: parse (x, y) pairs from readers or files
//	distance/   – owned, bounds-checked pairwise distance table (flat row-major)
//	montecarlo/ – tour sampling, tour length evaluation and the search loop
//	report/     – reporting sinks: silent, per-trial and per-edge text output
//	cmd/tspmc/  – the command-line front end
//
// Guarantees:
//   - Deterministic: the search owns a single seeded random stream; the same
//     seed reproduces the exact trial sequence.
//   - Strict sentinels: library code never logs or panics on user input;
//     every failure surfaces as a sentinel error.
//   - Sequential baseline: trials run one after another; the distance table
//     is read-only for the whole session.
//
// Quick use:
//
//	pts, _ := coords.LoadFile("data/grid04_xy.txt")
//	tbl, _ := distance.NewTable(pts)
//	res, _ := montecarlo.Run(tbl, montecarlo.Options{Trials: 10000}, nil)
//	fmt.Println(res.Tour, res.Length)
package tspmc
