package montecarlo_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/tspmc/coords"
	"github.com/katalvlaran/tspmc/distance"
	"github.com/katalvlaran/tspmc/montecarlo"
)

// ringPoints places n cities on a unit circle; a dense, regular instance
// that keeps benchmark numbers comparable across sizes.
func ringPoints(n int) []coords.Point {
	pts := make([]coords.Point, n)
	var i int
	for i = 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = coords.Point{X: math.Cos(th), Y: math.Sin(th)}
	}

	return pts
}

func BenchmarkSampleTour(b *testing.B) {
	for _, n := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := montecarlo.NewRNG(1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := montecarlo.SampleTour(n, rng); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTourLength(b *testing.B) {
	for _, n := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			tbl, err := distance.NewTable(ringPoints(n))
			if err != nil {
				b.Fatal(err)
			}
			tour, err := montecarlo.SampleTour(n, montecarlo.NewRNG(1))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err = montecarlo.TourLength(tbl, tour); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRun(b *testing.B) {
	for _, n := range []int{8, 32} {
		b.Run(fmt.Sprintf("n=%d/trials=1000", n), func(b *testing.B) {
			tbl, err := distance.NewTable(ringPoints(n))
			if err != nil {
				b.Fatal(err)
			}
			opts := montecarlo.Options{Trials: 1000, Seed: 1}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err = montecarlo.Run(tbl, opts, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
