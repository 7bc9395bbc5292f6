// Command mandelbench times the registered escape-time evaluators on
// standard Mandelbrot workloads.
//
// It computes a preset workload with each selected evaluator, reports the
// best wall-clock time over a number of runs, and prints the grid's total
// iteration count as a checksum so runs are comparable across kernels and
// machines.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/gogpu/mandel"
)

// namedRegions maps -region flag values to library regions.
var namedRegions = map[string]mandel.Region{
	"default":     mandel.DefaultRegion,
	"seahorse":    mandel.SeahorseValley,
	"elephant":    mandel.ElephantValley,
	"spiral":      mandel.SpiralMinibrot,
	"triple":      mandel.TripleSpiral,
	"dragon":      mandel.ValleyOfTheDragon,
	"minibrot":    mandel.MinibrotInMiniSpiral,
	"center-zoom": mandel.CenterZoom,
	"deep-zoom":   mandel.DeepZoom,
}

func main() {
	var (
		preset  = flag.String("preset", "easy", "workload preset: easy, medium or hard")
		width   = flag.Int("width", 0, "override preset width")
		height  = flag.Int("height", 0, "override preset height")
		iter    = flag.Int("iter", 0, "override preset iteration cap")
		region  = flag.String("region", "default", "region name: "+regionNames())
		kernel  = flag.String("kernel", "all", `evaluator name, or "all"`)
		workers = flag.Int("workers", 0, "worker count (0 = GOMAXPROCS)")
		runs    = flag.Int("runs", 3, "timed runs per evaluator")
	)
	flag.Parse()

	p, ok := mandel.LookupPreset(*preset)
	if !ok {
		log.Fatalf("unknown preset %q (want easy, medium or hard)", *preset)
	}
	if *width > 0 {
		p.Width = *width
	}
	if *height > 0 {
		p.Height = *height
	}
	if *iter > 0 {
		p.MaxIter = *iter
	}

	r, ok := namedRegions[*region]
	if !ok {
		log.Fatalf("unknown region %q (want %s)", *region, regionNames())
	}

	var names []string
	if *kernel == "all" {
		names = mandel.EvaluatorNames()
	} else {
		if mandel.LookupEvaluator(*kernel) == nil {
			log.Fatalf("unknown evaluator %q (registered: %s)",
				*kernel, strings.Join(mandel.EvaluatorNames(), ", "))
		}
		names = []string{*kernel}
	}

	fmt.Printf("%dx%d, max %d iterations, region %v\n", p.Width, p.Height, p.MaxIter, r)

	for _, name := range names {
		gen := mandel.NewGenerator(
			mandel.WithEvaluator(mandel.LookupEvaluator(name)),
			mandel.WithWorkers(*workers),
		)
		best, sum := bench(gen, name, p, r, *runs)
		fmt.Printf("%-8s workers=%-3d best %10v  total iterations %d\n",
			name, gen.Workers(), best, sum)
		gen.Close()
	}
}

// bench times one evaluator on the workload and returns the best
// wall-clock time and the grid checksum. Run counts below 1 are treated
// as 1 so a result is always measured.
func bench(gen *mandel.Generator, name string, p mandel.Preset, r mandel.Region, runs int) (time.Duration, int64) {
	if runs < 1 {
		runs = 1
	}

	var (
		best time.Duration
		sum  int64
	)
	for i := 0; i < runs; i++ {
		start := time.Now()
		grid, err := gen.Compute(p.Width, p.Height, p.MaxIter, r)
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
		elapsed := time.Since(start)

		if best == 0 || elapsed < best {
			best = elapsed
		}
		sum = grid.Sum()
	}
	return best, sum
}

// regionNames returns the accepted -region values for usage text.
func regionNames() string {
	names := make([]string, 0, len(namedRegions))
	for name := range namedRegions {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
