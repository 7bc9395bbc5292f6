package mandel

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gogpu/mandel/internal/parallel"
)

// Generator computes escape-time grids using a reusable worker pool.
//
// A Generator holds no grid state between calls: every Compute allocates
// a fresh Grid, and the pool only schedules row tasks. Create one with
// NewGenerator and release it with Close. For one-off computations the
// package-level Compute is more convenient.
//
// Thread safety: Generator is safe for concurrent use. Close blocks until
// in-flight Compute calls have finished.
type Generator struct {
	mu        sync.RWMutex
	closed    bool
	pool      *parallel.WorkerPool
	evaluator Evaluator
}

// NewGenerator creates a generator configured by the given options.
// With no options it uses GOMAXPROCS workers and the default evaluator.
func NewGenerator(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	eval := o.evaluator
	if eval == nil {
		eval = DefaultEvaluator()
	}

	return &Generator{
		pool:      parallel.NewWorkerPool(o.workers),
		evaluator: eval,
	}
}

// Compute evaluates the escape time of every pixel in a width x height
// sampling of region and returns the counts as a fresh grid.
//
// All inputs are validated before any allocation or dispatch: dimensions
// must be positive (ErrInvalidResolution), the region must have positive
// extent on both axes (ErrInvalidRegion), and maxIter must be positive
// and fit in int32 (ErrInvalidIterationBound). A closed generator reports
// ErrGeneratorClosed; a generator built without any evaluator (possible
// only when the registry was emptied) reports ErrNoEvaluator. On error
// the returned grid is nil; a partially computed grid is never returned.
//
// The rows of the grid are computed in parallel, one task per row, each
// task writing only its own row slice. Grid contents are byte-for-byte
// identical for a given input and evaluator regardless of the worker
// count. The call blocks until every row is done; there is no
// cancellation.
func (g *Generator) Compute(width, height, maxIter int, region Region) (*Grid, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.closed {
		return nil, ErrGeneratorClosed
	}
	if g.evaluator == nil {
		return nil, ErrNoEvaluator
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, width, height)
	}
	if err := region.Validate(); err != nil {
		return nil, err
	}
	if maxIter <= 0 || maxIter > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterationBound, maxIter)
	}

	start := time.Now()

	smp := newSampler(region, width, height)
	grid := newGrid(width, height)
	eval := g.evaluator

	// One task per row. Each closure owns its row slice exclusively, so
	// the fan-out needs no locks and no ordering between tasks.
	work := make([]func(), height)
	for y := range work {
		row := grid.Row(y)
		cIm := smp.im(y)
		work[y] = func() {
			computeRow(row, cIm, smp, eval, maxIter)
		}
	}
	g.pool.ExecuteAll(work)

	Logger().Debug("mandel: grid computed",
		"width", width,
		"height", height,
		"max_iter", maxIter,
		"region", region,
		"evaluator", eval.Name(),
		"workers", g.pool.Workers(),
		"duration", time.Since(start))

	return grid, nil
}

// Workers returns the number of workers in the generator's pool.
func (g *Generator) Workers() int {
	return g.pool.Workers()
}

// Evaluator returns the evaluator the generator computes with.
func (g *Generator) Evaluator() Evaluator {
	return g.evaluator
}

// Close releases the generator's worker pool. It blocks until in-flight
// Compute calls have finished; after Close, Compute returns
// ErrGeneratorClosed. Close is safe to call multiple times.
func (g *Generator) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	g.closed = true
	g.pool.Close()
}

// Compute is the one-shot form of Generator.Compute: it creates a
// generator, computes a single grid, and releases the pool.
//
//	grid, err := mandel.Compute(800, 600, 100, mandel.DefaultRegion)
func Compute(width, height, maxIter int, region Region, opts ...Option) (*Grid, error) {
	g := NewGenerator(opts...)
	defer g.Close()
	return g.Compute(width, height, maxIter, region)
}

// sampler maps pixel coordinates to complex-plane sample points.
//
// Step sizes divide the region extent by the resolution extent, so the
// inclusive upper edge is never sampled: column width-1 stays one step
// short of ReMax, and row height-1 one step short of ImMax.
type sampler struct {
	reMin  float64
	imMin  float64
	reStep float64
	imStep float64
}

// newSampler precomputes the step sizes for one compute call.
// Dimensions are validated by the caller before the division.
func newSampler(r Region, width, height int) sampler {
	return sampler{
		reMin:  r.ReMin,
		imMin:  r.ImMin,
		reStep: r.Dx() / float64(width),
		imStep: r.Dy() / float64(height),
	}
}

// re returns the real coordinate of pixel column x.
func (s sampler) re(x int) float64 {
	return s.reMin + float64(x)*s.reStep
}

// im returns the imaginary coordinate of pixel row y.
func (s sampler) im(y int) float64 {
	return s.imMin + float64(y)*s.imStep
}

// computeRow fills one row of iteration counts. dst is the row's slice of
// the grid buffer, owned exclusively by this call; cIm is the row's
// imaginary coordinate.
func computeRow(dst []int32, cIm float64, s sampler, e Evaluator, maxIter int) {
	for x := range dst {
		dst[x] = int32(e.Escape(s.re(x), cIm, maxIter))
	}
}
