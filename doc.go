// Package mandel computes Mandelbrot escape-time grids.
//
// # Overview
//
// mandel is a Pure Go escape-time kernel. It samples a rectangular window
// of the complex plane at a caller-chosen resolution, iterates z = z*z + c
// for every sample point, and returns the per-pixel iteration counts as a
// dense row-major grid. Rows are computed in parallel by a worker pool;
// the result is identical for every worker count.
//
// # Quick Start
//
//	import "github.com/gogpu/mandel"
//
//	// Compute a 800x600 grid of the classic view.
//	grid, err := mandel.Compute(800, 600, 100, mandel.DefaultRegion)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	count := grid.At(400, 300) // iteration count at one pixel
//
// Repeated computations should share a Generator so the worker pool is
// reused:
//
//	gen := mandel.NewGenerator(mandel.WithWorkers(8))
//	defer gen.Close()
//
//	for _, r := range []mandel.Region{mandel.SeahorseValley, mandel.ElephantValley} {
//	    grid, err := gen.Compute(1200, 900, 500, r)
//	    ...
//	}
//
// # Evaluators
//
// The escape recurrence is pluggable. Two evaluators are registered by
// default: "scalar" (explicit real/imaginary arithmetic, the default) and
// "complex" (Go's native complex128). Both implement the same counting
// convention: the returned count is the 0-based iteration index at which
// |z|^2 first exceeds 4.0, or the iteration cap for points that never
// escape. Additional evaluators can be registered via RegisterEvaluator.
//
// # Coordinate Mapping
//
// Pixel (x, y) samples the point
//
//	c = (ReMin + x*reStep) + i*(ImMin + y*imStep)
//
// with reStep = (ReMax-ReMin)/width and imStep = (ImMax-ImMin)/height.
// Column 0 samples ReMin exactly; column width-1 stays one step short of
// ReMax. Rows grow in the +imaginary direction.
//
// # Concurrency
//
// A Generator is safe for concurrent use. Each Compute call allocates its
// own grid and partitions it into per-row tasks; tasks write to disjoint
// row slices, so no locking is needed on the output and the grid contents
// never depend on scheduling order.
//
// # Logging
//
// mandel is silent by default. Call SetLogger with a log/slog logger to
// receive debug-level compute diagnostics (dimensions, evaluator, worker
// count, duration).
package mandel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
