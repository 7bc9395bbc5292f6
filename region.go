package mandel

import "fmt"

// Region is a rectangular window of the complex plane. ReMin/ReMax bound
// the real axis, ImMin/ImMax the imaginary axis. A valid region has
// strictly positive extent on both axes.
type Region struct {
	ReMin, ReMax float64
	ImMin, ImMax float64
}

// DefaultRegion is the classic full view of the set.
var DefaultRegion = Region{ReMin: -2.0, ReMax: 1.0, ImMin: -1.0, ImMax: 1.0}

// Landmark regions of the Mandelbrot set, useful as benchmark and test
// windows. All of them pass Validate.
var (
	// SeahorseValley frames the dense repeating curls between the main
	// cardioid and the period-2 bulb.
	SeahorseValley = Region{
		ReMin: -0.8,
		ReMax: -0.7,
		ImMin: 0.05,
		ImMax: 0.15,
	}

	// ElephantValley frames a large bulb with trunk-like tendrils.
	ElephantValley = Region{
		ReMin: -1.85,
		ReMax: -1.75,
		ImMin: -0.10,
		ImMax: -0.02,
	}

	// SpiralMinibrot frames a small copy of the set with tight spiral arms.
	SpiralMinibrot = Region{
		ReMin: -0.7435,
		ReMax: -0.7420,
		ImMin: 0.1310,
		ImMax: 0.1325,
	}

	// TripleSpiral frames a threefold symmetric spiral structure.
	TripleSpiral = Region{
		ReMin: -0.7480,
		ReMax: -0.7450,
		ImMin: 0.0950,
		ImMax: 0.0980,
	}

	// ValleyOfTheDragon frames deep, highly detailed spiral filaments.
	ValleyOfTheDragon = Region{
		ReMin: -0.7400,
		ReMax: -0.7350,
		ImMin: 0.1800,
		ImMax: 0.1850,
	}

	// MinibrotInMiniSpiral frames a self-similar copy inside a spiral arm.
	MinibrotInMiniSpiral = Region{
		ReMin: -1.7390,
		ReMax: -1.7375,
		ImMin: -0.0235,
		ImMax: -0.0220,
	}

	// CenterZoom is a moderate zoom on the origin.
	CenterZoom = Region{ReMin: -0.5, ReMax: 0.5, ImMin: -0.5, ImMax: 0.5}

	// DeepZoom is a tight zoom on the origin.
	DeepZoom = Region{ReMin: -0.1, ReMax: 0.1, ImMin: -0.1, ImMax: 0.1}
)

// Validate checks that the region has strictly positive extent on both
// axes. It returns an error wrapping ErrInvalidRegion otherwise.
func (r Region) Validate() error {
	if r.ReMax <= r.ReMin || r.ImMax <= r.ImMin {
		return fmt.Errorf("%w: re [%g, %g], im [%g, %g]",
			ErrInvalidRegion, r.ReMin, r.ReMax, r.ImMin, r.ImMax)
	}
	return nil
}

// Dx returns the real-axis extent of the region.
func (r Region) Dx() float64 {
	return r.ReMax - r.ReMin
}

// Dy returns the imaginary-axis extent of the region.
func (r Region) Dy() float64 {
	return r.ImMax - r.ImMin
}

// String returns the region in "[ReMin, ReMax] x [ImMin, ImMax]" form.
func (r Region) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", r.ReMin, r.ReMax, r.ImMin, r.ImMax)
}
