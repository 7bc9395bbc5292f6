package mandel

// complexEvaluator iterates the escape recurrence over Go's native
// complex128. It exists as an independent cross-check of the scalar
// kernel; the counting convention is identical. Counts can differ from
// the scalar kernel by an iteration on razor-edge orbits where the two
// formulations round |z|^2 differently.
type complexEvaluator struct{}

// init registers the complex evaluator on package import.
func init() {
	RegisterEvaluator(complexEvaluator{})
}

// Name returns the evaluator identifier.
func (complexEvaluator) Name() string {
	return EvaluatorComplex
}

// Escape returns the 0-based iteration index at which |z|^2 first exceeds
// 4.0, or maxIter if the orbit stays bounded.
func (complexEvaluator) Escape(cRe, cIm float64, maxIter int) int {
	c := complex(cRe, cIm)
	z := complex(0, 0)
	for i := 0; i < maxIter; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4.0 {
			return i
		}
	}
	return maxIter
}
