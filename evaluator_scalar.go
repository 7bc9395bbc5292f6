package mandel

// scalarEvaluator iterates the escape recurrence with explicit
// real/imaginary arithmetic:
//
//	zRe' = zRe*zRe - zIm*zIm + cRe
//	zIm' = 2*zRe*zIm + cIm
//
// Both parts of the update must be derived from the previous step's
// values, so the squares are captured before either part is overwritten
// and the zIm update runs while zRe still holds its old value.
type scalarEvaluator struct{}

// init registers the scalar evaluator on package import.
func init() {
	RegisterEvaluator(scalarEvaluator{})
}

// Name returns the evaluator identifier.
func (scalarEvaluator) Name() string {
	return EvaluatorScalar
}

// Escape returns the 0-based iteration index at which |z|^2 first exceeds
// 4.0, or maxIter if the orbit stays bounded.
func (scalarEvaluator) Escape(cRe, cIm float64, maxIter int) int {
	var zRe, zIm float64
	for i := 0; i < maxIter; i++ {
		zReSq := zRe * zRe
		zImSq := zIm * zIm
		zIm = 2*zRe*zIm + cIm
		zRe = zReSq - zImSq + cRe
		if zRe*zRe+zIm*zIm > 4.0 {
			return i
		}
	}
	return maxIter
}
