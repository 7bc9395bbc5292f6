package mandel

import "errors"

// Validation and usage errors. Compute wraps the validation sentinels with
// the offending values; match them with errors.Is.
var (
	// ErrInvalidResolution is returned when width or height is not positive.
	ErrInvalidResolution = errors.New("mandel: invalid resolution")

	// ErrInvalidRegion is returned when a region has zero or negative extent
	// on either axis. A degenerate extent would corrupt every sample point,
	// so it is rejected up front rather than silently divided.
	ErrInvalidRegion = errors.New("mandel: invalid region")

	// ErrInvalidIterationBound is returned when maxIter is not positive or
	// does not fit in the grid's int32 elements.
	ErrInvalidIterationBound = errors.New("mandel: invalid iteration bound")

	// ErrGeneratorClosed is returned by Compute after Close. It signals a
	// usage error, not an input problem.
	ErrGeneratorClosed = errors.New("mandel: generator closed")

	// ErrNoEvaluator is returned by Compute when the generator holds no
	// evaluator. That can only happen when the registry was emptied via
	// UnregisterEvaluator before NewGenerator ran and no evaluator was
	// injected with WithEvaluator.
	ErrNoEvaluator = errors.New("mandel: no evaluator available")
)
