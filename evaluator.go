package mandel

import (
	"sort"
	"sync"
)

// Evaluator name constants.
const (
	// EvaluatorScalar is the name of the explicit real/imaginary kernel.
	EvaluatorScalar = "scalar"
	// EvaluatorComplex is the name of the complex128 kernel.
	EvaluatorComplex = "complex"
)

// Evaluator computes the escape time of a single sample point.
//
// Implementations must be pure: the same arguments always produce the same
// count, with no side effects. This is what makes row fan-out safe without
// synchronization and grid contents independent of scheduling.
//
// Evaluators are registered via RegisterEvaluator and selected via
// LookupEvaluator or DefaultEvaluator.
type Evaluator interface {
	// Name returns the evaluator identifier (e.g. "scalar").
	Name() string

	// Escape iterates z = z*z + c from z = 0 for c = cRe + i*cIm and
	// returns the 0-based iteration index at which |z|^2 first exceeds
	// 4.0 (strictly), or maxIter if the orbit stays bounded that long.
	Escape(cRe, cIm float64, maxIter int) int
}

// Registry state - protected by mutex for thread-safe access.
var (
	evaluatorMu sync.RWMutex
	evaluators  = make(map[string]Evaluator)

	// Priority order for default selection (first present name wins).
	evaluatorPriority = []string{EvaluatorScalar, EvaluatorComplex}
)

// RegisterEvaluator registers an evaluator under its Name.
// It is typically called from init(), following the database/sql driver
// pattern:
//
//	func init() {
//	    mandel.RegisterEvaluator(fastEvaluator{})
//	}
//
// RegisterEvaluator panics if e is nil, its name is empty, or an evaluator
// with the same name is already registered. Duplicate registrations are a
// programming error and are caught during initialization rather than
// silently replacing a kernel.
func RegisterEvaluator(e Evaluator) {
	evaluatorMu.Lock()
	defer evaluatorMu.Unlock()

	if e == nil {
		panic("mandel: RegisterEvaluator evaluator is nil")
	}
	name := e.Name()
	if name == "" {
		panic("mandel: RegisterEvaluator evaluator has empty name")
	}
	if _, dup := evaluators[name]; dup {
		panic("mandel: RegisterEvaluator called twice for " + name)
	}
	evaluators[name] = e
}

// UnregisterEvaluator removes an evaluator from the registry.
// This is primarily useful for testing to clean up between tests.
// If the evaluator is not registered, this is a no-op.
func UnregisterEvaluator(name string) {
	evaluatorMu.Lock()
	defer evaluatorMu.Unlock()
	delete(evaluators, name)
}

// LookupEvaluator returns the evaluator registered under name.
// Returns nil if no evaluator has that name.
func LookupEvaluator(name string) Evaluator {
	evaluatorMu.RLock()
	defer evaluatorMu.RUnlock()
	return evaluators[name]
}

// EvaluatorNames returns a sorted list of registered evaluator names.
// The list is sorted alphabetically for consistent output.
func EvaluatorNames() []string {
	evaluatorMu.RLock()
	defer evaluatorMu.RUnlock()

	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsEvaluatorRegistered checks if an evaluator with the given name is
// registered.
func IsEvaluatorRegistered(name string) bool {
	evaluatorMu.RLock()
	defer evaluatorMu.RUnlock()
	_, ok := evaluators[name]
	return ok
}

// DefaultEvaluator returns the preferred evaluator: the scalar kernel,
// then the complex kernel, then any registered evaluator. It returns nil
// only if the registry has been emptied.
func DefaultEvaluator() Evaluator {
	evaluatorMu.RLock()
	defer evaluatorMu.RUnlock()

	for _, name := range evaluatorPriority {
		if e, ok := evaluators[name]; ok {
			return e
		}
	}

	// Fallback: return any registered evaluator.
	for _, e := range evaluators {
		return e
	}

	return nil
}
