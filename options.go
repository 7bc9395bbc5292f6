package mandel

// Option configures a Generator during creation.
// Use functional options to customize Generator behavior.
//
// Example:
//
//	// Default: GOMAXPROCS workers, scalar evaluator
//	gen := mandel.NewGenerator()
//
//	// Pinned worker count and explicit kernel
//	gen := mandel.NewGenerator(
//	    mandel.WithWorkers(4),
//	    mandel.WithEvaluator(mandel.LookupEvaluator("complex")),
//	)
type Option func(*options)

// options holds optional configuration for Generator creation.
type options struct {
	workers   int
	evaluator Evaluator
}

// defaultOptions returns the default generator options.
func defaultOptions() options {
	return options{
		workers:   0,   // Worker pool resolves 0 to GOMAXPROCS
		evaluator: nil, // Resolved to DefaultEvaluator in NewGenerator
	}
}

// WithWorkers sets the number of workers in the generator's pool.
// Values <= 0 select GOMAXPROCS. The worker count never affects grid
// contents, only how rows are spread across CPUs.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithEvaluator sets the escape-time evaluator the generator computes
// with. Passing nil keeps the default evaluator.
func WithEvaluator(e Evaluator) Option {
	return func(o *options) {
		if e != nil {
			o.evaluator = e
		}
	}
}
