package quantize

import "fmt"

const (
	defaultWorkers           = 1
	defaultParallelThreshold = 1 << 14
)

type config struct {
	workers           int
	parallelThreshold int
}

func defaultConfig() config {
	return config{
		workers:           defaultWorkers,
		parallelThreshold: defaultParallelThreshold,
	}
}

// Option configures a [Quantizer].
type Option func(*config) error

// WithWorkers sets how many goroutines the matrix is spread over (default 1).
// The output does not depend on the worker count.
func WithWorkers(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return fmt.Errorf("quantize: workers must be >= 1: %d", n)
		}

		cfg.workers = n

		return nil
	}
}

// WithParallelThreshold sets the minimum number of matrix elements before
// work is fanned out over multiple workers (default 16384).
func WithParallelThreshold(elems int) Option {
	return func(cfg *config) error {
		if elems < 0 {
			return fmt.Errorf("quantize: parallel threshold must be >= 0: %d", elems)
		}

		cfg.parallelThreshold = elems

		return nil
	}
}
