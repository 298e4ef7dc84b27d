// Package parallel provides order-preserving parallel mapping for batch
// tokenization.
package parallel

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinItems   int  // Minimum batch size before spawning workers.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinItems:   2,
	}
}

// MapErr applies f to every item and returns the results in input order.
// Items are processed concurrently when the config allows it; a failing
// item fails the whole call.
func MapErr[T, R any](items []T, cfg Config, f func(T) (R, error)) ([]R, error) {
	results := make([]R, len(items))

	if !cfg.Enabled || len(items) < cfg.MinItems {
		// Sequential fallback.
		for i, item := range items {
			r, err := f(item)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	p := pool.New().WithMaxGoroutines(cfg.NumWorkers).WithErrors().WithFirstError()
	for i, item := range items {
		p.Go(func() error {
			r, err := f(item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
