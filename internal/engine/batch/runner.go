// Package batch runs several independent comparison scenarios concurrently.
//
// Each comparison is a pure function of its own inputs, so scenarios are
// embarrassingly parallel; the runner only bounds concurrency and preserves
// input order in its results.
package batch

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/oxyfarm/aercomp/internal/engine"
)

// Concurrency bounds.
const (
	// DefaultConcurrency is the number of scenarios processed in parallel.
	DefaultConcurrency = 4

	// MaxConcurrency caps the worker count.
	MaxConcurrency = 64
)

// Common runner errors.
var (
	ErrInvalidConcurrency = errors.New("concurrency must be between 1 and 64")
	ErrNoScenarios        = errors.New("at least one scenario is required")
)

// Scenario pairs a label (typically the source file name) with its request.
type Scenario struct {
	Label   string
	Request *engine.ComparisonRequest
}

// Result is the outcome of one scenario. Exactly one of Comparison and Err
// is set.
type Result struct {
	Label      string
	Comparison *engine.Comparison
	Err        error
}

// Runner executes scenarios with bounded concurrency.
type Runner struct {
	concurrency int
}

// NewRunner creates a runner with the given worker bound.
func NewRunner(concurrency int) (*Runner, error) {
	if concurrency < 1 || concurrency > MaxConcurrency {
		return nil, ErrInvalidConcurrency
	}
	return &Runner{concurrency: concurrency}, nil
}

// Run compares every scenario and returns results in input order. A failed
// scenario records its error in its slot; Run itself only fails on an empty
// input or a canceled context.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			comparison, err := engine.Compare(ctx, sc.Request)
			results[i] = Result{Label: sc.Label, Comparison: comparison, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
