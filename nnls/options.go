// SPDX-License-Identifier: MIT

package nnls

import "log/slog"

// Defaults.
const (
	// DefaultMaxIterations caps the outer iterations.
	DefaultMaxIterations = 1000
	// DefaultHistory is the number of curvature pairs kept.
	DefaultHistory = 7
	// DefaultTolerance is the squared step norm that ends the iteration.
	DefaultTolerance = 1e-14
	// armijoTau is the sufficient-decrease coefficient.
	armijoTau = 0.25
	// maxHalvings bounds the backtracking; 2^-60 is below float64 resolution.
	maxHalvings = 60
)

// Option customizes Solve.
type Option func(*config)

type config struct {
	maxIter int
	history int
	tol     float64
	logger  *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxIter: DefaultMaxIterations,
		history: DefaultHistory,
		tol:     DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

// WithMaxIterations sets the iteration cap. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("nnls: WithMaxIterations(n<1)")
	}

	return func(c *config) { c.maxIter = n }
}

// WithHistory sets the number of curvature pairs kept. Panics if m < 1.
func WithHistory(m int) Option {
	if m < 1 {
		panic("nnls: WithHistory(m<1)")
	}

	return func(c *config) { c.history = m }
}

// WithTolerance sets the squared step norm below which the solver stops.
// Panics unless tol > 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic("nnls: WithTolerance(tol<=0)")
	}

	return func(c *config) { c.tol = tol }
}

// WithLogger routes the non-convergence warning and debug traces to l.
// Panics on nil; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("nnls: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}
