// SPDX-License-Identifier: MIT
// Package: condition
//
// options.go - functional options for Extrapolate.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Extrapolate and Interpolate never panic.
//   - Determinism is explicit: jitter only happens with WithRand/WithSeed.

package condition

import (
	"math"
	"math/rand"
)

// Defaults.
const (
	// DefaultWindow is the time span next to each boundary whose samples
	// feed the order 1/2 fit.
	DefaultWindow = 0.1

	// DefaultMinWeight is the fit weight of a sample at the far edge of the
	// window; the boundary sample has weight 1.
	DefaultMinWeight = 0.1

	// DefaultJitter is the half-width of the uniform position jitter applied
	// to synthesized samples when an RNG is configured.
	DefaultJitter = 1e-6
)

// Option customizes Extrapolate.
type Option func(*config)

type config struct {
	window    float64
	minWeight float64
	jitter    float64
	// rng drives jitter; nil means "no randomness".
	rng *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{
		window:    DefaultWindow,
		minWeight: DefaultMinWeight,
		jitter:    DefaultJitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWindow sets the boundary window length. Panics if w <= 0 or not finite.
func WithWindow(w float64) Option {
	if !(w > 0) || math.IsInf(w, 0) {
		panic("condition: WithWindow(w<=0)")
	}

	return func(c *config) { c.window = w }
}

// WithMinWeight sets the weight at the far edge of the window.
// Panics unless 0 < w <= 1.
func WithMinWeight(w float64) Option {
	if !(w > 0 && w <= 1) {
		panic("condition: WithMinWeight(w outside (0,1])")
	}

	return func(c *config) { c.minWeight = w }
}

// WithJitter sets the jitter half-width. Panics if j < 0 or not finite.
func WithJitter(j float64) Option {
	if !(j >= 0) || math.IsInf(j, 0) {
		panic("condition: WithJitter(j<0)")
	}

	return func(c *config) { c.jitter = j }
}

// WithRand provides the RNG used for jitter. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("condition: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a seeded RNG for reproducible jitter.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
