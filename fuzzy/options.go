// SPDX-License-Identifier: MIT
// Package: fuzzy
//
// options.go - functional options for FromPoints / FromObservations.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//   - Defaults are named constants; the last option wins.

package fuzzy

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/fsc/nnls"
)

// Pipeline defaults.
const (
	DefaultDegree              = 3
	DefaultKnotInterval        = 0.1
	DefaultExtrapolationOrder  = 2
	DefaultExtrapolationLength = 0.1
	DefaultExtrapolationStep   = 0.01
	DefaultMaxSpan             = 0.01
	DefaultResolution          = 0.01
	DefaultVelocityCoeff       = 0.01
	DefaultAccelerationCoeff   = 0.0001
)

// Option customizes the builder.
type Option func(*config)

type config struct {
	degree       int
	knotInterval float64
	extOrder     int
	extLength    float64
	extStep      float64
	maxSpan      float64
	resolution   float64
	vCoeff       float64
	aCoeff       float64
	// rng jitters synthesized boundary samples; nil means none.
	rng      *rand.Rand
	logger   *slog.Logger
	nnlsOpts []nnls.Option
}

func newConfig(opts ...Option) config {
	cfg := config{
		degree:       DefaultDegree,
		knotInterval: DefaultKnotInterval,
		extOrder:     DefaultExtrapolationOrder,
		extLength:    DefaultExtrapolationLength,
		extStep:      DefaultExtrapolationStep,
		maxSpan:      DefaultMaxSpan,
		resolution:   DefaultResolution,
		vCoeff:       DefaultVelocityCoeff,
		aCoeff:       DefaultAccelerationCoeff,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 0) }

// WithDegree sets the spline degree. Panics if d < 1.
func WithDegree(d int) Option {
	if d < 1 {
		panic("fuzzy: WithDegree(d<1)")
	}

	return func(c *config) { c.degree = d }
}

// WithKnotInterval sets the maximum knot spacing. Panics unless > 0.
func WithKnotInterval(h float64) Option {
	if !positive(h) {
		panic("fuzzy: WithKnotInterval(h<=0)")
	}

	return func(c *config) { c.knotInterval = h }
}

// WithExtrapolation sets the boundary padding length and its sample
// interval. Panics unless both are > 0.
func WithExtrapolation(length, interval float64) Option {
	if !positive(length) || !positive(interval) {
		panic("fuzzy: WithExtrapolation(length or interval <= 0)")
	}

	return func(c *config) { c.extLength, c.extStep = length, interval }
}

// WithExtrapolationOrder selects order 0, 1 or 2 boundary padding.
// Panics on any other value.
func WithExtrapolationOrder(order int) Option {
	if order < 0 || order > 2 {
		panic("fuzzy: WithExtrapolationOrder(order not in 0..2)")
	}

	return func(c *config) { c.extOrder = order }
}

// WithMaxSpan sets the gap-filling span. Panics unless > 0.
func WithMaxSpan(s float64) Option {
	if !positive(s) {
		panic("fuzzy: WithMaxSpan(s<=0)")
	}

	return func(c *config) { c.maxSpan = s }
}

// WithResolution sets the time step at which velocity and acceleration are
// sampled. Panics unless > 0.
func WithResolution(r float64) Option {
	if !positive(r) {
		panic("fuzzy: WithResolution(r<=0)")
	}

	return func(c *config) { c.resolution = r }
}

// WithCoefficients sets the velocity and acceleration weights of the
// observed fuzziness. Panics if either is negative or not finite.
func WithCoefficients(v, a float64) Option {
	if !(v >= 0) || !(a >= 0) || math.IsInf(v, 0) || math.IsInf(a, 0) {
		panic("fuzzy: WithCoefficients(negative coefficient)")
	}

	return func(c *config) { c.vCoeff, c.aCoeff = v, a }
}

// WithRand provides the RNG for boundary jitter. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fuzzy: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a seeded RNG for reproducible jitter.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger for stage traces (Debug) and solver warnings.
// Panics on nil; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("fuzzy: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// WithNNLS forwards options to the non-negative solver. The builder's
// logger is applied first, so an nnls.WithLogger here overrides it.
func WithNNLS(opts ...nnls.Option) Option {
	cp := append([]nnls.Option(nil), opts...)

	return func(c *config) { c.nnlsOpts = append(c.nnlsOpts, cp...) }
}
