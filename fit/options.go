// SPDX-License-Identifier: MIT

package fit

import (
	"math"

	"github.com/katalvlaran/fsc/geom"
)

// Option customizes a Bezier or BSpline fit.
type Option func(*config)

type config struct {
	// weights per sample; nil means an unweighted fit.
	weights []float64
	// rng overrides the parameter range; nil means the sample time range.
	rng *geom.Range
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWeights makes the fit minimize Σ w_i·‖B_i X − Y_i‖². The slice is
// copied. Panics on a negative or non-finite weight; the length is checked
// against the samples when the fit runs.
func WithWeights(w []float64) Option {
	for _, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			panic("fit: WithWeights(negative or non-finite weight)")
		}
	}
	cp := append([]float64(nil), w...)

	return func(c *config) { c.weights = cp }
}

// WithRange fits over r instead of the sample time range. For a Bezier r
// is the normalization range; for a B-spline it is the knot domain.
// Panics on start > end or a non-finite bound.
func WithRange(r geom.Range) Option {
	if _, err := geom.NewRange(r.Start, r.End); err != nil {
		panic("fit: WithRange(" + err.Error() + ")")
	}

	return func(c *config) { c.rng = &r }
}
