// SPDX-License-Identifier: MIT

package fuzzy

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/fsc/condition"
	"github.com/katalvlaran/fsc/curve"
	"github.com/katalvlaran/fsc/fit"
	"github.com/katalvlaran/fsc/geom"
	"github.com/katalvlaran/fsc/nnls"
)

// sampleEpsilon keeps the sample count exact when the domain length is a
// multiple of the resolution.
const sampleEpsilon = 1e-9

// FromPoints builds an FSC from raw time-stamped samples.
//
// Implementation:
//   - Stage 1: validate (strictly increasing finite times) and remember the
//     input time range.
//   - Stage 2: pad both ends (order-2 extrapolation by default), then fill
//     gaps longer than the max span.
//   - Stage 3: fit an unweighted B-spline over the padded range.
//   - Stage 4: derive per-sample fuzziness from velocity and acceleration
//     sampled across the whole domain (Observe).
//   - Stage 5: solve for non-negative control point fuzziness and trim the
//     curve back to the input range.
//
// Errors:
//   - geom series errors, ErrDegreeTooLow.
//   - condition, fit and nnls errors, wrapped with "FromPoints".
func FromPoints(points []geom.Point, opts ...Option) (*curve.BSpline, error) {
	cfg := newConfig(opts...)
	if cfg.degree < 3 {
		return nil, fmt.Errorf("FromPoints(degree=%d): %w", cfg.degree, ErrDegreeTooLow)
	}
	if err := geom.ValidateSeries(points, geom.Increasing); err != nil {
		return nil, fuzzyErrorf("FromPoints", err)
	}
	original, err := geom.TimeRange(points)
	if err != nil {
		return nil, fuzzyErrorf("FromPoints", err)
	}

	var condOpts []condition.Option
	if cfg.rng != nil {
		condOpts = append(condOpts, condition.WithRand(cfg.rng))
	}
	padded, err := condition.Extrapolate(points, cfg.extOrder, cfg.extLength, cfg.extStep, condOpts...)
	if err != nil {
		return nil, fuzzyErrorf("FromPoints", err)
	}
	filled, err := condition.Interpolate(padded, cfg.maxSpan)
	if err != nil {
		return nil, fuzzyErrorf("FromPoints", err)
	}
	cfg.logger.Debug("fuzzy: conditioned samples",
		slog.Int("input", len(points)),
		slog.Int("padded", len(padded)),
		slog.Int("filled", len(filled)))

	c, err := fit.BSpline(filled, cfg.degree, cfg.knotInterval)
	if err != nil {
		return nil, fuzzyErrorf("FromPoints", err)
	}

	params := SampleTimes(c.Domain(), cfg.resolution)
	obs, err := Observe(c, params, cfg.vCoeff, cfg.aCoeff)
	if err != nil {
		return nil, fuzzyErrorf("FromPoints", err)
	}

	fsc, err := fromObservations(c, params, obs, cfg)
	if err != nil {
		return nil, fuzzyErrorf("FromPoints", err)
	}

	part, err := fsc.Part(original)
	if err != nil {
		return nil, fuzzyErrorf("FromPoints", err)
	}
	cfg.logger.Debug("fuzzy: curve built",
		slog.Int("control_points", len(part.ControlPoints())),
		slog.String("range", part.Range().String()))

	return part, nil
}

// FromObservations estimates control point fuzziness for c from observed
// fuzziness values at the given times, skipping differentiation. The
// returned curve has c's degree, knots, range and control point positions.
//
// Errors: ErrNilCurve, ErrObservationCount, basis and nnls errors.
func FromObservations(c *curve.BSpline, params, fuzziness []float64, opts ...Option) (*curve.BSpline, error) {
	if c == nil {
		return nil, fuzzyErrorf("FromObservations", ErrNilCurve)
	}
	if len(params) != len(fuzziness) {
		return nil, fmt.Errorf("FromObservations: %d params, %d observations: %w", len(params), len(fuzziness), ErrObservationCount)
	}
	out, err := fromObservations(c, params, fuzziness, newConfig(opts...))
	if err != nil {
		return nil, fuzzyErrorf("FromObservations", err)
	}

	return out, nil
}

func fromObservations(c *curve.BSpline, params, fuzziness []float64, cfg config) (*curve.BSpline, error) {
	b, err := c.BasisMatrix(params)
	if err != nil {
		return nil, err
	}

	solverOpts := append([]nnls.Option{nnls.WithLogger(cfg.logger)}, cfg.nnlsOpts...)
	res, err := nnls.Solve(b, fuzziness, solverOpts...)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("fuzzy: fuzziness solved",
		slog.Int("observations", len(fuzziness)),
		slog.Int("iterations", res.Iterations),
		slog.Bool("converged", res.Converged))

	pts := c.ControlPoints()
	for i := range pts {
		pts[i] = pts[i].WithFuzziness(res.X[i])
	}

	return c.WithControlPoints(pts)
}

// Observe returns the observed fuzziness vCoeff·‖c′(t)‖ + aCoeff·‖c″(t)‖ at
// every time in params.
//
// Errors: ErrNilCurve, curve.ErrCannotDifferentiate (degree < 3), basis
// parameter errors.
func Observe(c *curve.BSpline, params []float64, vCoeff, aCoeff float64) ([]float64, error) {
	if c == nil {
		return nil, fuzzyErrorf("Observe", ErrNilCurve)
	}
	vel, err := c.Differentiate()
	if err != nil {
		return nil, fuzzyErrorf("Observe", err)
	}
	acc, err := vel.Differentiate()
	if err != nil {
		return nil, fuzzyErrorf("Observe", err)
	}
	vs, err := vel.Sample(params)
	if err != nil {
		return nil, fuzzyErrorf("Observe", err)
	}
	as, err := acc.Sample(params)
	if err != nil {
		return nil, fuzzyErrorf("Observe", err)
	}

	out := make([]float64, len(params))
	for i := range out {
		out[i] = vCoeff*vs[i].Pos().Norm() + aCoeff*as[i].Pos().Norm()
	}

	return out, nil
}

// SampleTimes returns evenly spaced times covering r, both ends included,
// no further apart than step. A zero-length range yields one time.
func SampleTimes(r geom.Range, step float64) []float64 {
	l := r.Length()
	if l <= 0 || !(step > 0) {
		return []float64{r.Start}
	}
	k := int(math.Ceil(l/step - sampleEpsilon))
	if k < 1 {
		k = 1
	}
	out := make([]float64, k+1)
	for i := range out {
		out[i] = r.Start + float64(i)*l/float64(k)
	}
	out[k] = r.End

	return out
}
