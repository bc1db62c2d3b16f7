// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"

	"github.com/katalvlaran/fsc/basis"
	"github.com/katalvlaran/fsc/curve"
	"github.com/katalvlaran/fsc/geom"
	"github.com/katalvlaran/fsc/matrix"
)

// Bezier fits a Bezier curve of the given degree to points.
//
// The curve parameter is the sample time normalized over the sample time
// range (or WithRange). Control point j is stamped with the time at u = j/d.
//
// Errors:
//   - geom series errors (empty, non-finite or non-increasing times).
//   - ErrTooFewPoints (fewer than degree+1 samples).
//   - basis.ErrInvalidDegree, curve.ErrDegenerateRange, ErrSingular.
func Bezier(points []geom.Point, degree int, opts ...Option) (*curve.Bezier, error) {
	cfg := newConfig(opts...)
	rng, err := prepare(points, degree, cfg)
	if err != nil {
		return nil, fitErrorf("Bezier", err)
	}
	if rng.Length() == 0 {
		return nil, fitErrorf("Bezier", curve.ErrDegenerateRange)
	}

	b, err := basis.BezierMatrix(degree, geom.Times(points), rng)
	if err != nil {
		return nil, fitErrorf("Bezier", err)
	}
	x, err := solve(b, points, cfg.weights)
	if err != nil {
		return nil, fitErrorf("Bezier", err)
	}

	ctrl, err := controlPoints(x, func(j int) float64 {
		return rng.Denormalize(float64(j) / float64(degree))
	})
	if err != nil {
		return nil, fitErrorf("Bezier", err)
	}

	return curve.NewBezier(ctrl, rng)
}

// BSpline fits a B-spline of the given degree with uniform knots no
// further apart than knotInterval. The knot domain and the curve range are
// the sample time range (or WithRange). Control points are stamped with
// their Greville abscissae.
//
// Errors:
//   - geom series errors, ErrTooFewPoints.
//   - basis knot errors (degree, interval, empty domain).
//   - ErrSingular when the samples do not determine every control point
//     (e.g. a knot span with no samples around it).
func BSpline(points []geom.Point, degree int, knotInterval float64, opts ...Option) (*curve.BSpline, error) {
	cfg := newConfig(opts...)
	rng, err := prepare(points, degree, cfg)
	if err != nil {
		return nil, fitErrorf("BSpline", err)
	}

	knots, err := basis.UniformKnots(degree, rng.Start, rng.End, knotInterval)
	if err != nil {
		return nil, fitErrorf("BSpline", err)
	}
	ncp := basis.ControlPointCount(degree, len(knots))
	b, err := basis.BSplineMatrix(degree, knots, ncp, geom.Times(points))
	if err != nil {
		return nil, fitErrorf("BSpline", err)
	}
	x, err := solve(b, points, cfg.weights)
	if err != nil {
		return nil, fitErrorf("BSpline", err)
	}

	ctrl, err := controlPoints(x, func(j int) float64 {
		return curve.Greville(degree, knots, j)
	})
	if err != nil {
		return nil, fitErrorf("BSpline", err)
	}

	return curve.NewBSpline(degree, knots, ctrl, rng)
}

// prepare validates samples and resolves the fit range.
func prepare(points []geom.Point, degree int, cfg config) (geom.Range, error) {
	if degree < 1 {
		return geom.Range{}, basis.ErrInvalidDegree
	}
	if err := geom.ValidateSeries(points, geom.Increasing); err != nil {
		return geom.Range{}, err
	}
	if len(points) < degree+1 {
		return geom.Range{}, fmt.Errorf("%d points for degree %d: %w", len(points), degree, ErrTooFewPoints)
	}
	if cfg.rng != nil {
		return *cfg.rng, nil
	}

	return geom.TimeRange(points)
}

func solve(b *matrix.Dense, points []geom.Point, weights []float64) (*matrix.Dense, error) {
	y, err := Coordinates(points)
	if err != nil {
		return nil, err
	}
	if weights != nil {
		return WeightedLeastSquares(b, y, weights)
	}

	return LeastSquares(b, y)
}

// Coordinates returns the N×3 matrix of sample positions.
func Coordinates(points []geom.Point) (*matrix.Dense, error) {
	rows := make([][]float64, len(points))
	for i, p := range points {
		rows[i] = []float64{p.X, p.Y, p.Z}
	}

	return matrix.NewDenseFrom(rows)
}

// controlPoints turns the M×3 solution into time-stamped control points.
func controlPoints(x *matrix.Dense, timeOf func(int) float64) ([]geom.Point, error) {
	rows, cols := x.Shape()
	if cols != 3 {
		return nil, fmt.Errorf("controlPoints: %d columns, want 3: %w", cols, matrix.ErrDimensionMismatch)
	}
	out := make([]geom.Point, rows)
	for j := range out {
		row, err := x.Row(j)
		if err != nil {
			return nil, err
		}
		out[j] = geom.At(geom.Vector{X: row[0], Y: row[1], Z: row[2]}, timeOf(j))
	}

	return out, nil
}
