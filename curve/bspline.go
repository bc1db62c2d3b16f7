// SPDX-License-Identifier: MIT

package curve

import (
	"fmt"

	"github.com/katalvlaran/fsc/basis"
	"github.com/katalvlaran/fsc/geom"
	"github.com/katalvlaran/fsc/matrix"
)

// BSpline is a B-spline curve of a given degree with n control points and
// n+degree−1 knots. Its valid Range lies inside the knot domain
// [knots[degree−1], knots[n−1]].
type BSpline struct {
	degree int
	knots  []float64
	points []geom.Point
	rng    geom.Range
}

// NewBSpline validates the invariants and copies knots and points.
//
// Errors:
//   - basis knot errors (degree, count, order, domain).
//   - geom.ErrInvalidRange, ErrRangeOutOfDomain.
//   - geom.ErrInvalidFuzziness for a negative or NaN control point fuzziness.
func NewBSpline(degree int, knots []float64, points []geom.Point, rng geom.Range) (*BSpline, error) {
	if len(points) < degree+1 {
		return nil, curveErrorf("NewBSpline", ErrTooFewControlPoints)
	}
	if err := basis.ValidateKnots(degree, knots, len(points)); err != nil {
		return nil, curveErrorf("NewBSpline", err)
	}
	if _, err := geom.NewRange(rng.Start, rng.End); err != nil {
		return nil, curveErrorf("NewBSpline", err)
	}
	dom := domainOf(degree, knots, len(points))
	if !dom.ContainsRange(rng) {
		return nil, fmt.Errorf("NewBSpline: %v not in %v: %w", rng, dom, ErrRangeOutOfDomain)
	}
	for i, p := range points {
		if err := geom.ValidateFuzziness(p.Fuzziness); err != nil {
			return nil, fmt.Errorf("NewBSpline: control point %d: %w", i, err)
		}
	}

	return &BSpline{
		degree: degree,
		knots:  append([]float64(nil), knots...),
		points: append([]geom.Point(nil), points...),
		rng:    rng,
	}, nil
}

func domainOf(degree int, knots []float64, ncp int) geom.Range {
	return geom.Range{Start: knots[degree-1], End: knots[ncp-1]}
}

// Degree returns the polynomial degree.
func (c *BSpline) Degree() int { return c.degree }

// Knots returns a copy of the knot vector.
func (c *BSpline) Knots() []float64 { return append([]float64(nil), c.knots...) }

// ControlPoints returns a copy of the control points.
func (c *BSpline) ControlPoints() []geom.Point { return append([]geom.Point(nil), c.points...) }

// Range returns the valid time range.
func (c *BSpline) Range() geom.Range { return c.rng }

// Domain returns the full knot domain, a superset of Range.
func (c *BSpline) Domain() geom.Range { return domainOf(c.degree, c.knots, len(c.points)) }

// Evaluate returns the curve point at time t, with fuzziness blended from
// the control points. Times outside the domain evaluate the boundary
// polynomial piece.
func (c *BSpline) Evaluate(t float64) (geom.Point, error) {
	first, w, err := basis.NonZero(c.degree, c.knots, len(c.points), t)
	if err != nil {
		return geom.Point{}, curveErrorf("BSpline.Evaluate", err)
	}

	return blend(c.points, first, w, t), nil
}

// Sample evaluates the curve at every time in params.
func (c *BSpline) Sample(params []float64) ([]geom.Point, error) {
	out := make([]geom.Point, len(params))
	var err error
	for i, t := range params {
		if out[i], err = c.Evaluate(t); err != nil {
			return nil, fmt.Errorf("BSpline.Sample: %d: %w", i, err)
		}
	}

	return out, nil
}

// BasisMatrix returns the len(params)×n basis matrix of this curve's
// degree and knots.
func (c *BSpline) BasisMatrix(params []float64) (*matrix.Dense, error) {
	m, err := basis.BSplineMatrix(c.degree, c.knots, len(c.points), params)
	if err != nil {
		return nil, curveErrorf("BSpline.BasisMatrix", err)
	}

	return m, nil
}

// Differentiate returns the time derivative: a B-spline of degree−1 over
// the same domain and range, with control points
//
//	Q_j = d·(P_{j+1} − P_j) / (knots[j+d] − knots[j])
//
// and the knot vector stripped of its first and last knot. A zero knot
// span yields a zero control point. Derivative control points carry no
// fuzziness.
//
// Errors: ErrCannotDifferentiate for degree 1.
func (c *BSpline) Differentiate() (*BSpline, error) {
	d := c.degree
	if d < 2 {
		return nil, curveErrorf("BSpline.Differentiate", ErrCannotDifferentiate)
	}
	n := len(c.points)
	knots := append([]float64(nil), c.knots[1:len(c.knots)-1]...)
	q := make([]geom.Point, n-1)
	var span float64
	for j := 0; j < n-1; j++ {
		span = c.knots[j+d] - c.knots[j]
		var v geom.Vector
		if span != 0 {
			v = c.points[j+1].Pos().Sub(c.points[j].Pos()).Scale(float64(d) / span)
		}
		q[j] = geom.At(v, greville(knots, d-1, j))
	}

	return &BSpline{degree: d - 1, knots: knots, points: q, rng: c.rng}, nil
}

// Part returns the curve restricted to r. Knots and control points that
// have no support inside r are dropped, so the result has the smallest
// knot vector whose domain still covers r.
//
// Errors: geom.ErrInvalidRange, ErrRangeOutOfDomain.
func (c *BSpline) Part(r geom.Range) (*BSpline, error) {
	if _, err := geom.NewRange(r.Start, r.End); err != nil {
		return nil, curveErrorf("BSpline.Part", err)
	}
	if !c.Domain().ContainsRange(r) {
		return nil, fmt.Errorf("BSpline.Part: %v not in %v: %w", r, c.Domain(), ErrRangeOutOfDomain)
	}

	d, n := c.degree, len(c.points)
	s0 := basis.FindSpan(d, c.knots, n, r.Start)
	s1 := s0
	for s1+1 <= n-2 && c.knots[s1+1] < r.End {
		s1++
	}

	return &BSpline{
		degree: d,
		knots:  append([]float64(nil), c.knots[s0-d+1:s1+d+1]...),
		points: append([]geom.Point(nil), c.points[s0+1-d:s1+2]...),
		rng:    r,
	}, nil
}

// WithControlPoints returns a curve with the same degree, knots and range
// and the given control points.
//
// Errors: ErrControlPointCount, geom.ErrInvalidFuzziness.
func (c *BSpline) WithControlPoints(points []geom.Point) (*BSpline, error) {
	if len(points) != len(c.points) {
		return nil, fmt.Errorf("BSpline.WithControlPoints: got %d, want %d: %w", len(points), len(c.points), ErrControlPointCount)
	}
	for i, p := range points {
		if err := geom.ValidateFuzziness(p.Fuzziness); err != nil {
			return nil, fmt.Errorf("BSpline.WithControlPoints: %d: %w", i, err)
		}
	}

	return &BSpline{
		degree: c.degree,
		knots:  c.knots,
		points: append([]geom.Point(nil), points...),
		rng:    c.rng,
	}, nil
}

// Greville returns the Greville abscissa of control point j, the mean of
// knots[j .. j+degree−1]. Fitted control points are stamped with it as
// their time.
func Greville(degree int, knots []float64, j int) float64 {
	return greville(knots, degree, j)
}

func greville(knots []float64, degree, j int) float64 {
	var s float64
	for i := j; i < j+degree; i++ {
		s += knots[i]
	}

	return s / float64(degree)
}
