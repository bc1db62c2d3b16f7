package curve_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/fsc/basis"
	"github.com/katalvlaran/fsc/curve"
	"github.com/katalvlaran/fsc/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// lineSpline returns a cubic spline over [0,1] whose control points sit on
// the x axis at their Greville abscissae, so that x(t) = t exactly.
func lineSpline(t *testing.T) *curve.BSpline {
	t.Helper()
	knots, err := basis.UniformKnots(3, 0, 1, 0.25)
	require.NoError(t, err)
	n := basis.ControlPointCount(3, len(knots))
	pts := make([]geom.Point, n)
	for j := range pts {
		g := curve.Greville(3, knots, j)
		pts[j] = geom.Point{X: g, Time: g, Fuzziness: 0.5}
	}
	c, err := curve.NewBSpline(3, knots, pts, geom.Range{Start: 0, End: 1})
	require.NoError(t, err)

	return c
}

func TestNewBSplineValidation(t *testing.T) {
	knots := []float64{0, 1, 2, 3, 4}
	pts := make([]geom.Point, 5)

	_, err := curve.NewBSpline(2, knots, pts, geom.Range{Start: 1, End: 3})
	require.ErrorIs(t, err, basis.ErrKnotCount)

	_, err = curve.NewBSpline(2, knots, make([]geom.Point, 2), geom.Range{Start: 1, End: 3})
	require.ErrorIs(t, err, curve.ErrTooFewControlPoints)

	_, err = curve.NewBSpline(2, knots, pts[:4], geom.Range{Start: 0, End: 3})
	require.ErrorIs(t, err, curve.ErrRangeOutOfDomain)

	_, err = curve.NewBSpline(2, []float64{0, 1, 2}, pts[:2], geom.Range{Start: 0, End: 1})
	require.Error(t, err)

	bad := []geom.Point{{}, {Fuzziness: -1}, {}, {}}
	_, err = curve.NewBSpline(2, knots, bad, geom.Range{Start: 1, End: 2})
	require.ErrorIs(t, err, geom.ErrInvalidFuzziness)

	_, err = curve.NewBSpline(2, knots, pts[:4], geom.Range{Start: 2, End: 1})
	require.ErrorIs(t, err, geom.ErrInvalidRange)
}

func TestBSplineLinearPrecision(t *testing.T) {
	c := lineSpline(t)
	assert.Equal(t, geom.Range{Start: 0, End: 1}, c.Domain())

	for _, tt := range []float64{0, 0.1, 0.33, 0.5, 0.9, 1} {
		p, err := c.Evaluate(tt)
		require.NoError(t, err)
		assert.InDelta(t, tt, p.X, 1e-12)
		assert.InDelta(t, tt, p.Time, 0)
		assert.InDelta(t, 0.5, p.Fuzziness, 1e-12)
	}
}

func TestBSplineDifferentiate(t *testing.T) {
	c := lineSpline(t)

	v, err := c.Differentiate()
	require.NoError(t, err)
	assert.Equal(t, 2, v.Degree())
	assert.Len(t, v.Knots(), len(c.Knots())-2)
	assert.Equal(t, c.Domain(), v.Domain())

	for _, tt := range []float64{0, 0.2, 0.7, 1} {
		p, err := v.Evaluate(tt)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, p.X, 1e-12)
		assert.Zero(t, p.Fuzziness)
	}

	a, err := v.Differentiate()
	require.NoError(t, err)
	p, err := a.Evaluate(0.4)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, p.X, 1e-12)

	assert.Equal(t, 1, a.Degree())
	_, err = a.Differentiate()
	require.ErrorIs(t, err, curve.ErrCannotDifferentiate)
}

func TestBSplinePart(t *testing.T) {
	c := lineSpline(t)

	part, err := c.Part(geom.Range{Start: 0.3, End: 0.6})
	require.NoError(t, err)
	assert.Less(t, len(part.ControlPoints()), len(c.ControlPoints()))
	assert.True(t, part.Domain().ContainsRange(part.Range()))
	assert.Equal(t, geom.Range{Start: 0.3, End: 0.6}, part.Range())

	params := []float64{0.3, 0.4, 0.5, 0.6}
	want, err := c.Sample(params)
	require.NoError(t, err)
	got, err := part.Sample(params)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Part changed the curve (-want +got):\n%s", diff)
	}

	whole, err := c.Part(c.Domain())
	require.NoError(t, err)
	assert.Equal(t, c.Knots(), whole.Knots())

	_, err = c.Part(geom.Range{Start: -1, End: 0.5})
	require.ErrorIs(t, err, curve.ErrRangeOutOfDomain)
}

func TestBSplineWithControlPoints(t *testing.T) {
	c := lineSpline(t)
	pts := c.ControlPoints()
	pts[0].Fuzziness = 2
	c2, err := c.WithControlPoints(pts)
	require.NoError(t, err)
	assert.Equal(t, 2.0, c2.ControlPoints()[0].Fuzziness)
	assert.Equal(t, 0.5, c.ControlPoints()[0].Fuzziness)

	_, err = c.WithControlPoints(pts[1:])
	require.ErrorIs(t, err, curve.ErrControlPointCount)
}

func TestBSplineBasisMatrix(t *testing.T) {
	c := lineSpline(t)
	m, err := c.BasisMatrix([]float64{0, 0.5, 1})
	require.NoError(t, err)
	assert.Equal(t, len(c.ControlPoints()), m.Cols())
	for _, s := range m.RowSums() {
		assert.InDelta(t, 1.0, s, 1e-12)
	}
}

func TestBezier(t *testing.T) {
	pts := []geom.Point{{X: 0}, {X: 1, Y: 2}, {X: 2}}
	b, err := curve.NewBezier(pts, geom.Range{Start: 10, End: 12})
	require.NoError(t, err)
	assert.Equal(t, 2, b.Degree())

	p, err := b.Evaluate(10)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, p.X, 1e-12)

	p, err = b.Evaluate(11)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, 1.0, p.Y, 1e-12)
	assert.InDelta(t, 11.0, p.Time, 1e-12)

	// Past the end the parabola keeps going: y(u) = 4u(1−u).
	p, err = b.EvaluateAt(1.5)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, p.X, 1e-12)
	assert.InDelta(t, -3.0, p.Y, 1e-12)
	assert.InDelta(t, 13.0, p.Time, 1e-12)

	d, err := b.Differentiate()
	require.NoError(t, err)
	v, err := d.Evaluate(10)
	require.NoError(t, err)
	// dx/dt = 1, dy/dt = 4/2 at the start.
	assert.InDelta(t, 1.0, v.X, 1e-12)
	assert.InDelta(t, 2.0, v.Y, 1e-12)

	_, err = curve.NewBezier(pts[:1], geom.Range{Start: 0, End: 1})
	require.ErrorIs(t, err, curve.ErrTooFewControlPoints)
	_, err = curve.NewBezier(pts, geom.Range{Start: 1, End: 1})
	require.ErrorIs(t, err, curve.ErrDegenerateRange)
}
