package basis_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fsc/basis"
	"github.com/katalvlaran/fsc/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func TestBernsteinClosedForm(t *testing.T) {
	// Cubic Bernstein polynomials: (1−t)³, 3t(1−t)², 3t²(1−t), t³.
	for _, u := range []float64{0, 0.25, 0.5, 0.8, 1, -0.5, 1.5} {
		w, err := basis.Bernstein(3, u)
		require.NoError(t, err)
		s := 1 - u
		assert.InDelta(t, s*s*s, w[0], eps, "u=%g", u)
		assert.InDelta(t, 3*u*s*s, w[1], eps, "u=%g", u)
		assert.InDelta(t, 3*u*u*s, w[2], eps, "u=%g", u)
		assert.InDelta(t, u*u*u, w[3], eps, "u=%g", u)
		assert.InDelta(t, 1.0, sum(w), eps)
	}
}

func TestBernsteinErrors(t *testing.T) {
	_, err := basis.Bernstein(0, 0.5)
	require.ErrorIs(t, err, basis.ErrInvalidDegree)

	_, err = basis.Bernstein(2, math.NaN())
	require.ErrorIs(t, err, basis.ErrInvalidParameter)
}

func TestUniformKnots(t *testing.T) {
	knots, err := basis.UniformKnots(3, 0, 0.3, 0.1)
	require.NoError(t, err)
	// 3 spans, 2 extra knots per side.
	want := []float64{-0.2, -0.1, 0, 0.1, 0.2, 0.3, 0.4, 0.5}
	require.Len(t, knots, len(want))
	for i := range want {
		assert.InDelta(t, want[i], knots[i], 1e-12)
	}
	assert.Equal(t, 6, basis.ControlPointCount(3, len(knots)))
	assert.Equal(t, 0.0, knots[2])
	assert.Equal(t, 0.3, knots[5])

	// A non-multiple length shrinks the spacing below the interval.
	knots, err = basis.UniformKnots(2, 0, 1, 0.3)
	require.NoError(t, err)
	require.Len(t, knots, 4+2*2-1)
	assert.InDelta(t, 0.25, knots[2]-knots[1], 1e-12)

	_, err = basis.UniformKnots(3, 1, 1, 0.1)
	require.ErrorIs(t, err, basis.ErrInvalidDomain)
	_, err = basis.UniformKnots(3, 0, 1, 0)
	require.ErrorIs(t, err, basis.ErrInvalidInterval)
	_, err = basis.UniformKnots(0, 0, 1, 0.1)
	require.ErrorIs(t, err, basis.ErrInvalidDegree)
}

func TestFindSpan(t *testing.T) {
	knots, err := basis.UniformKnots(3, 0, 0.3, 0.1)
	require.NoError(t, err)
	ncp := basis.ControlPointCount(3, len(knots))

	tests := []struct {
		t    float64
		want int
	}{
		{-1, 2},
		{0, 2},
		{0.05, 2},
		{0.1, 3},
		{0.25, 4},
		{0.3, 4},
		{7, 4},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, basis.FindSpan(3, knots, ncp, tc.t), "t=%g", tc.t)
	}
}

func TestBSplineRowPartitionOfUnity(t *testing.T) {
	knots, err := basis.UniformKnots(3, 0, 1, 0.1)
	require.NoError(t, err)
	ncp := basis.ControlPointCount(3, len(knots))

	for i := 0; i <= 100; i++ {
		u := float64(i) / 100
		row, err := basis.BSplineRow(3, knots, ncp, u)
		require.NoError(t, err)
		require.Len(t, row, ncp)
		assert.InDelta(t, 1.0, sum(row), 1e-12, "u=%g", u)

		// Non-zeros are confined to degree+1 contiguous columns.
		first, vals, err := basis.NonZero(3, knots, ncp, u)
		require.NoError(t, err)
		require.Len(t, vals, 4)
		for j, w := range row {
			if j < first || j > first+3 {
				assert.Zero(t, w)
			}
			assert.GreaterOrEqual(t, w, -1e-15)
		}
	}
}

func TestBSplineRowUniformCubicValues(t *testing.T) {
	// At a knot the uniform cubic basis is (1/6, 4/6, 1/6, 0).
	knots, err := basis.UniformKnots(3, 0, 3, 1)
	require.NoError(t, err)
	first, vals, err := basis.NonZero(3, knots, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.InDelta(t, 1.0/6, vals[0], eps)
	assert.InDelta(t, 4.0/6, vals[1], eps)
	assert.InDelta(t, 1.0/6, vals[2], eps)
	assert.InDelta(t, 0.0, vals[3], eps)
}

func TestValidateKnots(t *testing.T) {
	require.ErrorIs(t, basis.ValidateKnots(3, []float64{0, 1, 2}, 4), basis.ErrKnotCount)
	require.ErrorIs(t, basis.ValidateKnots(2, []float64{0, 2, 1, 3}, 3), basis.ErrKnotOrder)
	require.ErrorIs(t, basis.ValidateKnots(1, []float64{0, 1, 2}, 2), basis.ErrKnotCount)
	require.ErrorIs(t, basis.ValidateKnots(1, []float64{1, 1}, 2), basis.ErrInvalidDomain)
	require.NoError(t, basis.ValidateKnots(1, []float64{0, 1}, 2))
}

func TestBezierMatrix(t *testing.T) {
	rng, err := geom.NewRange(0, 3)
	require.NoError(t, err)
	m, err := basis.BezierMatrix(3, []float64{0, 1, 2, 3}, rng)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 4, m.Cols())
	for _, s := range m.RowSums() {
		assert.InDelta(t, 1.0, s, eps)
	}
	first, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, first)

	_, err = basis.BezierMatrix(3, nil, rng)
	require.ErrorIs(t, err, basis.ErrNoSamples)
}

func TestBSplineMatrix(t *testing.T) {
	knots, err := basis.UniformKnots(3, 0, 1, 0.25)
	require.NoError(t, err)
	ncp := basis.ControlPointCount(3, len(knots))
	params := []float64{0, 0.1, 0.5, 0.9, 1}

	m, err := basis.BSplineMatrix(3, knots, ncp, params)
	require.NoError(t, err)
	require.Equal(t, len(params), m.Rows())
	require.Equal(t, ncp, m.Cols())
	for _, s := range m.RowSums() {
		assert.InDelta(t, 1.0, s, eps)
	}

	_, err = basis.BSplineMatrix(3, knots, ncp+1, params)
	require.ErrorIs(t, err, basis.ErrKnotCount)
	_, err = basis.BSplineMatrix(3, knots, ncp, []float64{math.Inf(1)})
	require.ErrorIs(t, err, basis.ErrInvalidParameter)
}
