// SPDX-License-Identifier: MIT
package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fsc/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPointDivide checks that internal division interpolates position,
// time and fuzziness together.
func TestPointDivide(t *testing.T) {
	p := geom.Point{X: 0, Y: 0, Z: 0, Time: 0, Fuzziness: 0}
	q := geom.Point{X: 4, Y: 8, Z: -4, Time: 2, Fuzziness: 1}

	mid := p.Divide(q, 1, 1)
	assert.Equal(t, geom.Point{X: 2, Y: 4, Z: -2, Time: 1, Fuzziness: 0.5}, mid)

	quarter := p.Divide(q, 1, 3)
	assert.InDelta(t, 1.0, quarter.X, 1e-12)
	assert.InDelta(t, 0.5, quarter.Time, 1e-12)
}

// TestPointMoveKeepsTime verifies Move only touches the position.
func TestPointMoveKeepsTime(t *testing.T) {
	p := geom.Point{X: 1, Y: 2, Z: 3, Time: 7, Fuzziness: 0.25}
	moved := p.Move(geom.Vector{X: 1, Y: 1, Z: 1})

	assert.Equal(t, geom.Point{X: 2, Y: 3, Z: 4, Time: 7, Fuzziness: 0.25}, moved)
	assert.Equal(t, 1.0, p.X, "receiver must not change")
	assert.InDelta(t, math.Sqrt(3), p.Distance(moved), 1e-12)
}

// TestVectorNorm covers Norm/Norm2/Dot on a Pythagorean triple.
func TestVectorNorm(t *testing.T) {
	v := geom.Vector{X: 2, Y: 3, Z: 6}
	assert.Equal(t, 49.0, v.Norm2())
	assert.InDelta(t, 7.0, v.Norm(), 1e-12)
	assert.Equal(t, geom.Vector{X: 4, Y: 6, Z: 12}, v.Scale(2))
	assert.Equal(t, geom.Vector{}, v.Sub(v))
}

// TestNewRange validates bounds and the derived queries.
func TestNewRange(t *testing.T) {
	r, err := geom.NewRange(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, r.Length())
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(3.0001))
	assert.True(t, r.ContainsRange(geom.Range{Start: 1.5, End: 2}))
	assert.False(t, r.ContainsRange(geom.Range{Start: 0, End: 2}))
	assert.InDelta(t, 0.25, r.Normalize(1.5), 1e-12)
	assert.InDelta(t, 1.5, r.Denormalize(0.25), 1e-12)

	_, err = geom.NewRange(3, 1)
	require.ErrorIs(t, err, geom.ErrInvalidRange)
	_, err = geom.NewRange(math.NaN(), 1)
	require.ErrorIs(t, err, geom.ErrInvalidRange)
	_, err = geom.NewRange(0, math.Inf(1))
	require.ErrorIs(t, err, geom.ErrInvalidRange)
}

// TestValidateSeries walks the validation order on small fixtures.
func TestValidateSeries(t *testing.T) {
	pts := func(ts ...float64) []geom.Point {
		out := make([]geom.Point, len(ts))
		for i, v := range ts {
			out[i] = geom.Point{Time: v}
		}
		return out
	}

	tests := []struct {
		name string
		in   []geom.Point
		mono geom.Monotonicity
		want error
	}{
		{"empty", nil, geom.NonDecreasing, geom.ErrEmptySeries},
		{"nan time", pts(0, math.NaN()), geom.NonDecreasing, geom.ErrInvalidTime},
		{"decreasing", pts(0, 1, 0.5), geom.NonDecreasing, geom.ErrNonMonotonic},
		{"repeat allowed", pts(0, 1, 1, 2), geom.NonDecreasing, nil},
		{"repeat rejected", pts(0, 1, 1, 2), geom.Increasing, geom.ErrNonMonotonic},
		{"strict ok", pts(0, 1, 2), geom.Increasing, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := geom.ValidateSeries(tc.in, tc.mono)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateFuzziness rejects negative and NaN values only.
func TestValidateFuzziness(t *testing.T) {
	require.NoError(t, geom.ValidateFuzziness(0))
	require.NoError(t, geom.ValidateFuzziness(2.5))
	require.ErrorIs(t, geom.ValidateFuzziness(-1), geom.ErrInvalidFuzziness)
	require.ErrorIs(t, geom.ValidateFuzziness(math.NaN()), geom.ErrInvalidFuzziness)
}

// TestClampWeight covers the NaN mapping and both bounds.
func TestClampWeight(t *testing.T) {
	assert.Equal(t, 0.0, geom.ClampWeight(math.NaN()))
	assert.Equal(t, 0.5, geom.ClampWeight(0.5))
	assert.Equal(t, geom.WeightLimit, geom.ClampWeight(1))
	assert.Equal(t, -geom.WeightLimit, geom.ClampWeight(-3))
	assert.Equal(t, geom.WeightLimit, geom.ClampWeight(math.Inf(1)))
}

// TestArcWeight checks the quarter circle and the two degenerate inputs.
func TestArcWeight(t *testing.T) {
	p0 := geom.Point{X: 1}
	p1 := geom.Point{X: 1, Y: 1}
	p2 := geom.Point{Y: 1}
	assert.InDelta(t, math.Sqrt2/2, geom.ArcWeight(p0, p1, p2), 1e-12)

	// Collinear control polygon: the conic collapses to a segment.
	assert.Equal(t, geom.WeightLimit, geom.ArcWeight(geom.Point{}, geom.Point{X: 1}, geom.Point{X: 2}))

	// Coincident end points produce 0/0.
	assert.Equal(t, 0.0, geom.ArcWeight(p0, p1, p0))
}
