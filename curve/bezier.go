// SPDX-License-Identifier: MIT

package curve

import (
	"fmt"

	"github.com/katalvlaran/fsc/basis"
	"github.com/katalvlaran/fsc/geom"
)

// Bezier is a Bezier curve of degree len(points)−1 parameterized by time
// over rng.
type Bezier struct {
	points []geom.Point
	rng    geom.Range
}

// NewBezier validates and copies the control points.
//
// Errors: ErrTooFewControlPoints (< 2 points), geom.ErrInvalidRange,
// ErrDegenerateRange.
func NewBezier(points []geom.Point, rng geom.Range) (*Bezier, error) {
	if len(points) < 2 {
		return nil, curveErrorf("NewBezier", ErrTooFewControlPoints)
	}
	if _, err := geom.NewRange(rng.Start, rng.End); err != nil {
		return nil, curveErrorf("NewBezier", err)
	}
	if rng.Length() == 0 {
		return nil, curveErrorf("NewBezier", ErrDegenerateRange)
	}
	for i, p := range points {
		if err := geom.ValidateFuzziness(p.Fuzziness); err != nil {
			return nil, fmt.Errorf("NewBezier: point %d: %w", i, err)
		}
	}

	return &Bezier{points: append([]geom.Point(nil), points...), rng: rng}, nil
}

// Degree returns len(ControlPoints())−1.
func (b *Bezier) Degree() int { return len(b.points) - 1 }

// ControlPoints returns a copy of the control points.
func (b *Bezier) ControlPoints() []geom.Point { return append([]geom.Point(nil), b.points...) }

// Range returns the time range the curve is parameterized over.
func (b *Bezier) Range() geom.Range { return b.rng }

// Evaluate returns the curve point at time t.
func (b *Bezier) Evaluate(t float64) (geom.Point, error) {
	return b.EvaluateAt(b.rng.Normalize(t))
}

// EvaluateAt returns the curve point at the unit parameter u. Values of u
// outside [0,1] extrapolate along the polynomial; the returned Time is the
// matching denormalized time.
func (b *Bezier) EvaluateAt(u float64) (geom.Point, error) {
	w, err := basis.Bernstein(b.Degree(), u)
	if err != nil {
		return geom.Point{}, curveErrorf("Bezier.EvaluateAt", err)
	}

	return blend(b.points, 0, w, b.rng.Denormalize(u)), nil
}

// Differentiate returns the derivative with respect to time, a Bezier of
// degree−1 over the same range. Derivative control points carry no
// fuzziness.
//
// Errors: ErrCannotDifferentiate for degree 1.
func (b *Bezier) Differentiate() (*Bezier, error) {
	d := b.Degree()
	if d < 2 {
		return nil, curveErrorf("Bezier.Differentiate", ErrCannotDifferentiate)
	}
	scale := float64(d) / b.rng.Length()
	q := make([]geom.Point, d)
	for j := 0; j < d; j++ {
		v := b.points[j+1].Pos().Sub(b.points[j].Pos()).Scale(scale)
		q[j] = geom.At(v, b.rng.Denormalize(float64(j)/float64(d-1)))
	}

	return &Bezier{points: q, rng: b.rng}, nil
}

// blend sums points[first+j] weighted by w[j] for position and fuzziness.
func blend(points []geom.Point, first int, w []float64, t float64) geom.Point {
	var pos geom.Vector
	var fuzz float64
	for j, wj := range w {
		p := points[first+j]
		pos = pos.Add(p.Pos().Scale(wj))
		fuzz += wj * p.Fuzziness
	}
	out := geom.At(pos, t)
	out.Fuzziness = fuzz

	return out
}
