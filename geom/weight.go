// SPDX-License-Identifier: MIT
// Package geom: weight clamp policy.
//
// A rational quadratic Bezier with control points P0, P1, P2 and middle
// weight w represents a circular arc when w = cos(θ/2), θ being the arc's
// opening angle seen from the control polygon. |w| reaching 1 degenerates
// the conic into a parabola (w = 1) or its complement, so every weight
// derived from representative points is kept strictly inside (−1, 1).
// Collapsed or collinear representative points make the angle computation
// evaluate to NaN; those are mapped to 0 (a straight segment).

package geom

import "math"

// WeightLimit bounds |w| for rational quadratic Bezier weights.
const WeightLimit = 0.999

// ClampWeight is the single clamp policy for conic weights: NaN → 0, then
// clamp into [−WeightLimit, WeightLimit]. ±Inf clamps to the nearest bound.
func ClampWeight(w float64) float64 {
	if math.IsNaN(w) {
		return 0
	}
	return math.Max(-WeightLimit, math.Min(WeightLimit, w))
}

// ArcWeight returns the middle weight of the rational quadratic Bezier that
// starts at p0, ends at p2 and whose end tangents meet at p1. For a
// circular arc (|p0p1| = |p1p2|) the weight is the cosine of the angle
// between the chord p0→p2 and the leg p0→p1; a quarter circle yields √2/2.
// The result goes through ClampWeight, so coincident points (NaN) give 0
// and collinear points give WeightLimit.
func ArcWeight(p0, p1, p2 Point) float64 {
	chord := p2.Pos().Sub(p0.Pos())
	leg := p1.Pos().Sub(p0.Pos())
	w := chord.Dot(leg) / (chord.Norm() * leg.Norm())
	return ClampWeight(w)
}
