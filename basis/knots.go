// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"math"
)

// knotEpsilon absorbs rounding when the domain length is an exact multiple
// of the interval (e.g. 0.3/0.1).
const knotEpsilon = 1e-9

// UniformKnots builds a uniform knot vector whose domain is exactly
// [start, end] for a degree-d spline.
//
// Implementation:
//   - k = ceil(len/interval) spans (at least one), spacing h = len/k, so the
//     realized spacing never exceeds interval.
//   - Knots start + j·h for j = −(d−1) … k+(d−1): the spacing is continued
//     linearly d−1 times past each end of the domain.
//
// Returns len = k + 2d − 1 knots, i.e. ControlPointCount = k + d.
//
// Errors:
//   - ErrInvalidDegree, ErrInvalidDomain (start ≥ end or non-finite),
//     ErrInvalidInterval (interval ≤ 0 or non-finite).
func UniformKnots(degree int, start, end, interval float64) ([]float64, error) {
	if degree < 1 {
		return nil, basisErrorf("UniformKnots", ErrInvalidDegree)
	}
	if math.IsNaN(start) || math.IsInf(start, 0) || math.IsNaN(end) || math.IsInf(end, 0) || start >= end {
		return nil, fmt.Errorf("UniformKnots([%g, %g]): %w", start, end, ErrInvalidDomain)
	}
	if math.IsNaN(interval) || math.IsInf(interval, 0) || interval <= 0 {
		return nil, fmt.Errorf("UniformKnots(interval=%g): %w", interval, ErrInvalidInterval)
	}

	length := end - start
	k := int(math.Ceil(length/interval - knotEpsilon))
	if k < 1 {
		k = 1
	}
	h := length / float64(k)

	out := make([]float64, k+2*degree-1)
	for i := range out {
		out[i] = start + float64(i-(degree-1))*h
	}
	// Pin the domain ends so they are not subject to accumulated rounding.
	out[degree-1] = start
	out[degree-1+k] = end

	return out, nil
}

// ControlPointCount returns the number of control points implied by a
// knot vector of the given degree (len(knots) − degree + 1).
func ControlPointCount(degree, knotCount int) int {
	return knotCount - degree + 1
}
