// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"math"
	"sort"
)

// ValidateKnots checks degree, knot ordering and the length invariant
// len(knots) == ncp + degree − 1 with ncp ≥ degree + 1.
//
// Errors: ErrInvalidDegree, ErrKnotCount, ErrKnotOrder.
func ValidateKnots(degree int, knots []float64, ncp int) error {
	if degree < 1 {
		return ErrInvalidDegree
	}
	if ncp < degree+1 || len(knots) != ncp+degree-1 {
		return fmt.Errorf("%d knots for %d control points of degree %d: %w", len(knots), ncp, degree, ErrKnotCount)
	}
	for i, k := range knots {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return fmt.Errorf("knot %d: %w", i, ErrKnotOrder)
		}
		if i > 0 && k < knots[i-1] {
			return fmt.Errorf("knot %d (%g < %g): %w", i, k, knots[i-1], ErrKnotOrder)
		}
	}
	if knots[degree-1] >= knots[ncp-1] {
		return ErrInvalidDomain
	}

	return nil
}

// FindSpan returns the span index s ∈ [degree−1, ncp−2] with
// knots[s] ≤ t < knots[s+1]. Parameters before the domain map to the
// first span and parameters at or past its end map to the last one.
// Inputs are assumed validated (ValidateKnots).
//
// Complexity: O(log n).
func FindSpan(degree int, knots []float64, ncp int, t float64) int {
	lo, hi := degree-1, ncp-2
	if t < knots[lo+1] {
		return lo
	}
	if t >= knots[hi] {
		return hi
	}
	// First index in (lo, hi] whose knot exceeds t; the span starts just before it.
	idx := sort.Search(hi-lo, func(i int) bool { return knots[lo+1+i] > t })

	return lo + idx
}

// NonZero evaluates the degree+1 basis functions that can be non-zero at t.
// It returns the index of the first one (the column offset in a basis row)
// and their values.
//
// Implementation:
//   - Cox–de Boor in the triangular form: left[j] = t − knots[s+1−j],
//     right[j] = knots[s+j] − t, blended degree by degree.
//   - A zero denominator (repeated knots) contributes 0 instead of NaN.
//
// Errors:
//   - ErrInvalidParameter (t NaN/Inf); knot errors from ValidateKnots.
//
// Complexity:
//   - Time O(d²) + O(log n), Space O(d).
func NonZero(degree int, knots []float64, ncp int, t float64) (int, []float64, error) {
	if err := ValidateKnots(degree, knots, ncp); err != nil {
		return 0, nil, basisErrorf("NonZero", err)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, nil, fmt.Errorf("NonZero(t=%g): %w", t, ErrInvalidParameter)
	}

	s := FindSpan(degree, knots, ncp, t)
	n := make([]float64, degree+1)
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)
	n[0] = 1

	var j, r int
	var saved, temp, den float64
	for j = 1; j <= degree; j++ {
		left[j] = t - knots[s+1-j]
		right[j] = knots[s+j] - t
		saved = 0
		for r = 0; r < j; r++ {
			den = right[r+1] + left[j-r]
			temp = 0
			if den != 0 {
				temp = n[r] / den
			}
			n[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		n[j] = saved
	}

	return s + 1 - degree, n, nil
}

// BSplineRow returns the full basis row (length ncp) at t: degree+1
// contiguous entries at the span offset, zeros elsewhere.
func BSplineRow(degree int, knots []float64, ncp int, t float64) ([]float64, error) {
	first, vals, err := NonZero(degree, knots, ncp, t)
	if err != nil {
		return nil, err
	}
	row := make([]float64, ncp)
	copy(row[first:], vals)

	return row, nil
}
