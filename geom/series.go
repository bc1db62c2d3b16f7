// SPDX-License-Identifier: MIT
// Package geom: series validators shared by every pipeline stage.
//
// The checks run in a fixed order (empty → time finiteness → monotonicity)
// so the first violation reported is deterministic.

package geom

import "fmt"

// Monotonicity selects how ValidateSeries treats repeated sample times.
type Monotonicity int

const (
	// NonDecreasing accepts repeated times (gap interpolation input).
	NonDecreasing Monotonicity = iota
	// Increasing requires strictly increasing times (spline construction).
	Increasing
)

// ValidateSeries checks that points is non-empty, every time is finite,
// and times follow the requested monotonicity.
//
// Errors:
//   - ErrEmptySeries, ErrInvalidTime, ErrNonMonotonic (wrapped with the
//     offending index).
//
// Complexity: O(n).
func ValidateSeries(points []Point, mono Monotonicity) error {
	if len(points) == 0 {
		return geomErrorf("ValidateSeries", ErrEmptySeries)
	}
	for i, p := range points {
		if isNonFinite(p.Time) {
			return fmt.Errorf("ValidateSeries: point %d: %w", i, ErrInvalidTime)
		}
		if i == 0 {
			continue
		}
		prev := points[i-1].Time
		if p.Time < prev || (mono == Increasing && p.Time == prev) {
			return fmt.Errorf("ValidateSeries: point %d (t=%g after %g): %w", i, p.Time, prev, ErrNonMonotonic)
		}
	}
	return nil
}

// Times extracts the sample times of points into a fresh slice.
func Times(points []Point) []float64 {
	ts := make([]float64, len(points))
	for i, p := range points {
		ts[i] = p.Time
	}
	return ts
}

// TimeRange returns [first.Time, last.Time] of a validated series.
func TimeRange(points []Point) (Range, error) {
	if len(points) == 0 {
		return Range{}, geomErrorf("TimeRange", ErrEmptySeries)
	}
	return NewRange(points[0].Time, points[len(points)-1].Time)
}
