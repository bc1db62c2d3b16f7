// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Range is a closed parameter interval [Start, End] with Start ≤ End.
// Use NewRange to build one from untrusted input.
type Range struct {
	Start, End float64
}

// NewRange validates and returns [start, end].
//
// Errors:
//   - ErrInvalidRange when either bound is NaN/±Inf or start > end.
func NewRange(start, end float64) (Range, error) {
	if isNonFinite(start) || isNonFinite(end) || start > end {
		return Range{}, fmt.Errorf("NewRange(%g, %g): %w", start, end, ErrInvalidRange)
	}
	return Range{Start: start, End: end}, nil
}

// Length returns End − Start.
func (r Range) Length() float64 { return r.End - r.Start }

// Contains reports whether t lies in [Start, End].
func (r Range) Contains(t float64) bool { return t >= r.Start && t <= r.End }

// ContainsRange reports whether o lies entirely inside r.
func (r Range) ContainsRange(o Range) bool { return o.Start >= r.Start && o.End <= r.End }

// Normalize maps t to the unit parameter (t−Start)/Length. A degenerate
// range maps everything to 0.
func (r Range) Normalize(t float64) float64 {
	l := r.Length()
	if l == 0 {
		return 0
	}
	return (t - r.Start) / l
}

// Denormalize is the inverse of Normalize.
func (r Range) Denormalize(u float64) float64 { return r.Start + u*r.Length() }

// String implements fmt.Stringer.
func (r Range) String() string { return fmt.Sprintf("[%g, %g]", r.Start, r.End) }

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
