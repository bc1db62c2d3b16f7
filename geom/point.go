// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Point is a time-stamped 3D sample.
//
// Fuzziness is the positional uncertainty attached to the point. Zero means
// "not estimated"; estimated values are always ≥ 0. Point is a value type:
// all methods return new points.
type Point struct {
	X, Y, Z   float64
	Time      float64
	Fuzziness float64
}

// Pos returns the position of p as a vector from the origin.
func (p Point) Pos() Vector { return Vector{p.X, p.Y, p.Z} }

// Distance returns the Euclidean distance between the positions of p and q.
// Time and fuzziness do not participate.
func (p Point) Distance(q Point) float64 { return q.Pos().Sub(p.Pos()).Norm() }

// Move returns p translated by v. Time and fuzziness are kept.
func (p Point) Move(v Vector) Point {
	p.X += v.X
	p.Y += v.Y
	p.Z += v.Z
	return p
}

// Divide returns the point dividing the segment p→q internally in the
// ratio m:n. Position, time and fuzziness are all interpolated, so
// Divide(q, 1, 1) is the midpoint in space and in time.
//
// m+n must be non-zero; the caller owns that contract.
func (p Point) Divide(q Point, m, n float64) Point {
	s := m + n
	lerp := func(a, b float64) float64 { return (n*a + m*b) / s }
	return Point{
		X:         lerp(p.X, q.X),
		Y:         lerp(p.Y, q.Y),
		Z:         lerp(p.Z, q.Z),
		Time:      lerp(p.Time, q.Time),
		Fuzziness: lerp(p.Fuzziness, q.Fuzziness),
	}
}

// WithTime returns a copy of p stamped with time t.
func (p Point) WithTime(t float64) Point {
	p.Time = t
	return p
}

// WithFuzziness returns a copy of p carrying fuzziness f. The value is not
// validated here; see ValidateFuzziness.
func (p Point) WithFuzziness(f float64) Point {
	p.Fuzziness = f
	return p
}

// At returns a point at position v stamped with time t and zero fuzziness.
func At(v Vector, t float64) Point { return Point{X: v.X, Y: v.Y, Z: v.Z, Time: t} }

// ValidateFuzziness rejects negative and NaN fuzziness values.
func ValidateFuzziness(f float64) error {
	if math.IsNaN(f) || f < 0 {
		return geomErrorf("ValidateFuzziness", ErrInvalidFuzziness)
	}
	return nil
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g @%g ±%g)", p.X, p.Y, p.Z, p.Time, p.Fuzziness)
}
