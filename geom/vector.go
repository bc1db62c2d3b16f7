// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// Vector is a free 3D vector. Velocity and acceleration samples of a
// curve are reported as vectors.
type Vector struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector { return Vector{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v − w.
func (v Vector) Sub(w Vector) Vector { return Vector{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns s·v.
func (v Vector) Scale(s float64) Vector { return Vector{s * v.X, s * v.Y, s * v.Z} }

// Dot returns the inner product v·w.
func (v Vector) Dot(w Vector) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Norm2 returns the squared Euclidean length.
func (v Vector) Norm2() float64 { return v.Dot(v) }

// Norm returns the Euclidean length, computed with math.Hypot to avoid
// intermediate overflow for large components.
func (v Vector) Norm() float64 { return math.Hypot(math.Hypot(v.X, v.Y), v.Z) }

// String implements fmt.Stringer.
func (v Vector) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }
