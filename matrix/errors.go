// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (possibly wrapped with an operation
// tag via matrixErrorf) and tests check them via errors.Is. No kernel
// panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: " for grepping. Sentinels are not
// %w-wrapped at definition; context is attached at the detection site with
// matrixErrorf / denseErrorf.
var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// or that row slices passed to NewDenseFrom are ragged.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Mul
	// where a.Cols != b.Rows, or Solve where a.Rows != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrUnderdetermined signals a Solve request with fewer equations than
	// unknowns (a.Rows < a.Cols).
	ErrUnderdetermined = errors.New("matrix: system is underdetermined")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a system is singular or so ill-conditioned
	// that its solution carries no significant digits.
	ErrSingular = errors.New("matrix: singular matrix")
)
