// SPDX-License-Identifier: MIT

package basis

import (
	"errors"
	"fmt"
)

// Sentinel errors for basis construction. All messages are prefixed "basis: ".
var (
	// ErrInvalidDegree is returned when degree < 1.
	ErrInvalidDegree = errors.New("basis: degree must be >= 1")

	// ErrInvalidParameter signals a NaN or ±Inf curve parameter.
	ErrInvalidParameter = errors.New("basis: parameter is NaN or Inf")

	// ErrKnotCount signals len(knots) != ncp + degree − 1, or too few
	// control points for the degree.
	ErrKnotCount = errors.New("basis: knot count does not match control points")

	// ErrKnotOrder signals a decreasing or non-finite knot vector.
	ErrKnotOrder = errors.New("basis: knots must be finite and non-decreasing")

	// ErrInvalidInterval signals a non-positive or non-finite knot interval.
	ErrInvalidInterval = errors.New("basis: knot interval must be > 0")

	// ErrInvalidDomain signals an empty or non-finite knot domain.
	ErrInvalidDomain = errors.New("basis: domain must satisfy start < end")

	// ErrNoSamples is returned when a matrix is requested for zero parameters.
	ErrNoSamples = errors.New("basis: no sample parameters")
)

func basisErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
