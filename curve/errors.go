// SPDX-License-Identifier: MIT

package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewControlPoints is returned when a curve has fewer than
	// degree+1 control points.
	ErrTooFewControlPoints = errors.New("curve: too few control points")

	// ErrCannotDifferentiate is returned when differentiating a degree-1
	// curve, whose derivative is a constant and not a curve.
	ErrCannotDifferentiate = errors.New("curve: degree too low to differentiate")

	// ErrRangeOutOfDomain signals a valid range that is not inside the knot
	// domain.
	ErrRangeOutOfDomain = errors.New("curve: range outside the curve domain")

	// ErrControlPointCount signals a replacement control point slice of the
	// wrong length.
	ErrControlPointCount = errors.New("curve: control point count mismatch")

	// ErrDegenerateRange signals a zero-length Bezier range.
	ErrDegenerateRange = errors.New("curve: range has zero length")
)

func curveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
