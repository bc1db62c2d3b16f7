// SPDX-License-Identifier: MIT

package fuzzy

import (
	"errors"
	"fmt"
)

var (
	// ErrDegreeTooLow is returned by FromPoints for degree < 3: the
	// acceleration spline would not exist.
	ErrDegreeTooLow = errors.New("fuzzy: degree must be >= 3 to estimate fuzziness from points")

	// ErrObservationCount signals parameter and fuzziness slices of
	// different lengths.
	ErrObservationCount = errors.New("fuzzy: parameter and observation counts differ")

	// ErrNilCurve signals a nil *curve.BSpline argument.
	ErrNilCurve = errors.New("fuzzy: nil curve")
)

func fuzzyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
