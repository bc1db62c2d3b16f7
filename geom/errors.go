// SPDX-License-Identifier: MIT
// Package geom: sentinel error set.
//
// Every message is prefixed with "geom: " for easy grepping. Callers match
// with errors.Is; helpers attach context with geomErrorf.

package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySeries is returned when a point series is nil or empty.
	ErrEmptySeries = errors.New("geom: empty point series")

	// ErrInvalidTime signals a NaN or ±Inf sample time.
	ErrInvalidTime = errors.New("geom: time is NaN or Inf")

	// ErrNonMonotonic signals that sample times decrease (or, under the
	// strict policy, repeat).
	ErrNonMonotonic = errors.New("geom: times are not monotonic")

	// ErrInvalidRange signals start > end or a non-finite bound.
	ErrInvalidRange = errors.New("geom: invalid range")

	// ErrInvalidFuzziness signals a negative or NaN fuzziness value.
	ErrInvalidFuzziness = errors.New("geom: fuzziness must be non-negative")
)

// geomErrorf wraps err with an operation tag, preserving it for errors.Is.
func geomErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
