// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fsc/matrix"
)

var (
	// ErrTooFewPoints is returned when fewer than degree+1 samples are given.
	ErrTooFewPoints = errors.New("fit: too few sample points for degree")

	// ErrSingular wraps matrix.ErrSingular when the normal equations cannot
	// be solved. errors.Is matches both sentinels.
	ErrSingular = fmt.Errorf("fit: singular normal equations: %w", matrix.ErrSingular)

	// ErrWeightCount signals a weight vector whose length differs from the
	// sample count.
	ErrWeightCount = errors.New("fit: weight count does not match samples")

	// ErrInvalidWeight signals a negative or non-finite weight.
	ErrInvalidWeight = errors.New("fit: weights must be finite and >= 0")
)

func fitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
