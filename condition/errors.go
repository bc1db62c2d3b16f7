// SPDX-License-Identifier: MIT

package condition

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOrder is returned for an extrapolation order outside {0, 1, 2}.
	ErrUnsupportedOrder = errors.New("condition: unsupported extrapolation order")

	// ErrInvalidLength signals a non-positive or non-finite extrapolation length.
	ErrInvalidLength = errors.New("condition: extrapolation length must be > 0")

	// ErrInvalidInterval signals a non-positive or non-finite sample interval.
	ErrInvalidInterval = errors.New("condition: interval must be > 0")

	// ErrInvalidSpan signals a non-positive or non-finite maximum span.
	ErrInvalidSpan = errors.New("condition: max span must be > 0")
)

func conditionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
