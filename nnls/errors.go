// SPDX-License-Identifier: MIT

package nnls

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch signals len(y) != B.Rows() or len(x) != B.Cols().
	ErrDimensionMismatch = errors.New("nnls: dimension mismatch")

	// ErrNonFinite signals a NaN or ±Inf observation.
	ErrNonFinite = errors.New("nnls: observation is NaN or Inf")
)

func nnlsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
