// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n ≤ 0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewIdentity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewColumn copies v into an len(v)×1 column matrix, the shape Solve expects
// for a single right-hand side.
func NewColumn(v []float64) (*Dense, error) {
	m, err := NewDense(len(v), 1)
	if err != nil {
		return nil, fmt.Errorf("NewColumn: %w", err)
	}
	for i, x := range v {
		if err = m.Set(i, 0, x); err != nil {
			return nil, fmt.Errorf("NewColumn: %w", err)
		}
	}

	return m, nil
}
