// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"math"
)

// Bernstein returns the degree+1 Bernstein weights at the unit parameter t.
//
// Implementation:
//   - For every column i the one-hot vector e_i is blended degree times
//     with c[j] = (1−t)·c[j] + t·c[j+1]; the surviving c[0] is B_i(t).
//
// Behavior highlights:
//   - t outside [0,1] is accepted and yields the polynomial continuation,
//     which is how Bezier extrapolation evaluates past its end points.
//   - Weights always sum to 1 (up to rounding) for any finite t.
//
// Errors:
//   - ErrInvalidDegree (degree < 1), ErrInvalidParameter (t NaN/Inf).
//
// Complexity:
//   - Time O(d³), Space O(d).
func Bernstein(degree int, t float64) ([]float64, error) {
	if degree < 1 {
		return nil, basisErrorf("Bernstein", ErrInvalidDegree)
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return nil, fmt.Errorf("Bernstein(t=%g): %w", t, ErrInvalidParameter)
	}

	n := degree + 1
	out := make([]float64, n)
	c := make([]float64, n)
	s := 1 - t
	var i, j, k int
	for i = 0; i < n; i++ {
		clear(c)
		c[i] = 1
		for k = 1; k < n; k++ {
			for j = 0; j < n-k; j++ {
				c[j] = s*c[j] + t*c[j+1]
			}
		}
		out[i] = c[0]
	}

	return out, nil
}
