// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"

	"github.com/katalvlaran/fsc/geom"
	"github.com/katalvlaran/fsc/matrix"
)

// BezierMatrix returns the len(params)×(degree+1) Bernstein matrix. Each
// parameter is a time that is normalized over rng before evaluation.
//
// Errors:
//   - ErrNoSamples, ErrInvalidDegree, ErrInvalidParameter.
func BezierMatrix(degree int, params []float64, rng geom.Range) (*matrix.Dense, error) {
	if len(params) == 0 {
		return nil, basisErrorf("BezierMatrix", ErrNoSamples)
	}
	if degree < 1 {
		return nil, basisErrorf("BezierMatrix", ErrInvalidDegree)
	}
	m, err := matrix.NewDense(len(params), degree+1)
	if err != nil {
		return nil, basisErrorf("BezierMatrix", err)
	}

	var row []float64
	for i, t := range params {
		if row, err = Bernstein(degree, rng.Normalize(t)); err != nil {
			return nil, fmt.Errorf("BezierMatrix: row %d: %w", i, err)
		}
		for j, w := range row {
			if err = m.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("BezierMatrix: row %d: %w", i, err)
			}
		}
	}

	return m, nil
}

// BSplineMatrix returns the len(params)×ncp Cox–de Boor matrix for the
// given knot vector. Only the degree+1 span entries of each row are
// written; the rest stay zero.
//
// Errors:
//   - ErrNoSamples, knot validation errors, ErrInvalidParameter.
func BSplineMatrix(degree int, knots []float64, ncp int, params []float64) (*matrix.Dense, error) {
	if len(params) == 0 {
		return nil, basisErrorf("BSplineMatrix", ErrNoSamples)
	}
	if err := ValidateKnots(degree, knots, ncp); err != nil {
		return nil, basisErrorf("BSplineMatrix", err)
	}
	m, err := matrix.NewDense(len(params), ncp)
	if err != nil {
		return nil, basisErrorf("BSplineMatrix", err)
	}

	var first int
	var vals []float64
	for i, t := range params {
		if first, vals, err = NonZero(degree, knots, ncp, t); err != nil {
			return nil, fmt.Errorf("BSplineMatrix: row %d: %w", i, err)
		}
		for j, w := range vals {
			if err = m.Set(i, first+j, w); err != nil {
				return nil, fmt.Errorf("BSplineMatrix: row %d: %w", i, err)
			}
		}
	}

	return m, nil
}
