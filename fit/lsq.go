// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fsc/matrix"
)

// LeastSquares solves (BᵗB)·X = Bᵗ·Y for X in a single multi-column solve.
//
// Implementation:
//   - Stage 1: validate shapes (B.Rows == Y.Rows ≥ B.Cols).
//   - Stage 2: form the Gram matrix BᵗB and the right-hand sides BᵗY.
//   - Stage 3: solve the square system; a singular system maps to
//     ErrSingular.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//   - ErrTooFewPoints (fewer rows than columns).
//   - ErrSingular.
//
// Complexity:
//   - Time O(N·M² + M³), Space O(M² + M·K).
func LeastSquares(b, y matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fitErrorf("LeastSquares", err)
	}
	if err := matrix.ValidateNotNil(y); err != nil {
		return nil, fitErrorf("LeastSquares", err)
	}
	if b.Rows() != y.Rows() {
		return nil, fmt.Errorf("LeastSquares: %d basis rows, %d samples: %w", b.Rows(), y.Rows(), matrix.ErrDimensionMismatch)
	}
	if b.Rows() < b.Cols() {
		return nil, fmt.Errorf("LeastSquares: %d samples for %d unknowns: %w", b.Rows(), b.Cols(), ErrTooFewPoints)
	}

	gram, err := matrix.Gram(b)
	if err != nil {
		return nil, fitErrorf("LeastSquares", err)
	}
	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, fitErrorf("LeastSquares", err)
	}
	rhs, err := matrix.Mul(bt, y)
	if err != nil {
		return nil, fitErrorf("LeastSquares", err)
	}

	x, err := matrix.Solve(gram, rhs)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("LeastSquares: %w (%v)", ErrSingular, err)
		}

		return nil, fitErrorf("LeastSquares", err)
	}

	return x, nil
}

// WeightedLeastSquares solves (BᵗWB)·X = BᵗWY with W = diag(w) by scaling
// the rows of B and Y with √w and delegating to LeastSquares.
//
// Errors: ErrWeightCount, ErrInvalidWeight and all LeastSquares errors.
func WeightedLeastSquares(b, y matrix.Matrix, w []float64) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fitErrorf("WeightedLeastSquares", err)
	}
	if len(w) != b.Rows() {
		return nil, fmt.Errorf("WeightedLeastSquares: %d weights, %d rows: %w", len(w), b.Rows(), ErrWeightCount)
	}
	sw := make([]float64, len(w))
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("WeightedLeastSquares: weight %d = %g: %w", i, v, ErrInvalidWeight)
		}
		sw[i] = math.Sqrt(v)
	}

	bw, err := matrix.ScaleRows(b, sw)
	if err != nil {
		return nil, fitErrorf("WeightedLeastSquares", err)
	}
	yw, err := matrix.ScaleRows(y, sw)
	if err != nil {
		return nil, fitErrorf("WeightedLeastSquares", err)
	}

	return LeastSquares(bw, yw)
}

// Residual returns the Frobenius norm ‖B·X − Y‖.
func Residual(b, x, y matrix.Matrix) (float64, error) {
	bx, err := matrix.Mul(b, x)
	if err != nil {
		return 0, fitErrorf("Residual", err)
	}
	if bx.Rows() != y.Rows() || bx.Cols() != y.Cols() {
		return 0, fitErrorf("Residual", matrix.ErrDimensionMismatch)
	}

	var sum, p, q float64
	for i := 0; i < bx.Rows(); i++ {
		for j := 0; j < bx.Cols(); j++ {
			if p, err = bx.At(i, j); err != nil {
				return 0, fitErrorf("Residual", err)
			}
			if q, err = y.At(i, j); err != nil {
				return 0, fitErrorf("Residual", err)
			}
			sum += (p - q) * (p - q)
		}
	}

	return math.Sqrt(sum), nil
}
