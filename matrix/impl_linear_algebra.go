// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels the fitting pipeline
// runs on any Matrix implementation: product, transpose, Gram matrix,
// matrix-vector products, row scaling and Solve. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Keep the hand-written kernels (Transpose, MatVec, MatTVec, ScaleRows)
//     on the flat *Dense buffer where a single pass is all that is needed.
//   - Delegate factorizations (LU, QR) and the BLAS-backed products (Mul,
//     Gram) to gonum.org/v1/gonum/mat.
//
// Notes:
//   - All kernels use the central validators and return sentinels wrapped via
//     matrixErrorf with an op* tag.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opGram      = "Gram"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opMatTVec   = "MatTVec"
	opScaleRows = "ScaleRows"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toGonum exposes m as a gonum matrix. A *Dense shares its buffer (gonum
// only reads it here); other implementations are copied through At.
func toGonum(m Matrix) (*mat.Dense, error) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, ErrInvalidDimensions
	}
	if d, ok := m.(*Dense); ok {
		return mat.NewDense(d.r, d.c, d.data), nil
	}

	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, rows*cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			buf[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}

// fromGonum copies a gonum result into a fresh *Dense, rejecting non-finite
// entries so that a blown-up solve never leaks into the pipeline.
func fromGonum(g mat.Matrix) (*Dense, error) {
	rows, cols := g.Dims()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = g.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// Mul computes C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Hand both operands to gonum's Dense.Mul and copy the product.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ga, err := toGonum(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	gb, err := toGonum(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var prod mat.Dense
	prod.Mul(ga, gb)
	res, err := fromGonum(&prod)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Gram returns the symmetric product BᵗB (cols × cols), the left-hand side
// of the normal equations. It is computed as a symmetric rank-k update so
// only one triangle is accumulated.
//
// Errors:
//   - ErrNilMatrix (nil input).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Gram(b Matrix) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	gb, err := toGonum(b)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	// SymOuterK computes x·xᵀ; with x = Bᵗ that is BᵗB.
	var sym mat.SymDense
	sym.SymOuterK(1, gb.T())
	res, err := fromGonum(&sym)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path copies *Dense data via flat indexing; fallback uses At/Set.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - If you only need Aᵗ*x, prefer MatTVec instead of forming Aᵗ.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 {
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// MatTVec computes y = mᵗ * x without materializing the transpose.
// It is the right-hand side Bᵗy of the normal equations.
//
// Contract: m non-nil; x non-nil; len(x) == m.Rows().
// Complexity: Time O(r*c), Space O(c) for y.
func MatTVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	var i, j int
	var xv float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			xv = x[i]
			if xv == 0 {
				continue
			}
			base = i * cols
			for j = 0; j < cols; j++ {
				y[j] += d.data[base+j] * xv
			}
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		xv = x[i]
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatTVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[j] += mv * xv
		}
	}

	return y, nil
}

// ScaleRows returns diag(w)·m, i.e. row i multiplied by w[i]. Weighted least
// squares scales B and Y by √w before forming the normal equations.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(w) != m.Rows()),
//     ErrNaNInf (non-finite weight).
func ScaleRows(m Matrix, w []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	if err := ValidateVecLen(w, m.Rows()); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		if math.IsNaN(w[i]) || math.IsInf(w[i], 0) {
			return nil, matrixErrorf(opScaleRows, fmt.Errorf("weight %d: %w", i, ErrNaNInf))
		}
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScaleRows, err)
			}
			res.data[i*cols+j] = v * w[i]
		}
	}

	return res, nil
}

// Solve returns X such that A·X = B.
//
// Implementation:
//   - Stage 1: ValidateSolvable(A, B): both non-nil, same row count and at
//     least as many rows as columns in A.
//   - Stage 2: gonum Dense.Solve factorizes A with LU when it is square and
//     with QR when it is tall (least-squares solution).
//   - Stage 3: a gonum Condition error or ErrSingular is reported as
//     ErrSingular; no partial solution is returned.
//
// Inputs:
//   - a: coefficient matrix (m × n), m ≥ n.
//   - b: right-hand sides (m × k); every column is solved in the same call.
//
// Returns:
//   - *Dense: X with shape (n × k).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrUnderdetermined (validation).
//   - ErrSingular (A is singular or its condition number exceeds gonum's
//     ConditionTolerance).
//   - ErrNaNInf (solution not finite).
//
// Complexity:
//   - Time O(n³ + n²k) square, O(m·n² + m·n·k) tall. Space O(m·n).
func Solve(a, b Matrix) (*Dense, error) {
	if err := ValidateSolvable(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	ga, err := toGonum(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	gb, err := toGonum(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var x mat.Dense
	if err = x.Solve(ga, gb); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) || errors.Is(err, mat.ErrSingular) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("%w (%v)", ErrSingular, err))
		}

		return nil, matrixErrorf(opSolve, err)
	}

	res, err := fromGonum(&x)
	if err != nil {
		// A finite system with a non-finite answer is numerically singular.
		return nil, matrixErrorf(opSolve, fmt.Errorf("%w: %w", ErrSingular, err))
	}

	return res, nil
}
