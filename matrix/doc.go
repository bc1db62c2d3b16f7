// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra layer of the fuzzy spline
// pipeline.
//
// What & Why:
//
//	Basis matrices, normal equations and the restricted systems of the
//	non-negative least-squares solver are all small dense real matrices
//	(tens to a few hundred rows). The package exposes one Matrix interface
//	with bounds-checked access, a row-major *Dense implementation, and the
//	handful of kernels the pipeline needs: product, transpose, Gram
//	matrix, matrix-vector products, index-set restriction and Solve.
//
//	Solve is backed by gonum's LU (square systems) and QR (tall systems)
//	factorizations. A singular or numerically singular system is reported
//	as ErrSingular; the package never substitutes a guessed solution.
//
// Complexity:
//
//	At/Set are O(1) with bounds checks; Clone/Transpose are O(r·c);
//	Mul is O(r·n·c); Solve is O(n³) for square and O(m·n²) for tall input.
package matrix
