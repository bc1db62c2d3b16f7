// SPDX-License-Identifier: MIT

// Package fit computes curve control points from time-stamped samples by
// least squares.
//
// Given a basis matrix B (N samples × M control points) and sample
// coordinates Y (N × 3) the control points X (M × 3) solve the normal
// equations
//
//	(BᵗB)·X = Bᵗ·Y
//
// in one multi-column solve. With N = M and a non-singular B the fit
// interpolates the samples exactly; with N > M it minimizes the residual
// ‖BX − Y‖. A singular or numerically singular BᵗB is a hard failure
// (ErrSingular); no substitute fit is guessed.
//
// Bezier and BSpline wrap the solve with basis construction: samples are
// validated (strictly increasing finite times, at least degree+1 of them)
// before any matrix is allocated.
package fit
