// SPDX-License-Identifier: MIT

// Package nnls solves non-negative least-squares problems
//
//	minimize ‖B·x − y‖²  subject to  x ≥ 0
//
// with a projected quasi-Newton method (PQN-LBFGS).
//
// Algorithm:
//
//  1. Start from the unconstrained least-squares solution of
//     (BᵗB)·x = Bᵗy clipped to x ≥ 0 (zeros when BᵗB is singular).
//  2. Each iteration splits the variables into a free set (x_i > 0, or
//     x_i = 0 with gradient ≤ 0) and a set held at zero, then works on the
//     free set only:
//     - direction: L-BFGS two-loop recursion over the most recent curvature
//     pairs (ring buffer, 7 by default) restricted to the free set;
//     - step: Armijo backtracking along the projection arc
//     P(x − α·d), α = 1, ½, ¼, … with slope coefficient τ = 0.25;
//     - the accepted step is scattered back and a new (Δx, Δgradient)
//     pair is pushed, evicting the oldest one.
//  3. Stop when the squared norm of the free-set step drops below 1e-14.
//
// The returned vector is always feasible (x ≥ 0). Reaching the iteration
// cap (1000 by default) is not an error: the current iterate is returned
// with Converged=false and a warning is logged through the configured
// *slog.Logger.
//
// Ratios that evaluate to 0/0 or ±Inf inside the recursion are replaced
// by 1.
package nnls
