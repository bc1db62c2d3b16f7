// SPDX-License-Identifier: MIT

// Package condition prepares raw point series for spline fitting.
//
// Two operations are provided:
//
//   - Extrapolate adds synthetic samples before the first and after the
//     last point. Least-squares fits are poorly constrained near the ends
//     of a series; padding the series moves that weakness outside the range
//     that is later kept. Order 0 holds the boundary position, orders 1
//     and 2 continue a weighted linear or quadratic Bezier fitted to the
//     samples near each boundary.
//   - Interpolate fills temporal gaps longer than a maximum span with
//     copies of the preceding sample, so every knot span of the later fit
//     sees data.
//
// Interpolate is idempotent for a fixed span. Extrapolate is NOT: every
// call pads the series again, so conditioning an already conditioned
// series adds a further layer. Callers run it exactly once.
//
// Randomness: samples synthesized to make a boundary fit well-posed can be
// jittered by a caller-supplied *rand.Rand (WithRand / WithSeed). Without
// one no jitter is applied and the output is fully deterministic.
package condition
