// SPDX-License-Identifier: MIT

// Package fuzzy builds Fuzzy Spline Curves (FSC): B-splines whose control
// points carry a non-negative fuzziness estimated from the data.
//
// FromPoints runs the full pipeline on raw samples:
//
//	raw points
//	  → order-2 boundary extrapolation, then gap filling   (condition)
//	  → unweighted cubic B-spline fit                       (fit)
//	  → velocity and acceleration splines, sampled at a fixed resolution
//	  → per-sample fuzziness vCoeff·‖v‖ + aCoeff·‖a‖        (Observe)
//	  → non-negative least squares against the basis matrix (nnls)
//	  → control points with fuzziness, trimmed to the input time range
//
// FromObservations runs only the last two stages for a spline and a set of
// observed fuzziness values.
//
// Every stage consumes the immutable output of the previous one; there is
// no state between calls and independent strokes can be processed
// concurrently. The only randomness is the optional jitter of synthesized
// boundary samples, driven by WithRand or WithSeed.
package fuzzy
