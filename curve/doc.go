// SPDX-License-Identifier: MIT

// Package curve defines the immutable parametric curves produced by the
// fitting pipeline: Bezier segments and B-splines whose control points
// carry a fuzziness value.
//
// The curve parameter is time. A Bezier normalizes time over its Range
// before evaluating the Bernstein basis; a B-spline evaluates its
// Cox–de Boor basis on time directly. Evaluation blends control point
// fuzziness with the same weights as positions, so a fuzzy spline curve
// (FSC) reports an interpolated uncertainty at every parameter.
//
// Every method that changes shape (Differentiate, Part, WithControlPoints)
// returns a new value; the receiver is never modified.
package curve
