// SPDX-License-Identifier: MIT

// Package fsc turns noisy, time-stamped 3D samples (a hand-drawn stroke, a
// sensor trace) into Fuzzy Spline Curves: smooth B-splines whose control
// points carry a non-negative fuzziness describing local spatial
// uncertainty.
//
// Subpackages, leaves first:
//
//	geom       Point, Vector, Range and series validation
//	matrix     dense matrix with error-returning accessors; products and
//	           least-squares solves backed by gonum/mat
//	basis      Bernstein and Cox-de Boor basis rows, uniform knots,
//	           basis matrices
//	curve      immutable Bezier and B-spline curves: evaluate,
//	           differentiate, trim
//	fit        (weighted) least-squares Bezier and B-spline fits
//	condition  boundary extrapolation (orders 0/1/2) and gap filling
//	nnls       projected quasi-Newton L-BFGS non-negative least squares
//	fuzzy      the end-to-end builder: FromPoints, FromObservations
//
// The cmd/fscfit tool wraps fuzzy.FromPoints: CSV in, JSON out, optional
// PNG plot.
//
// Quick start:
//
//	c, err := fuzzy.FromPoints(samples, fuzzy.WithSeed(1))
//	if err != nil { … }
//	for _, p := range c.ControlPoints() {
//		fmt.Println(p.Pos(), p.Fuzziness)
//	}
//
//	go get github.com/katalvlaran/fsc
package fsc
