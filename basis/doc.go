// SPDX-License-Identifier: MIT

// Package basis builds the basis-weight rows and matrices that map control
// points to curve samples.
//
// Two families are supported:
//
//   - Bernstein weights for Bezier curves, computed by repeated linear
//     blending of a one-hot coefficient vector (de Casteljau) rather than
//     from binomial coefficients.
//   - B-spline weights via the Cox–de Boor recursion. A row has exactly
//     degree+1 contiguous non-zero entries starting at the span offset.
//
// Knot convention:
//
//	A degree-d B-spline with n control points uses len(knots) = n+d−1
//	(the first and last "phantom" knots of the textbook vector are
//	omitted). The valid domain is [knots[d−1], knots[n−1]]. UniformKnots
//	builds such a vector with d−1 extra knots on each side of the domain
//	at the same spacing, never by knot multiplicity.
//
// Partition of unity:
//
//	Every row of BezierMatrix and BSplineMatrix sums to 1 for parameters
//	inside the valid domain. Outside it the rows are the polynomial
//	continuation of the boundary span and still sum to 1, which the
//	extrapolation code relies on.
//
// Complexity:
//
//	Bernstein: O(d³) per row. BSplineRow: O(d²) after an O(log n) span
//	search.
package basis
