// SPDX-License-Identifier: MIT

// Package geom holds the small value types the fuzzy spline pipeline is
// built from: time-stamped 3D points that optionally carry a fuzziness
// value, free vectors, and closed parameter ranges.
//
// All types are plain values. Methods never mutate their receiver; every
// transform returns a fresh value, so point slices handed to later stages
// can be shared without copying.
//
// The package also owns the series validators used by every stage
// (ValidateSeries) and the single weight clamp policy (ClampWeight) used
// wherever a rational quadratic Bezier weight is derived from
// representative points.
package geom
