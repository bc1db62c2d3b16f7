// SPDX-License-Identifier: MIT

package condition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fsc/geom"
)

// spanEpsilon is the relative slack on maxSpan. Gaps produced by a
// previous Interpolate call differ from maxSpan only by rounding and must
// not trigger another insertion.
const spanEpsilon = 1e-9

// Interpolate fills every time gap longer than maxSpan with copies of the
// preceding sample placed at maxSpan steps, until the remaining gap is at
// most maxSpan.
//
// Behavior highlights:
//   - Never removes samples; the output is at least as long as the input.
//   - Output times are non-decreasing, inserted times strictly increase.
//   - A series whose gaps are all ≤ maxSpan is returned unchanged (copied).
//   - Idempotent: Interpolate(Interpolate(p, s), s) equals Interpolate(p, s).
//
// Errors:
//   - ErrInvalidSpan (maxSpan ≤ 0 or not finite).
//   - geom.ErrEmptySeries, geom.ErrInvalidTime, geom.ErrNonMonotonic
//     (a strictly decreasing time step).
//
// Complexity: O(n + inserted).
func Interpolate(points []geom.Point, maxSpan float64) ([]geom.Point, error) {
	if !(maxSpan > 0) || math.IsInf(maxSpan, 0) {
		return nil, fmt.Errorf("Interpolate(maxSpan=%g): %w", maxSpan, ErrInvalidSpan)
	}
	if err := geom.ValidateSeries(points, geom.NonDecreasing); err != nil {
		return nil, conditionErrorf("Interpolate", err)
	}

	limit := maxSpan * (1 + spanEpsilon)
	out := make([]geom.Point, 0, len(points))
	out = append(out, points[0])
	var prev geom.Point
	var k int
	for _, p := range points[1:] {
		prev = out[len(out)-1]
		for k = 1; p.Time-(prev.Time+float64(k-1)*maxSpan) > limit; k++ {
			out = append(out, prev.WithTime(prev.Time+float64(k)*maxSpan))
		}
		out = append(out, p)
	}

	return out, nil
}
