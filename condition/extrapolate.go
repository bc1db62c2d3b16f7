// SPDX-License-Identifier: MIT

package condition

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/fsc/curve"
	"github.com/katalvlaran/fsc/fit"
	"github.com/katalvlaran/fsc/geom"
)

// countEpsilon keeps ⌊L/I⌋ exact when L is a multiple of I (0.3/0.1 = 2.999…).
const countEpsilon = 1e-9

// side selects the series end being extended.
type side int

const (
	sideStart side = iota
	sideEnd
)

// Extrapolate returns before ++ points ++ after, where before and after
// each hold ⌊length/interval⌋ synthetic samples spaced interval apart in
// time, ending interval before the first point and starting interval after
// the last one.
//
// Orders:
//   - 0: every synthetic sample repeats the boundary point's position.
//   - 1, 2: a Bezier of that degree is fitted (weighted) to the samples
//     within the window next to the boundary and evaluated outside its unit
//     domain. Parameter u = −k·interval/length (start) or
//     1 + k·interval/length (end) is evaluated and stamped with the time
//     boundary ∓ k·interval, so u ∈ [−1, 0) maps onto [start−length, start).
//
// When the window holds fewer than order+1 samples, samples at the
// boundary position are synthesized at evenly spaced window times (and
// jittered when an RNG is configured) so that the fit is well-posed.
//
// Calling Extrapolate on its own output pads the series again; it is not
// idempotent.
//
// Errors:
//   - ErrUnsupportedOrder, ErrInvalidLength, ErrInvalidInterval.
//   - geom series errors: order 0 needs non-decreasing times, orders 1
//     and 2 strictly increasing ones.
//   - fit errors from a boundary fit.
func Extrapolate(points []geom.Point, order int, length, interval float64, opts ...Option) ([]geom.Point, error) {
	if order < 0 || order > 2 {
		return nil, fmt.Errorf("Extrapolate(order=%d): %w", order, ErrUnsupportedOrder)
	}
	if !(length > 0) || math.IsInf(length, 0) {
		return nil, fmt.Errorf("Extrapolate(length=%g): %w", length, ErrInvalidLength)
	}
	if !(interval > 0) || math.IsInf(interval, 0) {
		return nil, fmt.Errorf("Extrapolate(interval=%g): %w", interval, ErrInvalidInterval)
	}
	mono := geom.Increasing
	if order == 0 {
		mono = geom.NonDecreasing
	}
	if err := geom.ValidateSeries(points, mono); err != nil {
		return nil, conditionErrorf("Extrapolate", err)
	}

	cfg := newConfig(opts...)
	count := int(math.Floor(length/interval + countEpsilon))

	before, err := extend(points, sideStart, order, count, length, interval, cfg)
	if err != nil {
		return nil, conditionErrorf("Extrapolate", err)
	}
	after, err := extend(points, sideEnd, order, count, length, interval, cfg)
	if err != nil {
		return nil, conditionErrorf("Extrapolate", err)
	}

	out := make([]geom.Point, 0, len(before)+len(points)+len(after))
	out = append(out, before...)
	out = append(out, points...)
	out = append(out, after...)

	return out, nil
}

// extend produces the count synthetic samples of one side in ascending time.
func extend(points []geom.Point, s side, order, count int, length, interval float64, cfg config) ([]geom.Point, error) {
	if count == 0 {
		return nil, nil
	}
	boundary := points[0]
	dir := -1.0
	if s == sideEnd {
		boundary = points[len(points)-1]
		dir = 1.0
	}

	out := make([]geom.Point, count)
	// k-th sample at boundary + dir·k·interval; stored so that times ascend.
	slot := func(k int) int {
		if s == sideStart {
			return count - k
		}
		return k - 1
	}

	if order == 0 {
		for k := 1; k <= count; k++ {
			out[slot(k)] = boundary.WithTime(boundary.Time + dir*float64(k)*interval)
		}

		return out, nil
	}

	b, err := windowFit(points, s, order, cfg)
	if err != nil {
		return nil, err
	}
	var p geom.Point
	var u float64
	for k := 1; k <= count; k++ {
		u = -float64(k) * interval / length
		if s == sideEnd {
			u = 1 + float64(k)*interval/length
		}
		if p, err = b.EvaluateAt(u); err != nil {
			return nil, err
		}
		out[slot(k)] = p.WithTime(boundary.Time + dir*float64(k)*interval)
	}

	return out, nil
}

// windowFit fits the order-degree Bezier to the samples near one boundary.
// Sample weights fall linearly from 1 at the boundary to cfg.minWeight at
// the window edge.
func windowFit(points []geom.Point, s side, order int, cfg config) (*curve.Bezier, error) {
	var win []geom.Point
	var boundary geom.Point
	if s == sideStart {
		boundary = points[0]
		for _, p := range points {
			if p.Time-boundary.Time > cfg.window {
				break
			}
			win = append(win, p)
		}
	} else {
		boundary = points[len(points)-1]
		for i := len(points) - 1; i >= 0; i-- {
			if boundary.Time-points[i].Time > cfg.window {
				break
			}
			win = append(win, points[i])
		}
	}

	if len(win) < order+1 {
		win = synthesize(win, boundary, s, order, cfg)
	}
	sort.Slice(win, func(i, j int) bool { return win[i].Time < win[j].Time })

	w := make([]float64, len(win))
	for i, p := range win {
		w[i] = proximityWeight(math.Abs(p.Time-boundary.Time), cfg)
	}

	return fit.Bezier(win, order, fit.WithWeights(w))
}

// synthesize pads win to order+1 samples at the boundary position. Candidate
// times are boundary ± j·window/order (j = 1..order, toward the interior);
// a candidate is skipped when a real sample already sits at that time.
func synthesize(win []geom.Point, boundary geom.Point, s side, order int, cfg config) []geom.Point {
	dir := 1.0
	if s == sideEnd {
		dir = -1.0
	}
	step := cfg.window / float64(order)
	tooClose := step * 1e-6

	out := append([]geom.Point(nil), win...)
	for j := 1; j <= order && len(out) < order+1; j++ {
		t := boundary.Time + dir*float64(j)*step
		taken := false
		for _, p := range win {
			if math.Abs(p.Time-t) < tooClose {
				taken = true
				break
			}
		}
		if taken {
			continue
		}
		out = append(out, jitter(boundary.WithTime(t), cfg))
	}

	return out
}

// jitter moves p by a uniform offset in [−cfg.jitter, cfg.jitter) per axis.
// Without an RNG p is returned unchanged.
func jitter(p geom.Point, cfg config) geom.Point {
	if cfg.rng == nil || cfg.jitter == 0 {
		return p
	}
	r := func() float64 { return (2*cfg.rng.Float64() - 1) * cfg.jitter }

	return p.Move(geom.Vector{X: r(), Y: r(), Z: r()})
}

// proximityWeight is 1 at distance 0 and cfg.minWeight at distance
// cfg.window, linear in between.
func proximityWeight(dist float64, cfg config) float64 {
	f := math.Min(dist/cfg.window, 1)

	return 1 - (1-cfg.minWeight)*f
}
