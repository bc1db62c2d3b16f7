// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/fsc/curve"
	"github.com/katalvlaran/fsc/fuzzy"
	"github.com/katalvlaran/fsc/geom"
)

const (
	plotStep      = 0.005
	maxRingRadius = 12 // points
)

var (
	sampleColor  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	curveColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	controlColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// SavePlot renders the XY projection of the input samples, the curve and
// its control points to path. Ring radii are proportional to control point
// fuzziness.
func SavePlot(path string, samples []geom.Point, c *curve.BSpline) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("FSC degree %d, %d control points", c.Degree(), len(c.ControlPoints()))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	in := make(plotter.XYs, len(samples))
	for i, s := range samples {
		in[i] = plotter.XY{X: s.X, Y: s.Y}
	}
	sc, err := plotter.NewScatter(in)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = sampleColor
	sc.GlyphStyle.Radius = vg.Points(1)
	p.Add(sc)
	p.Legend.Add("samples", sc)

	pts, err := c.Sample(fuzzy.SampleTimes(c.Range(), plotStep))
	if err != nil {
		return err
	}
	xys := make(plotter.XYs, len(pts))
	for i, q := range pts {
		xys[i] = plotter.XY{X: q.X, Y: q.Y}
	}
	ln, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	ln.Color = curveColor
	ln.Width = vg.Points(1)
	p.Add(ln)
	p.Legend.Add("curve", ln)

	cps := c.ControlPoints()
	cxy := make(plotter.XYs, len(cps))
	var maxF float64
	for i, q := range cps {
		cxy[i] = plotter.XY{X: q.X, Y: q.Y}
		maxF = max(maxF, q.Fuzziness)
	}
	rings, err := plotter.NewScatter(cxy)
	if err != nil {
		return err
	}
	rings.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		r := vg.Points(2)
		if maxF > 0 {
			r += vg.Points(maxRingRadius * cps[i].Fuzziness / maxF)
		}
		return draw.GlyphStyle{Color: controlColor, Radius: r, Shape: draw.RingGlyph{}}
	}
	p.Add(rings)
	p.Legend.Add("control points", rings)

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err = p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}

	return nil
}
