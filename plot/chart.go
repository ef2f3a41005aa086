// Package plot renders a solved trajectory.Profile to an SVG chart: one
// polyline each for position, velocity and acceleration, sampled by
// repeatedly calling Profile.At. It is a pure consumer of trajectory's
// public API and holds no knowledge of shapes, segments or solvers.
package plot

import (
	"fmt"
	"io"

	"github.com/boxesandglue/trajgen/mp"
	"github.com/boxesandglue/trajgen/svg"
	"github.com/boxesandglue/trajgen/trajectory"
)

// Chart configures how a Profile is sampled and rendered.
type Chart struct {
	Samples int     // number of points sampled across [0, Duration()]; default 200
	Width   float64 // output canvas width in SVG user units; default 640
	Height  float64 // output canvas height in SVG user units; default 240
}

// NewChart returns a Chart with reasonable defaults.
func NewChart() *Chart {
	return &Chart{Samples: 200, Width: 640, Height: 240}
}

// WriteSVG samples pr at c.Samples evenly spaced times across its duration
// and writes the resulting position/velocity/acceleration curves to w as a
// single SVG document.
func (c *Chart) WriteSVG(w io.Writer, pr *trajectory.Profile) error {
	samples := c.Samples
	if samples < 2 {
		samples = 2
	}
	duration := pr.Duration()
	if duration <= 0 {
		return fmt.Errorf("plot: profile has non-positive duration %g", duration)
	}

	posPts := make([]mp.Point, samples)
	velPts := make([]mp.Point, samples)
	accPts := make([]mp.Point, samples)

	for i := 0; i < samples; i++ {
		tau := duration * float64(i) / float64(samples-1)
		p, v, a := pr.At(tau)
		// SVG's y-axis grows downward; negate so curves read the usual way
		// (higher value higher on the page) without flipping the solver's
		// own sign conventions anywhere else.
		posPts[i] = mp.P(tau, -p)
		velPts[i] = mp.P(tau, -v)
		accPts[i] = mp.P(tau, -a)
	}

	posPath := mp.Polyline(posPts)
	posPath.Style = mp.Style{Stroke: mp.ColorCSS("steelblue"), StrokeWidth: 1.5}
	velPath := mp.Polyline(velPts)
	velPath.Style = mp.Style{Stroke: mp.ColorCSS("seagreen"), StrokeWidth: 1.5}
	accPath := mp.Polyline(accPts)
	accPath.Style = mp.Style{Stroke: mp.ColorCSS("firebrick"), StrokeWidth: 1.5}

	width, height := c.Width, c.Height
	if width <= 0 || height <= 0 {
		width, height = 640, 240
	}

	b := svg.NewBuilder(width, height).Padding(8).SetBackground("white")
	b.AddPathFromPath(posPath)
	b.AddPathFromPath(velPath)
	b.AddPathFromPath(accPath)
	b.AddLabel(mp.NewLabel("p(t)", posPts[len(posPts)-1], mp.AnchorRight).WithColor(mp.ColorCSS("steelblue")))
	b.AddLabel(mp.NewLabel("v(t)", velPts[len(velPts)-1], mp.AnchorRight).WithColor(mp.ColorCSS("seagreen")))
	b.AddLabel(mp.NewLabel("a(t)", accPts[len(accPts)-1], mp.AnchorRight).WithColor(mp.ColorCSS("firebrick")))

	return b.WriteTo(w)
}
