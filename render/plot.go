// SPDX-License-Identifier: MIT
// Package: dtwalign/render
//
// plot.go: static plots with gonum/plot.
//
//   - WarpingPlot: template on top, input shifted below, one dashed segment
//     per aligned pair.
//   - CostHeatmap: the cost table as a heat map (x = template index,
//     y = input index) with the warping path drawn over it.

package render

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/dtwalign/dtw"
)

// Default canvas size used by Save when width/height are zero.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// heatColors is the number of palette steps for CostHeatmap.
const heatColors = 64

var (
	templateColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	inputColor    = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	linkColor     = color.Gray{Y: 0x99}
	pathColor     = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

// Options controls titles and legends of the static plots.
type Options struct {
	Title         string
	TemplateLabel string
	InputLabel    string
}

// DefaultOptions returns the labels used by the CLI.
func DefaultOptions() Options {
	return Options{
		Title:         "DTW alignment",
		TemplateLabel: "template",
		InputLabel:    "input",
	}
}

// seriesXYs indexes a sequence on the x axis, shifting every y by offset.
func seriesXYs(seq []float64, offset float64) plotter.XYs {
	xys := make(plotter.XYs, len(seq))
	for i, v := range seq {
		xys[i].X = float64(i)
		xys[i].Y = v + offset
	}
	return xys
}

// WarpingPlot draws both sequences and the pairs matched by path.
// The input is shifted down by the combined value range plus a margin so the
// two curves never overlap.
func WarpingPlot(template, input []float64, path []dtw.Coord, o Options) (*plot.Plot, error) {
	if len(template) == 0 || len(input) == 0 {
		return nil, ErrEmptySeries
	}
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	for _, c := range path {
		if c.I < 0 || c.I >= len(input) || c.J < 0 || c.J >= len(template) {
			return nil, fmt.Errorf("WarpingPlot: cell %v: %w", c, ErrPathOutOfRange)
		}
	}

	hi := max(floats.Max(template), floats.Max(input))
	lo := min(floats.Min(template), floats.Min(input))
	span := hi - lo
	if span == 0 {
		span = 1
	}
	offset := -(span * 1.5)

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "index"
	p.Y.Label.Text = "value"

	// Alignment links first so the curves are drawn on top.
	for _, c := range path {
		link, err := plotter.NewLine(plotter.XYs{
			{X: float64(c.J), Y: template[c.J]},
			{X: float64(c.I), Y: input[c.I] + offset},
		})
		if err != nil {
			return nil, fmt.Errorf("WarpingPlot: link: %w", err)
		}
		link.LineStyle.Color = linkColor
		link.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(link)
	}

	tLine, tPoints, err := plotter.NewLinePoints(seriesXYs(template, 0))
	if err != nil {
		return nil, fmt.Errorf("WarpingPlot: template: %w", err)
	}
	tLine.LineStyle.Color = templateColor
	tPoints.Color = templateColor
	tPoints.Shape = draw.CircleGlyph{}

	iLine, iPoints, err := plotter.NewLinePoints(seriesXYs(input, offset))
	if err != nil {
		return nil, fmt.Errorf("WarpingPlot: input: %w", err)
	}
	iLine.LineStyle.Color = inputColor
	iPoints.Color = inputColor
	iPoints.Shape = draw.CircleGlyph{}

	p.Add(tLine, tPoints, iLine, iPoints)
	p.Legend.Add(o.TemplateLabel, tLine, tPoints)
	p.Legend.Add(fmt.Sprintf("%s (shifted %.3g)", o.InputLabel, offset), iLine, iPoints)
	p.Legend.Top = true

	return p, nil
}

// tableGrid adapts a gonum matrix (rows = input, cols = template) to
// plotter.GridXYZ (c = template index, r = input index).
type tableGrid struct {
	m mat.Matrix
}

func (g tableGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g tableGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g tableGrid) X(c int) float64    { return float64(c) }
func (g tableGrid) Y(r int) float64    { return float64(r) }

// CostHeatmap draws the cumulative cost table with the path on top.
func CostHeatmap(t *dtw.Table, path []dtw.Coord, o Options) (*plot.Plot, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if err := dtw.ValidatePath(path, t.Rows(), t.Cols()); err != nil {
		return nil, fmt.Errorf("CostHeatmap: %w", err)
	}

	grid := tableGrid{m: t.Matrix()}
	hm := plotter.NewHeatMap(grid, palette.Heat(heatColors, 1))
	if hm.Min == hm.Max {
		hm.Max = hm.Min + 1
	}

	xys := make(plotter.XYs, len(path))
	for k, c := range path {
		xys[k].X = float64(c.J)
		xys[k].Y = float64(c.I)
	}
	pl, pp, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("CostHeatmap: path: %w", err)
	}
	pl.LineStyle.Color = pathColor
	pl.LineStyle.Width = vg.Points(2)
	pp.Color = pathColor
	pp.Shape = draw.CircleGlyph{}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.TemplateLabel + " index"
	p.Y.Label.Text = o.InputLabel + " index"
	p.Add(hm, pl, pp)
	p.Legend.Add("warping path", pl, pp)
	p.Legend.Top = true

	return p, nil
}

// Save writes p to file; the extension selects the format (.png, .svg, .pdf, ...).
// Zero width/height fall back to DefaultWidth/DefaultHeight.
func Save(p *plot.Plot, file string, width, height vg.Length) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if filepath.Ext(file) == "" {
		return fmt.Errorf("Save: %q has no extension", file)
	}
	if err := p.Save(width, height, file); err != nil {
		return fmt.Errorf("Save %s: %w", file, err)
	}

	return nil
}
