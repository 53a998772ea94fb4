// SPDX-License-Identifier: MIT
// Package: dtwalign/render
//
// html.go: interactive HTML page with go-echarts.
//
// The page holds two charts:
//   - "Sequences": template and input as line series over their index.
//   - "Cost table": every cell as a colored scatter point (value mapped by a
//     visual map on dimension 2), plus the warping path as its own series.

package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/dtwalign/dtw"
)

// viridis is the color ramp of the cost visual map.
var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// WriteHTML renders the sequences and the cost table into a self-contained page.
func WriteHTML(w io.Writer, template, input []float64, t *dtw.Table, path []dtw.Coord, cost float64) error {
	if len(template) == 0 || len(input) == 0 {
		return ErrEmptySeries
	}
	if t == nil {
		return ErrNilTable
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}

	page := components.NewPage()
	page.AddCharts(sequenceChart(template, input, cost), tableChart(t, path))

	if err := page.Render(w); err != nil {
		return fmt.Errorf("WriteHTML: %w", err)
	}

	return nil
}

// sequenceChart plots both sequences against their index.
func sequenceChart(template, input []float64, cost float64) *charts.Line {
	n := max(len(template), len(input))
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}

	toLine := func(seq []float64) []opts.LineData {
		data := make([]opts.LineData, len(seq))
		for i, v := range seq {
			data[i] = opts.LineData{Value: v}
		}
		return data
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "DTW alignment", Width: "900px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Sequences", Subtitle: fmt.Sprintf("minimal cost=%g", cost)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xs).
		AddSeries("template", toLine(template)).
		AddSeries("input", toLine(input))

	return line
}

// tableChart draws the cost table as a scatter-heatmap with the path overlaid.
func tableChart(t *dtw.Table, path []dtw.Coord) *charts.Scatter {
	vals := t.Values()
	flat := make([]float64, 0, t.Rows()*t.Cols())
	cells := make([]opts.ScatterData, 0, t.Rows()*t.Cols())
	for i, row := range vals {
		for j, v := range row {
			flat = append(flat, v)
			cells = append(cells, opts.ScatterData{Value: []interface{}{j, i, v}})
		}
	}

	steps := make([]opts.ScatterData, len(path))
	for k, c := range path {
		steps[k] = opts.ScatterData{Value: []interface{}{c.J, c.I, vals[c.I][c.J]}}
	}

	hi := floats.Max(flat)
	if hi == 0 {
		hi = 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Cost table", Subtitle: fmt.Sprintf("%dx%d, path length %d", t.Rows(), t.Cols(), len(path))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "template index", NameLocation: "middle", NameGap: 25, Min: -1, Max: t.Cols()}),
		charts.WithYAxisOpts(opts.YAxis{Name: "input index", NameLocation: "middle", NameGap: 30, Min: -1, Max: t.Rows()}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(hi),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	scatter.AddSeries("cost", cells, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 18}))
	scatter.AddSeries("path", steps,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#d62728"}),
	)

	return scatter
}
