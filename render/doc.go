// SPDX-License-Identifier: MIT
// Package: dtwalign/render
//
// Package render presents DTW results: plain-text reports, static plots
// (gonum/plot: PNG, SVG, PDF) and an interactive HTML page (go-echarts).
//
// The package only reads what dtw.Align returns (table, path, cost); it never
// recomputes an alignment.
//
//	table, path, cost, _ := dtw.Align(template, input)
//	_ = render.WriteReport(os.Stdout, table, path, cost, 1)
//	p, _ := render.WarpingPlot(template, input, path, render.DefaultOptions())
//	_ = render.Save(p, "warping.png", 0, 0)
package render
