// Package dtwalign aligns numeric sequences with Dynamic Time Warping (DTW)
// and ships the tooling around it: typing-log extraction, plots, an HTML
// view and a small SQLite history of runs.
//
// What is inside?
//
//	dtw/              cost table, optimal warping path and minimal cost;
//	                  distance-only mode, path checks, batch and nearest-template helpers
//	keylog/           END-record extraction from typing logs, CSV export and per-block stats
//	render/           text report, gonum/plot warping plot and cost heatmap, go-echarts page
//	store/            SQLite persistence of runs and keylog sessions (golang-migrate schema)
//	config/           YAML run configuration
//	cmd/dtwalign/     align, batch, keylog and history subcommands
//	examples/         pattern search and gesture classification programs
//
// Quick example:
//
//	table, path, cost, err := dtw.Align(
//		[]float64{9, 7, 6, 5, 4, 1, 8, 11, 6, 3, 3, 1, 2}, // template (columns)
//		[]float64{7, 7, 2, 9, 1, 1},                        // input (rows)
//	)
//	// table is 6×13, path runs (0,0) → (5,12), cost == 19
//
//	go install github.com/katalvlaran/dtwalign/cmd/dtwalign@latest
package dtwalign
