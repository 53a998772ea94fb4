// SPDX-License-Identifier: MIT
// Package: dtwalign/render
//
// text.go: plain-text table, path and report output.

package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/dtwalign/dtw"
)

// FormatTable writes the table as right-aligned columns with prec decimals.
// Negative prec selects the shortest exact representation.
func FormatTable(w io.Writer, t *dtw.Table, prec int) error {
	if t == nil {
		return ErrNilTable
	}

	vals := t.Values()
	cells := make([][]string, len(vals))
	width := 0
	for i, row := range vals {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			s := strconv.FormatFloat(v, 'f', prec, 64)
			cells[i][j] = s
			width = max(width, len(s))
		}
	}

	bw := bufio.NewWriter(w)
	for _, row := range cells {
		bw.WriteByte('[')
		for j, s := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%*s", width, s)
		}
		bw.WriteString("]\n")
	}

	return bw.Flush()
}

// FormatPath writes the path as "[(i, j), (i, j), ...]".
func FormatPath(w io.Writer, path []dtw.Coord) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('[')
	for k, p := range path {
		if k > 0 {
			bw.WriteString(", ")
		}
		fmt.Fprintf(bw, "(%d, %d)", p.I, p.J)
	}
	bw.WriteString("]\n")

	return bw.Flush()
}

// WriteReport writes the table, the path and the cost as three titled sections.
func WriteReport(w io.Writer, t *dtw.Table, path []dtw.Coord, cost float64, prec int) error {
	if t == nil {
		return ErrNilTable
	}
	if len(path) == 0 {
		return ErrEmptyPath
	}

	if _, err := io.WriteString(w, "DTW Table:\n"); err != nil {
		return err
	}
	if err := FormatTable(w, t, prec); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\nOptimal Path:\n"); err != nil {
		return err
	}
	if err := FormatPath(w, path); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nMinimal Cost:\n%s\n", strconv.FormatFloat(cost, 'f', prec, 64))

	return err
}
