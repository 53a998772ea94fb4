// SPDX-License-Identifier: MIT
// Package: dtwalign/dtw
//
// table.go: dense row-major cost table.
//
// Contract:
//   - Built once by Align/DTW, read-only afterwards.
//   - Public readers (At/Row) return ErrOutOfRange instead of panicking.
//   - Values/Row/Matrix hand out copies; the backing slice never escapes.

package dtw

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Table is the M×N cumulative cost table of one alignment.
// Row i corresponds to input[i], column j to template[j].
type Table struct {
	r, c int       // rows (input length) and columns (template length)
	data []float64 // flat backing storage, len == r*c, row-major
}

// newTable allocates an r×c zero table. Callers guarantee r, c > 0.
// Complexity: O(r*c) time and memory.
func newTable(rows, cols int) *Table {
	return &Table{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows (input length M).
func (t *Table) Rows() int {
	return t.r
}

// Cols returns the number of columns (template length N).
func (t *Table) Cols() int {
	return t.c
}

// at is the unchecked accessor used by the algorithms.
func (t *Table) at(i, j int) float64 {
	return t.data[i*t.c+j]
}

// At returns the cumulative cost at (i, j).
// Complexity: O(1).
func (t *Table) At(i, j int) (float64, error) {
	if i < 0 || i >= t.r || j < 0 || j >= t.c {
		return 0, fmt.Errorf("Table.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return t.at(i, j), nil
}

// Row returns a copy of row i.
// Complexity: O(N).
func (t *Table) Row(i int) ([]float64, error) {
	if i < 0 || i >= t.r {
		return nil, fmt.Errorf("Table.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, t.c)
	copy(out, t.data[i*t.c:(i+1)*t.c])

	return out, nil
}

// Values returns the table as a freshly allocated [][]float64.
// Complexity: O(M·N).
func (t *Table) Values() [][]float64 {
	out := make([][]float64, t.r)
	for i := range out {
		out[i] = make([]float64, t.c)
		copy(out[i], t.data[i*t.c:(i+1)*t.c])
	}

	return out
}

// Matrix returns a gonum copy of the table for numeric consumers and plotting.
// Complexity: O(M·N).
func (t *Table) Matrix() *mat.Dense {
	buf := make([]float64, len(t.data))
	copy(buf, t.data)

	return mat.NewDense(t.r, t.c, buf)
}

// String implements fmt.Stringer, one bracketed row per line.
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < t.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", t.data[i*t.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
