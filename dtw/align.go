// SPDX-License-Identifier: MIT
// Package: dtwalign/dtw
//
// align.go: full-matrix DTW: table fill and backtrace.
//
// Algorithm Outline:
//  1. Let N = len(template), M = len(input). Allocate M×N table T.
//  2. Borders (cumulative):
//     T[0][j] = T[0][j-1] + |input[0] − template[j]|
//     T[i][0] = T[i-1][0] + |input[i] − template[0]|
//  3. For i = 1..M-1, j = 1..N-1:
//     T[i][j] = |input[i] − template[j]| + min(T[i-1][j], T[i][j-1], T[i-1][j-1])
//  4. Backtrace from (M-1, N-1) until (0,0):
//     row 0 → left; column 0 → up; otherwise diagonal if it equals the
//     three-way minimum, else up if it does, else left.
//  5. Reverse to forward order.

package dtw

import (
	"math"
)

// Align computes the DTW alignment of input against template.
// Returns (table, path, cost, error) where cost == table[M-1][N-1] and
// path runs forward from (0,0) to (M-1,N-1).
//
// Example:
//
//	table, path, cost, err := dtw.Align([]float64{5}, []float64{3})
//	// table = [[2]], path = [{0 0}], cost = 2
func Align(template, input []float64) (table *Table, path []Coord, cost float64, err error) {
	if len(template) == 0 || len(input) == 0 {
		return nil, nil, 0, dtwErrorf("Align", ErrEmptyInput)
	}

	table = newTable(len(input), len(template))
	fill(table, template, input)
	path = backtrace(table)

	return table, path, table.at(table.r-1, table.c-1), nil
}

// fill writes every cell of t. Each interior cell reads its up, left and
// diagonal neighbours, which row-major order has already produced.
func fill(t *Table, template, input []float64) {
	n, m := len(template), len(input)
	d := t.data

	// Row 0: first input sample against every template prefix.
	acc := 0.0
	for j := 0; j < n; j++ {
		acc += math.Abs(input[0] - template[j])
		d[j] = acc
	}

	// Column 0: first template sample against every input prefix.
	acc = 0.0
	for i := 0; i < m; i++ {
		acc += math.Abs(input[i] - template[0])
		d[i*n] = acc
	}

	// Interior.
	for i := 1; i < m; i++ {
		prev := d[(i-1)*n : i*n]
		curr := d[i*n : (i+1)*n]
		for j := 1; j < n; j++ {
			curr[j] = math.Abs(input[i]-template[j]) + min3(prev[j], curr[j-1], prev[j-1])
		}
	}
}

// backtrace walks t from the bottom-right cell to (0,0) and returns the
// path in forward order. Every step decreases i+j, so the loop is bounded
// by M+N-2 iterations whatever the table holds (NaN included).
func backtrace(t *Table) []Coord {
	i, j := t.r-1, t.c-1
	path := make([]Coord, 0, t.r+t.c-1)
	path = append(path, Coord{I: i, J: j})

	for i > 0 || j > 0 {
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			up, left, diag := t.at(i-1, j), t.at(i, j-1), t.at(i-1, j-1)
			best := min3(up, left, diag)
			switch best {
			case diag:
				i, j = i-1, j-1
			case up:
				i--
			default:
				j--
			}
		}
		path = append(path, Coord{I: i, J: j})
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
