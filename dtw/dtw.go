// SPDX-License-Identifier: MIT
// Package: dtwalign/dtw
//
// dtw.go: option-driven entry point, distance-only mode and the classic
// +Inf-bordered formulation used for cross-validation.

package dtw

import (
	"math"
)

// DTW computes the DTW distance between template and input.
// Returns (distance, path, error); path is nil unless opts.ReturnPath.
//
// A nil opts behaves like DefaultOptions().
// If opts.ReturnPath is true, opts.MemoryMode must be FullMatrix.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := dtw.DTW(template, input, &opts)
func DTW(template, input []float64, opts *Options) (distance float64, path []Coord, err error) {
	if len(template) == 0 || len(input) == 0 {
		return 0, nil, dtwErrorf("DTW", ErrEmptyInput)
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	switch o.MemoryMode {
	case FullMatrix:
		t := newTable(len(input), len(template))
		fill(t, template, input)
		if o.ReturnPath {
			path = backtrace(t)
		}

		return t.at(t.r-1, t.c-1), path, nil

	case TwoRows:
		if o.ReturnPath {
			return 0, nil, dtwErrorf("DTW", ErrPathNeedsMatrix)
		}

		return twoRows(template, input), nil, nil

	default:
		return 0, nil, dtwErrorf("DTW", ErrBadInput)
	}
}

// Distance returns the DTW cost using O(N) memory.
func Distance(template, input []float64) (float64, error) {
	opts := Options{MemoryMode: TwoRows}
	dist, _, err := DTW(template, input, &opts)

	return dist, err
}

// twoRows runs the same recurrence as fill keeping only two rows.
// The additions happen in the same order, so the result is bit-identical
// to the full-matrix cost.
func twoRows(template, input []float64) float64 {
	n, m := len(template), len(input)
	prev := make([]float64, n)
	curr := make([]float64, n)

	acc := 0.0
	for j := 0; j < n; j++ {
		acc += math.Abs(input[0] - template[j])
		prev[j] = acc
	}

	for i := 1; i < m; i++ {
		curr[0] = prev[0] + math.Abs(input[i]-template[0])
		for j := 1; j < n; j++ {
			curr[j] = math.Abs(input[i]-template[j]) + min3(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[n-1]
}

// ReferenceDistance evaluates DTW with the textbook (M+1)×(N+1) table:
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +Inf
//	D[i][j] = |input[i-1] − template[j-1]| + min(D[i-1][j], D[i][j-1], D[i-1][j-1])
//
// The +Inf border forces the first row/column to accumulate exactly like
// the cumulative borders of Align, so both formulations agree on the cost.
// It is kept as an independent implementation to cross-check Align.
//
// Complexity: O(M·N) time, O(N) memory.
func ReferenceDistance(template, input []float64) (float64, error) {
	n, m := len(template), len(input)
	if n == 0 || m == 0 {
		return 0, dtwErrorf("ReferenceDistance", ErrEmptyInput)
	}

	inf := math.Inf(1)
	prev := make([]float64, n+1)
	curr := make([]float64, n+1)
	for j := 1; j <= n; j++ {
		prev[j] = inf
	}
	prev[0] = 0

	for i := 1; i <= m; i++ {
		curr[0] = inf
		for j := 1; j <= n; j++ {
			cost := math.Abs(input[i-1] - template[j-1])
			curr[j] = cost + min3(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[n], nil
}
