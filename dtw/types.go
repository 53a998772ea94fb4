// SPDX-License-Identifier: MIT
// Package: dtwalign/dtw
//
// types.go: public value types and options.

package dtw

// Coord is one cell of a warping path.
// I indexes the input sequence (table row), J the template sequence (table column).
type Coord struct {
	I int // input index (row)
	J int // template index (column)
}

// MemoryMode controls how DTW stores its DP table.
//
//   - FullMatrix: keep the whole M×N table. Allows distance + full backtrace.
//     Memory: O(M·N).
//
//   - TwoRows: keep only the previous and the current row.
//     Memory: O(N), but the path cannot be recovered.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps two rows only; distance without path.
	TwoRows
)

// String renders the mode name for logs and configs.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	default:
		return "MemoryMode(?)"
	}
}

// Options configures DTW.
//
// Fields:
//   - MemoryMode: FullMatrix or TwoRows storage.
//   - ReturnPath: if true, DTW backtracks and returns the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	dist, path, err := dtw.DTW(template, input, &opts)
type Options struct {
	MemoryMode MemoryMode
	ReturnPath bool
}

// DefaultOptions returns FullMatrix without path recovery.
func DefaultOptions() Options {
	return Options{
		MemoryMode: FullMatrix,
		ReturnPath: false,
	}
}

// Result is one alignment produced by AlignAll or Nearest.
type Result struct {
	Label string  // template label (Nearest) or empty
	Index int     // position of the input in the batch
	Table *Table  // full cost table, owned by this result
	Path  []Coord // forward-ordered warping path
	Cost  float64 // table[M-1][N-1]
}
