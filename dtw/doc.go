// SPDX-License-Identifier: MIT
// Package: dtwalign/dtw
//
// Package dtw aligns two numeric sequences with Dynamic Time Warping (DTW).
//
// What is computed?
//
//	Given a template (length N) and an input (length M), Align fills an
//	M×N table of cumulative alignment costs, walks it back from the
//	bottom-right cell to recover the optimal monotonic warping path and
//	reports the terminal cost table[M-1][N-1].
//
//	Rows are indexed by input position, columns by template position.
//	The local cost of matching input[i] with template[j] is |input[i]-template[j]|.
//
// Boundary convention:
//
//	table[0][j] = Σ_{k≤j} |input[0] − template[k]|
//	table[i][0] = Σ_{k≤i} |input[k] − template[0]|
//	table[i][j] = |input[i] − template[j]| + min(up, left, diagonal)
//
// Backtrace tie-break (stable contract):
//
//	diagonal first, then up (i−1), then left (j−1). A diagonal neighbour
//	that equals the three-way minimum always wins, even when up/left tie it.
//
// Entry points:
//   - Align: table, path and cost in one call.
//   - DTW: FullMatrix (optional path) or TwoRows (distance only), chosen by Options.
//   - Distance: TwoRows shorthand, O(N) memory.
//   - ReferenceDistance: classic (M+1)×(N+1) +Inf-bordered formulation for cross-checks.
//   - AlignAll, Nearest: many independent alignments fanned out over a worker pool.
//
// Complexity:
//
//	Time   = O(M·N)
//	Memory = O(M·N) for the table (TwoRows: O(N)); path length ≤ M+N−1.
//
// Errors:
//   - ErrEmptyInput: either sequence is empty (checked before allocation).
//   - ErrBadInput: unknown MemoryMode.
//   - ErrPathNeedsMatrix: ReturnPath requested with TwoRows.
//
// See example_test.go for runnable scenarios.
package dtw
