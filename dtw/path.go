// SPDX-License-Identifier: MIT
// Package: dtwalign/dtw
//
// path.go: warping path checks and derived views.

package dtw

import (
	"fmt"
	"math"
)

// ValidatePath reports whether path is a monotone staircase over a rows×cols
// table: it starts at (0,0), ends at (rows-1,cols-1) and every step is
// (0,1), (1,0) or (1,1). A valid path therefore has no repeated cells.
// Returns nil or an error wrapping ErrInvalidPath.
// Complexity: O(len(path)).
func ValidatePath(path []Coord, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("ValidatePath: shape %dx%d: %w", rows, cols, ErrInvalidPath)
	}
	if len(path) == 0 {
		return fmt.Errorf("ValidatePath: empty path: %w", ErrInvalidPath)
	}
	if path[0] != (Coord{}) {
		return fmt.Errorf("ValidatePath: starts at %v: %w", path[0], ErrInvalidPath)
	}
	if last := path[len(path)-1]; last != (Coord{I: rows - 1, J: cols - 1}) {
		return fmt.Errorf("ValidatePath: ends at %v: %w", last, ErrInvalidPath)
	}
	for k := 1; k < len(path); k++ {
		di := path[k].I - path[k-1].I
		dj := path[k].J - path[k-1].J
		if di < 0 || dj < 0 || di > 1 || dj > 1 || di+dj == 0 {
			return fmt.Errorf("ValidatePath: step %d %v->%v: %w", k, path[k-1], path[k], ErrInvalidPath)
		}
	}

	return nil
}

// PathCost sums |input[I] − template[J]| over every visited cell. For the path
// returned by Align this reconstructs table[M-1][N-1]; for any other valid
// path the sum is ≥ the optimal cost.
func PathCost(template, input []float64, path []Coord) (float64, error) {
	if len(template) == 0 || len(input) == 0 {
		return 0, dtwErrorf("PathCost", ErrEmptyInput)
	}
	if err := ValidatePath(path, len(input), len(template)); err != nil {
		return 0, err
	}

	total := 0.0
	for _, p := range path {
		total += math.Abs(input[p.I] - template[p.J])
	}

	return total, nil
}

// Mapping groups the path by template index: template j → aligned input indices,
// in path order. Useful for printing "template[j] ↔ input[i...]" listings.
func Mapping(path []Coord) map[int][]int {
	out := make(map[int][]int)
	for _, p := range path {
		out[p.J] = append(out[p.J], p.I)
	}

	return out
}
