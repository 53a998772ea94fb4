// SPDX-License-Identifier: MIT
// Package: dtwalign/dtw
//
// errors.go: sentinel errors for the dtw package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context is attached with %w at the call site ("Align: ...").
//   - Algorithms never panic on user input.

package dtw

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option value (e.g. unknown MemoryMode).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates that path recovery requires MemoryMode=FullMatrix.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrOutOfRange indicates a table index outside [0,Rows)×[0,Cols).
	ErrOutOfRange = errors.New("dtw: index out of range")

	// ErrInvalidPath indicates a warping path that is not a monotone staircase
	// from (0,0) to (rows-1,cols-1).
	ErrInvalidPath = errors.New("dtw: invalid warping path")

	// ErrNoTemplates indicates Nearest was called without any template.
	ErrNoTemplates = errors.New("dtw: no templates to compare against")
)

// dtwErrorf prefixes err with the calling method name, keeping err matchable.
func dtwErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
