// SPDX-License-Identifier: MIT
// Package: dtwalign/render
//
// errors.go: sentinel errors for the render package.

package render

import "errors"

var (
	// ErrNilTable indicates a nil *dtw.Table.
	ErrNilTable = errors.New("render: table is nil")

	// ErrEmptyPath indicates an empty warping path.
	ErrEmptyPath = errors.New("render: path is empty")

	// ErrEmptySeries indicates an empty template or input sequence.
	ErrEmptySeries = errors.New("render: series is empty")

	// ErrPathOutOfRange indicates a path cell outside the plotted sequences.
	ErrPathOutOfRange = errors.New("render: path outside sequences")
)
