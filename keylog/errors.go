// SPDX-License-Identifier: MIT
// Package: dtwalign/keylog
//
// errors.go: sentinel errors and the line-level ParseError.

package keylog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotMarked indicates a line that does not start with the record marker.
	ErrNotMarked = errors.New("keylog: line does not start with marker")

	// ErrFieldCount indicates a retained line without exactly seven fields.
	ErrFieldCount = errors.New("keylog: wrong number of fields")

	// ErrBadInteger indicates a non-integer value in an integer column.
	ErrBadInteger = errors.New("keylog: invalid integer field")

	// ErrBadHeader indicates a CSV whose header differs from Header.
	ErrBadHeader = errors.New("keylog: unexpected CSV header")

	// ErrBadOptions indicates an empty marker or delimiter.
	ErrBadOptions = errors.New("keylog: invalid options")
)

// ParseError locates a malformed line. It unwraps to one of the sentinels above.
type ParseError struct {
	Line int    // 1-based line number in the source
	Text string // the offending line, trimmed
	Err  error  // cause (ErrFieldCount, ErrBadInteger, ...)
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("keylog: line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
