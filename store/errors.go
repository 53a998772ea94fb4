// SPDX-License-Identifier: MIT
// Package: dtwalign/store
//
// errors.go: sentinel errors for the store package.

package store

import "errors"

var (
	// ErrNotFound indicates that no run has the requested ID.
	ErrNotFound = errors.New("store: not found")

	// ErrNilRun indicates a nil *Run passed to SaveAlignment.
	ErrNilRun = errors.New("store: run is nil")

	// ErrEmptySession indicates an empty keylog session name.
	ErrEmptySession = errors.New("store: session is empty")
)
