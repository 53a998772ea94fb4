// SPDX-License-Identifier: MIT
// Package: dtwalign/keylog
//
// types.go: record model and parsing options.

package keylog

import "time"

// Header is the CSV column order, identical to the record field order.
var Header = []string{"Type", "Block", "Sentence", "KeyPresses", "Input", "EditDistance", "Timestamp"}

// fieldCount is the number of delimited fields in a retained line.
const fieldCount = 7

// Record is one completed phrase in a text-entry session.
type Record struct {
	Type         string // record kind, normally the marker ("END")
	Block        int    // experiment block number
	Sentence     string // presented phrase
	KeyPresses   int    // keys pressed while entering the phrase
	Input        string // transcribed text
	EditDistance int    // edit distance between Sentence and Input
	Timestamp    int64  // epoch milliseconds
}

// Time converts Timestamp (epoch milliseconds) to time.Time.
func (r Record) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// Options configures Parse.
type Options struct {
	Marker        string           // line prefix that selects records
	Delimiter     string           // field separator
	SkipMalformed bool             // skip-and-continue instead of abort
	OnSkip        func(*ParseError) // optional hook for skipped lines
}

// Deterministic defaults.
const (
	DefaultMarker    = "END"
	DefaultDelimiter = ";"
)

// DefaultOptions returns the END / ";" abort-on-first-error configuration.
func DefaultOptions() Options {
	return Options{
		Marker:    DefaultMarker,
		Delimiter: DefaultDelimiter,
	}
}

// BlockSummary aggregates the records of one block.
type BlockSummary struct {
	Block            int
	Count            int
	TotalKeyPresses  float64
	MeanKeyPresses   float64
	StdKeyPresses    float64 // sample standard deviation; 0 for a single record
	MeanEditDistance float64
	Duration         time.Duration // last minus first timestamp
}
