// SPDX-License-Identifier: MIT
// Package: dtwalign/keylog
//
// Package keylog ingests text-entry experiment logs and exports them as CSV.
//
// Input format:
//
//	One record per line. Only lines starting with the marker (default "END")
//	are retained; each is split on the delimiter (default ";") into exactly
//	seven fields:
//
//	  Type;Block;Sentence;KeyPresses;Input;EditDistance;Timestamp
//
//	Block, KeyPresses, EditDistance and Timestamp must be integers.
//
// Output format:
//
//	CSV with a header row and no row index (WriteCSV). ReadCSV reverses it.
//
// Failure policy:
//
//	Parse aborts on the first malformed retained line with a *ParseError
//	(line number + cause) unless Options.SkipMalformed is set, in which case
//	the line is reported to Options.OnSkip and ingestion continues.
//
// Summaries:
//
//	Summarize aggregates records per block (means, spread, duration) and
//	KeystrokeSeries turns a session into a numeric sequence for dtw.Align.
package keylog
