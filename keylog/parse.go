// SPDX-License-Identifier: MIT
// Package: dtwalign/keylog
//
// parse.go: line filtering, splitting and integer coercion.

package keylog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single log line.
const maxLineBytes = 1 << 20

// validate rejects options that would retain every line or never split.
func (o Options) validate() error {
	if o.Marker == "" {
		return fmt.Errorf("marker: %w", ErrBadOptions)
	}
	if o.Delimiter == "" {
		return fmt.Errorf("delimiter: %w", ErrBadOptions)
	}

	return nil
}

// ParseLine converts one log line into a Record.
// Leading/trailing whitespace is trimmed before the marker check.
func ParseLine(line string, opts Options) (Record, error) {
	if err := opts.validate(); err != nil {
		return Record{}, fmt.Errorf("ParseLine: %w", err)
	}

	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, opts.Marker) {
		return Record{}, ErrNotMarked
	}

	fields := strings.Split(line, opts.Delimiter)
	if len(fields) != fieldCount {
		return Record{}, fmt.Errorf("got %d, want %d: %w", len(fields), fieldCount, ErrFieldCount)
	}

	block, err := atoi("Block", fields[1])
	if err != nil {
		return Record{}, err
	}
	keys, err := atoi("KeyPresses", fields[3])
	if err != nil {
		return Record{}, err
	}
	dist, err := atoi("EditDistance", fields[5])
	if err != nil {
		return Record{}, err
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(fields[6]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("Timestamp %q: %w", fields[6], ErrBadInteger)
	}

	return Record{
		Type:         fields[0],
		Block:        block,
		Sentence:     fields[2],
		KeyPresses:   keys,
		Input:        fields[4],
		EditDistance: dist,
		Timestamp:    ts,
	}, nil
}

// atoi parses an integer column, naming the column on failure.
func atoi(column, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", column, s, ErrBadInteger)
	}

	return v, nil
}

// Parse reads newline-delimited records from r.
// Lines without the marker are ignored. A malformed marked line aborts with a
// *ParseError unless opts.SkipMalformed is set.
func Parse(r io.Reader, opts Options) ([]Record, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		out    []Record
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(text, opts.Marker) {
			continue
		}

		rec, err := ParseLine(text, opts)
		if err != nil {
			perr := &ParseError{Line: lineNo, Text: text, Err: err}
			if !opts.SkipMalformed {
				return nil, perr
			}
			if opts.OnSkip != nil {
				opts.OnSkip(perr)
			}
			continue
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: read: %w", err)
	}

	return out, nil
}
