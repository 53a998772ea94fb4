// SPDX-License-Identifier: MIT
// Package: dtwalign/keylog
//
// csv.go: tabular export/import with a header row and no row index.

package keylog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes Header followed by one row per record.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}
	for i, r := range records {
		row := []string{
			r.Type,
			strconv.Itoa(r.Block),
			r.Sentence,
			strconv.Itoa(r.KeyPresses),
			r.Input,
			strconv.Itoa(r.EditDistance),
			strconv.FormatInt(r.Timestamp, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV reads a file produced by WriteCSV.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fieldCount

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ReadCSV: empty input: %w", ErrBadHeader)
		}
		return nil, fmt.Errorf("ReadCSV: header: %w", err)
	}
	for i, h := range Header {
		if head[i] != h {
			return nil, fmt.Errorf("ReadCSV: column %d is %q, want %q: %w", i, head[i], h, ErrBadHeader)
		}
	}

	var out []Record
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: row %d: %w", row, err)
		}

		var r Record
		r.Type, r.Sentence, r.Input = rec[0], rec[2], rec[4]
		if r.Block, err = atoi("Block", rec[1]); err != nil {
			return nil, &ParseError{Line: row, Err: err}
		}
		if r.KeyPresses, err = atoi("KeyPresses", rec[3]); err != nil {
			return nil, &ParseError{Line: row, Err: err}
		}
		if r.EditDistance, err = atoi("EditDistance", rec[5]); err != nil {
			return nil, &ParseError{Line: row, Err: err}
		}
		if r.Timestamp, err = strconv.ParseInt(rec[6], 10, 64); err != nil {
			return nil, &ParseError{Line: row, Err: fmt.Errorf("Timestamp %q: %w", rec[6], ErrBadInteger)}
		}
		out = append(out, r)
	}

	return out, nil
}
