// SPDX-License-Identifier: MIT
// Package: dtwalign/keylog
//
// summary.go: per-block aggregates and numeric views for alignment.

package keylog

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize groups records by block and returns one summary per block,
// ordered by block number.
func Summarize(records []Record) []BlockSummary {
	byBlock := make(map[int][]Record)
	for _, r := range records {
		byBlock[r.Block] = append(byBlock[r.Block], r)
	}

	blocks := make([]int, 0, len(byBlock))
	for b := range byBlock {
		blocks = append(blocks, b)
	}
	sort.Ints(blocks)

	out := make([]BlockSummary, 0, len(blocks))
	for _, b := range blocks {
		rs := byBlock[b]
		keys := make([]float64, len(rs))
		dists := make([]float64, len(rs))
		first, last := rs[0].Timestamp, rs[0].Timestamp
		for i, r := range rs {
			keys[i] = float64(r.KeyPresses)
			dists[i] = float64(r.EditDistance)
			first = min(first, r.Timestamp)
			last = max(last, r.Timestamp)
		}

		s := BlockSummary{
			Block:            b,
			Count:            len(rs),
			TotalKeyPresses:  floats.Sum(keys),
			MeanKeyPresses:   stat.Mean(keys, nil),
			MeanEditDistance: stat.Mean(dists, nil),
			Duration:         time.Duration(last-first) * time.Millisecond,
		}
		if len(rs) > 1 {
			s.StdKeyPresses = stat.StdDev(keys, nil)
		}
		out = append(out, s)
	}

	return out
}

// KeystrokeSeries returns KeyPresses per record in log order, ready to be
// aligned against a reference session with dtw.Align.
func KeystrokeSeries(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = float64(r.KeyPresses)
	}

	return out
}
