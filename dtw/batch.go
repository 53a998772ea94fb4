// SPDX-License-Identifier: MIT
// Package: dtwalign/dtw
//
// batch.go: independent alignments fanned out over a bounded worker pool.
//
// Each alignment owns its table and path; nothing is shared between workers
// except the read-only input slices. The first failure cancels the batch.

package dtw

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// resolveWorkers maps non-positive worker counts to GOMAXPROCS.
func resolveWorkers(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return workers
}

// AlignAll aligns every input against template using up to workers goroutines
// (≤0 means GOMAXPROCS). Results keep the order of inputs.
func AlignAll(ctx context.Context, template []float64, inputs [][]float64, workers int) ([]Result, error) {
	if len(template) == 0 {
		return nil, dtwErrorf("AlignAll", ErrEmptyInput)
	}

	results := make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveWorkers(workers))

	for k, in := range inputs {
		k, in := k, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			table, path, cost, err := Align(template, in)
			if err != nil {
				return fmt.Errorf("AlignAll: input %d: %w", k, err)
			}
			results[k] = Result{Index: k, Table: table, Path: path, Cost: cost}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Nearest aligns input against every template and returns the cheapest one.
// Labels are visited in sorted order, so equal costs resolve to the
// lexicographically smallest label.
func Nearest(ctx context.Context, templates map[string][]float64, input []float64, workers int) (Result, error) {
	if len(templates) == 0 {
		return Result{}, dtwErrorf("Nearest", ErrNoTemplates)
	}
	if len(input) == 0 {
		return Result{}, dtwErrorf("Nearest", ErrEmptyInput)
	}

	labels := make([]string, 0, len(templates))
	for label := range templates {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	results := make([]Result, len(labels))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveWorkers(workers))

	for k, label := range labels {
		k, label := k, label
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			table, path, cost, err := Align(templates[label], input)
			if err != nil {
				return fmt.Errorf("Nearest: template %q: %w", label, err)
			}
			results[k] = Result{Label: label, Index: k, Table: table, Path: path, Cost: cost}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Cost < best.Cost {
			best = r
		}
	}

	return best, nil
}
