// SPDX-License-Identifier: MIT
// Package: dtwalign/cmd/dtwalign

package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/katalvlaran/dtwalign/dtw"
	"github.com/katalvlaran/dtwalign/store"
)

func runBatch(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("batch", stderr)
	var (
		cfgFile = fs.String("config", "", "YAML run configuration (required)")
		workers = fs.Int("workers", 0, "parallel alignments, 0 = GOMAXPROCS")
		dbPath  = fs.String("db", "", "SQLite file to store the runs in")
		level   = fs.String("log-level", "info", "debug, info, warn or error")
	)
	set, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if *cfgFile == "" {
		return fmt.Errorf("%w: -config is required", errUsage)
	}

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		return err
	}
	if set["workers"] {
		cfg.Workers = *workers
	}
	overrideString(set, "db", &cfg.Store.Path, *dbPath)
	overrideString(set, "log-level", &cfg.LogLevel, *level)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := cfg.RequireBatch(); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	log, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	var runs []*store.Run
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)

	if len(cfg.Inputs) > 0 {
		labels := make([]string, 0, len(cfg.Inputs))
		for label := range cfg.Inputs {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		inputs := make([][]float64, len(labels))
		for k, label := range labels {
			inputs[k] = cfg.Inputs[label]
		}

		results, err := dtw.AlignAll(ctx, cfg.Template, inputs, cfg.Workers)
		if err != nil {
			return err
		}
		log.Debug("batch aligned", "inputs", len(results), "workers", cfg.Workers)

		fmt.Fprintln(tw, "INPUT\tLEN\tPATH\tCOST")
		for _, r := range results {
			label := labels[r.Index]
			fmt.Fprintf(tw, "%s\t%d\t%d\t%g\n", label, len(inputs[r.Index]), len(r.Path), r.Cost)
			runs = append(runs, &store.Run{Label: label, Template: cfg.Template, Input: inputs[r.Index], Path: r.Path, Cost: r.Cost})
		}
	}

	if len(cfg.Templates) > 0 {
		best, err := dtw.Nearest(ctx, cfg.Templates, cfg.Input, cfg.Workers)
		if err != nil {
			return err
		}
		if len(cfg.Inputs) > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "NEAREST\t%s\tCOST\t%g\n", best.Label, best.Cost)
		runs = append(runs, &store.Run{Label: "nearest:" + best.Label, Template: cfg.Templates[best.Label], Input: cfg.Input, Path: best.Path, Cost: best.Cost})
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if cfg.Store.Path != "" {
		return saveRuns(ctx, cfg.Store.Path, log, runs...)
	}

	return nil
}
