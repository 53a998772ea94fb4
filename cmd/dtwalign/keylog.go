// SPDX-License-Identifier: MIT
// Package: dtwalign/cmd/dtwalign

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/dtwalign/keylog"
	"github.com/katalvlaran/dtwalign/store"
)

func runKeylog(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("keylog", stderr)
	var (
		cfgFile = fs.String("config", "", "YAML run configuration (keylog section)")
		in      = fs.String("in", "log.txt", "typing log to read")
		out     = fs.String("out", "output.csv", "CSV file to write, \"-\" for stdout")
		marker  = fs.String("marker", keylog.DefaultMarker, "prefix of retained lines")
		delim   = fs.String("delim", keylog.DefaultDelimiter, "field delimiter")
		skip    = fs.Bool("skip", false, "skip malformed lines instead of failing")
		summary = fs.Bool("summary", false, "print per-block averages")
		dbPath  = fs.String("db", "", "SQLite file to store the records in")
		session = fs.String("session", "", "session name in the database (default: input file name)")
		level   = fs.String("log-level", "info", "debug, info, warn or error")
	)
	set, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		return err
	}
	overrideString(set, "marker", &cfg.Keylog.Marker, *marker)
	overrideString(set, "delim", &cfg.Keylog.Delimiter, *delim)
	overrideString(set, "db", &cfg.Store.Path, *dbPath)
	overrideString(set, "log-level", &cfg.LogLevel, *level)
	if set["skip"] {
		cfg.Keylog.SkipMalformed = *skip
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	log, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := cfg.KeylogOptions()
	skipped := 0
	opts.OnSkip = func(perr *keylog.ParseError) {
		skipped++
		log.Warn("skipping malformed line", "line", perr.Line, "err", perr.Err)
	}
	records, err := keylog.Parse(f, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", *in, err)
	}
	log.Info("keylog parsed", "file", *in, "records", len(records), "skipped", skipped)

	w, closeFn, err := openOutput(*out, stdout)
	if err != nil {
		return err
	}
	if err := keylog.WriteCSV(w, records); err != nil {
		closeFn()
		return err
	}
	if err := closeFn(); err != nil {
		return err
	}

	if *summary {
		// Keep CSV on stdout clean.
		sw := stdout
		if *out == "" || *out == "-" {
			sw = stderr
		}
		if err := writeSummary(sw, keylog.Summarize(records)); err != nil {
			return err
		}
	}

	if cfg.Store.Path != "" {
		name := *session
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in))
		}
		s, err := store.Open(cfg.Store.Path, log)
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.SaveRecords(ctx, name, records); err != nil {
			return err
		}
		log.Info("keylog session stored", "session", name, "records", len(records))
	}

	return nil
}

func writeSummary(w io.Writer, blocks []keylog.BlockSummary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BLOCK\tPHRASES\tKEYS(mean)\tKEYS(std)\tEDIT(mean)\tDURATION")
	for _, b := range blocks {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.2f\t%.2f\t%s\n",
			b.Block, b.Count, b.MeanKeyPresses, b.StdKeyPresses, b.MeanEditDistance, b.Duration)
	}
	return tw.Flush()
}
