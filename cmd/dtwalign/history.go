// SPDX-License-Identifier: MIT
// Package: dtwalign/cmd/dtwalign

package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/dtwalign/dtw"
	"github.com/katalvlaran/dtwalign/render"
	"github.com/katalvlaran/dtwalign/store"
)

func runHistory(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("history", stderr)
	var (
		dbPath   = fs.String("db", "", "SQLite file (required)")
		limit    = fs.Int("limit", store.DefaultListLimit, "number of runs to list")
		id       = fs.String("id", "", "show the full report of one run")
		sessions = fs.Bool("sessions", false, "list stored keylog sessions")
		prec     = fs.Int("prec", 1, "decimals in the -id report")
		level    = fs.String("log-level", "warn", "debug, info, warn or error")
	)
	if _, err := parseFlags(fs, args); err != nil {
		return err
	}
	if *dbPath == "" {
		return fmt.Errorf("%w: -db is required", errUsage)
	}

	log, err := newLogger(stderr, *level)
	if err != nil {
		return err
	}
	s, err := store.Open(*dbPath, log)
	if err != nil {
		return err
	}
	defer s.Close()

	switch {
	case *sessions:
		names, err := s.Sessions(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(stdout, name)
		}
		return nil

	case *id != "":
		runID, err := uuid.Parse(*id)
		if err != nil {
			return fmt.Errorf("%w: -id: %v", errUsage, err)
		}
		run, err := s.GetAlignment(ctx, runID)
		if err != nil {
			return err
		}
		// Only the path is stored; the table is recomputed.
		table, _, _, err := dtw.Align(run.Template, run.Input)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Run %s %q at %s\n\n", run.ID, run.Label, run.CreatedAt.Format(time.RFC3339))
		return render.WriteReport(stdout, table, run.Path, run.Cost, *prec)
	}

	runs, err := s.ListAlignments(ctx, *limit)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tLABEL\tM\tN\tCOST")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%g\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Label, len(r.Input), len(r.Template), r.Cost)
	}

	return tw.Flush()
}
