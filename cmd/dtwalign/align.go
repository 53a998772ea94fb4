// SPDX-License-Identifier: MIT
// Package: dtwalign/cmd/dtwalign

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/dtwalign/config"
	"github.com/katalvlaran/dtwalign/dtw"
	"github.com/katalvlaran/dtwalign/render"
	"github.com/katalvlaran/dtwalign/store"
)

func runAlign(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("align", stderr)
	var (
		cfgFile  = fs.String("config", "", "YAML run configuration")
		template = fs.String("template", "", "template sequence, e.g. \"9,7,6,5\"")
		input    = fs.String("input", "", "input sequence, e.g. \"7,7,2,9\"")
		report   = fs.String("report", "", "text report file (default stdout)")
		plotFile = fs.String("plot", "", "warping plot image (.png, .svg, .pdf)")
		heatmap  = fs.String("heatmap", "", "cost heatmap image (.png, .svg, .pdf)")
		html     = fs.String("html", "", "interactive HTML page")
		prec     = fs.Int("prec", 1, "decimals in the text report")
		dbPath   = fs.String("db", "", "SQLite file to store the run in")
		label    = fs.String("label", "", "label stored with the run")
		level    = fs.String("log-level", "info", "debug, info, warn or error")
	)
	set, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		return err
	}
	if set["template"] {
		if cfg.Template, err = parseSeq(*template); err != nil {
			return fmt.Errorf("-template: %w", err)
		}
	}
	if set["input"] {
		if cfg.Input, err = parseSeq(*input); err != nil {
			return fmt.Errorf("-input: %w", err)
		}
	}
	overrideString(set, "report", &cfg.Output.Report, *report)
	overrideString(set, "plot", &cfg.Output.Plot, *plotFile)
	overrideString(set, "heatmap", &cfg.Output.Heatmap, *heatmap)
	overrideString(set, "html", &cfg.Output.HTML, *html)
	overrideString(set, "db", &cfg.Store.Path, *dbPath)
	overrideString(set, "log-level", &cfg.LogLevel, *level)
	if set["prec"] {
		cfg.Output.Precision = *prec
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := cfg.RequirePair(); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	log, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	table, path, cost, err := dtw.Align(cfg.Template, cfg.Input)
	if err != nil {
		return err
	}
	log.Debug("aligned", "rows", table.Rows(), "cols", table.Cols(), "path_len", len(path), "cost", cost)

	if err := writeOutputs(cfg.Output, stdout, log, cfg.Template, cfg.Input, table, path, cost); err != nil {
		return err
	}

	if cfg.Store.Path != "" {
		run := &store.Run{Label: *label, Template: cfg.Template, Input: cfg.Input, Path: path, Cost: cost}
		if err := saveRuns(ctx, cfg.Store.Path, log, run); err != nil {
			return err
		}
	}

	return nil
}

func overrideString(set map[string]bool, name string, dst *string, v string) {
	if set[name] {
		*dst = v
	}
}

// writeOutputs writes the text report and every enabled image or page.
func writeOutputs(out config.Output, stdout io.Writer, log *slog.Logger, template, input []float64, table *dtw.Table, path []dtw.Coord, cost float64) error {
	w, closeFn, err := openOutput(out.Report, stdout)
	if err != nil {
		return err
	}
	if err := render.WriteReport(w, table, path, cost, out.Precision); err != nil {
		closeFn()
		return err
	}
	if err := closeFn(); err != nil {
		return err
	}

	opts := render.DefaultOptions()
	if out.Plot != "" {
		p, err := render.WarpingPlot(template, input, path, opts)
		if err != nil {
			return err
		}
		if err := render.Save(p, out.Plot, 0, 0); err != nil {
			return err
		}
		log.Info("warping plot written", "file", out.Plot)
	}
	if out.Heatmap != "" {
		p, err := render.CostHeatmap(table, path, opts)
		if err != nil {
			return err
		}
		if err := render.Save(p, out.Heatmap, 0, 0); err != nil {
			return err
		}
		log.Info("cost heatmap written", "file", out.Heatmap)
	}
	if out.HTML != "" {
		w, closeFn, err := openOutput(out.HTML, stdout)
		if err != nil {
			return err
		}
		if err := render.WriteHTML(w, template, input, table, path, cost); err != nil {
			closeFn()
			return err
		}
		if err := closeFn(); err != nil {
			return err
		}
		log.Info("html page written", "file", out.HTML)
	}

	return nil
}

// saveRuns stores runs in the database at dbPath.
func saveRuns(ctx context.Context, dbPath string, log *slog.Logger, runs ...*store.Run) error {
	s, err := store.Open(dbPath, log)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, run := range runs {
		if err := s.SaveAlignment(ctx, run); err != nil {
			return err
		}
		log.Info("run stored", "id", run.ID, "label", run.Label, "cost", run.Cost)
	}

	return nil
}
