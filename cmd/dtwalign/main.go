// SPDX-License-Identifier: MIT
// Package: dtwalign/cmd/dtwalign

// Command dtwalign aligns numeric sequences with dynamic time warping.
//
//	dtwalign align   -template "9,7,6" -input "7,7,2" [-plot warp.png -heatmap cost.png -html page.html -db runs.db]
//	dtwalign align   -config run.yaml
//	dtwalign batch   -config run.yaml
//	dtwalign keylog  -in log.txt -out output.csv [-marker END -delim ";" -skip -summary -db runs.db -session p01]
//	dtwalign history -db runs.db [-limit 20 | -id <uuid> | -sessions]
//
// Exit status is 0 on success, 1 on failure and 2 on bad usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
)

const usage = `usage: dtwalign <command> [flags]

commands:
  align    align one template/input pair and report table, path and cost
  batch    align config inputs against the template and classify the input
  keylog   extract END records from a typing log into CSV
  history  list or show stored runs

run "dtwalign <command> -h" for the flags of a command.
`

// errUsage marks command-line mistakes (exit status 2).
var errUsage = errors.New("usage error")

type command func(ctx context.Context, args []string, stdout, stderr io.Writer) error

var commands = map[string]command{
	"align":   runAlign,
	"batch":   runBatch,
	"keylog":  runKeylog,
	"history": runHistory,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches args to a subcommand and maps its error to an exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	switch args[0] {
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "dtwalign: unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	err := cmd(ctx, args[1:], stdout, stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "dtwalign %s: %v\n", args[0], err)
		return 2
	default:
		fmt.Fprintf(stderr, "dtwalign %s: %v\n", args[0], err)
		return 1
	}
}
