package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dtwalign/store"
)

// runCLI invokes run and returns the exit status and both streams.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	file := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	return file
}

func TestParseSeq(t *testing.T) {
	got, err := parseSeq("9,7, 6\t5 4")
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 7, 6, 5, 4}, got)

	got, err = parseSeq("-1.5,2e1")
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.5, 20}, got)

	_, err = parseSeq(" , ")
	assert.ErrorIs(t, err, errUsage)
	_, err = parseSeq("1,x")
	assert.ErrorIs(t, err, errUsage)
}

func TestRunUsage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage: dtwalign")

	code, _, stderr = runCLI(t, "transform")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "transform"`)

	code, stdout, _ := runCLI(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "commands:")

	code, _, _ = runCLI(t, "align", "-h")
	assert.Equal(t, 0, code)

	code, _, stderr = runCLI(t, "align", "-template", "1,2")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "input is required")

	code, _, _ = runCLI(t, "align", "-template", "1,2", "-input", "a")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "align", "-nope")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "batch")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "history")
	assert.Equal(t, 2, code)
}

func TestRunAlignReport(t *testing.T) {
	code, stdout, stderr := runCLI(t, "align", "-template", "5", "-input", "3")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "DTW Table:\n[2.0]\n\nOptimal Path:\n[(0, 0)]\n\nMinimal Cost:\n2.0\n", stdout)

	code, stdout, _ = runCLI(t, "align", "-template", "9,7,6,5,4,1,8,11,6,3,3,1,2", "-input", "7,7,2,9,1,1", "-prec", "0")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasSuffix(stdout, "Minimal Cost:\n19\n"), stdout)
	assert.Contains(t, stdout, "[(0, 0), (0, 1), (0, 2), (1, 3), (2, 4), (2, 5), (3, 6), (3, 7), (3, 8), (4, 9), (4, 10), (4, 11), (5, 12)]")
}

func TestRunAlignOutputsAndHistory(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "runs.db")
	cfg := writeFile(t, dir, "run.yaml", `
template: [9, 7, 6, 5, 4, 1, 8, 11, 6, 3, 3, 1, 2]
input: [7, 7, 2, 9, 1, 1]
output:
  report: `+filepath.Join(dir, "report.txt")+`
  plot: `+filepath.Join(dir, "warp.png")+`
  heatmap: `+filepath.Join(dir, "cost.svg")+`
  html: `+filepath.Join(dir, "page.html")+`
log_level: warn
`)

	code, stdout, stderr := runCLI(t, "align", "-config", cfg, "-db", db, "-label", "scenario")
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)

	for _, name := range []string{"report.txt", "warp.png", "cost.svg", "page.html"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
	report, err := os.ReadFile(filepath.Join(dir, "report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(report), "Minimal Cost:\n19.0\n")

	code, stdout, _ = runCLI(t, "history", "-db", db)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "scenario")

	s, err := store.Open(db, nil)
	require.NoError(t, err)
	runs, err := s.ListAlignments(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.Len(t, runs, 1)

	code, stdout, _ = runCLI(t, "history", "-db", db, "-id", runs[0].ID.String(), "-prec", "0")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, `"scenario"`)
	assert.True(t, strings.HasSuffix(stdout, "Minimal Cost:\n19\n"), stdout)

	code, _, _ = runCLI(t, "history", "-db", db, "-id", "not-a-uuid")
	assert.Equal(t, 2, code)
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "batch.yaml", `
template: [1, 2, 3]
input: [3, 2, 2, 1]
inputs:
  same: [1, 2, 3]
  slow: [1, 1, 2, 2, 3, 3]
templates:
  up: [1, 2, 3]
  down: [3, 2, 1]
workers: 2
`)
	db := filepath.Join(dir, "runs.db")

	code, stdout, stderr := runCLI(t, "batch", "-config", cfg, "-db", db, "-log-level", "error")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "INPUT")
	assert.Contains(t, stdout, "same")
	assert.Contains(t, stdout, "slow")
	assert.Regexp(t, `NEAREST\s+down\s+COST\s+0`, stdout)

	code, stdout, _ = runCLI(t, "history", "-db", db)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "nearest:down")
}

const typingLog = `START;1;the quick brown fox
END;1;the quick brown fox;21;the quick brown fox;0;1700000000000
KEY;1;t
END;1;jumps over;12;jumps ovr;1;1700000004000
END;2;lazy dog;9;lazy dog;0;1700000010000
END;2;broken line
`

func TestRunKeylog(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "p01.txt", typingLog)
	out := filepath.Join(dir, "output.csv")
	db := filepath.Join(dir, "runs.db")

	code, _, stderr := runCLI(t, "keylog", "-in", in, "-out", out)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "line 6")

	code, stdout, stderr := runCLI(t, "keylog", "-in", in, "-out", out, "-skip", "-summary", "-db", db)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "skipping malformed line")
	assert.Contains(t, stdout, "BLOCK")

	csv, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Type,Block,Sentence,KeyPresses,Input,EditDistance,Timestamp", lines[0])
	assert.Equal(t, "END,1,jumps over,12,jumps ovr,1,1700000004000", lines[2])

	code, stdout, _ = runCLI(t, "history", "-db", db, "-sessions")
	require.Equal(t, 0, code)
	assert.Equal(t, "p01\n", stdout)

	code, stdout, _ = runCLI(t, "keylog", "-in", in, "-out", "-", "-skip", "-log-level", "error")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "Type,Block,"))
}
