// SPDX-License-Identifier: MIT
// Package: dtwalign/store
//
// store.go: SQLite handle, alignment runs and keylog sessions.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/dtwalign/dtw"
	"github.com/katalvlaran/dtwalign/keylog"
)

// DefaultListLimit caps ListAlignments when limit <= 0.
const DefaultListLimit = 50

// Store wraps a migrated SQLite database.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Run is one persisted alignment.
type Run struct {
	ID        uuid.UUID
	Label     string
	Template  []float64
	Input     []float64
	Path      []dtw.Coord
	Cost      float64
	CreatedAt time.Time
}

// Open opens (or creates) the database at path and applies pending migrations.
// A nil logger falls back to slog.Default().
func Open(path string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// Single writer.
	db.SetMaxOpenConns(1)

	if err := migrateUp(db, log); err != nil {
		db.Close()
		return nil, err
	}
	log.Debug("store opened", "path", path)

	return &Store{db: db, log: log}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SchemaVersion returns the applied migration version and its dirty flag.
func (s *Store) SchemaVersion() (uint, bool, error) {
	return schemaVersion(s.db, s.log)
}

// SaveAlignment inserts run. A zero ID is replaced with a new random UUID and
// a zero CreatedAt with the current time; both are written back into run.
func (s *Store) SaveAlignment(ctx context.Context, run *Run) error {
	if run == nil {
		return ErrNilRun
	}
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	template, err := json.Marshal(run.Template)
	if err != nil {
		return fmt.Errorf("SaveAlignment: template: %w", err)
	}
	input, err := json.Marshal(run.Input)
	if err != nil {
		return fmt.Errorf("SaveAlignment: input: %w", err)
	}
	path, err := json.Marshal(run.Path)
	if err != nil {
		return fmt.Errorf("SaveAlignment: path: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO alignments (id, label, template, input, path, cost, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.Label, string(template), string(input), string(path), run.Cost, run.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("SaveAlignment %s: %w", run.ID, err)
	}

	return nil
}

const selectRun = `SELECT id, label, template, input, path, cost, created_at FROM alignments`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*Run, error) {
	var (
		id, label             string
		template, input, path string
		created               int64
		run                   Run
	)
	if err := row.Scan(&id, &label, &template, &input, &path, &run.Cost, &created); err != nil {
		return nil, err
	}

	var err error
	if run.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("run id %q: %w", id, err)
	}
	if err := json.Unmarshal([]byte(template), &run.Template); err != nil {
		return nil, fmt.Errorf("run %s template: %w", id, err)
	}
	if err := json.Unmarshal([]byte(input), &run.Input); err != nil {
		return nil, fmt.Errorf("run %s input: %w", id, err)
	}
	if err := json.Unmarshal([]byte(path), &run.Path); err != nil {
		return nil, fmt.Errorf("run %s path: %w", id, err)
	}
	run.Label = label
	run.CreatedAt = time.Unix(0, created).UTC()

	return &run, nil
}

// GetAlignment loads one run by ID.
func (s *Store) GetAlignment(ctx context.Context, id uuid.UUID) (*Run, error) {
	run, err := scanRun(s.db.QueryRowContext(ctx, selectRun+` WHERE id = ?`, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("GetAlignment %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("GetAlignment %s: %w", id, err)
	}

	return run, nil
}

// ListAlignments returns up to limit runs, newest first.
func (s *Store) ListAlignments(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, selectRun+` ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("ListAlignments: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("ListAlignments: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// SaveRecords replaces the records of session in one transaction.
func (s *Store) SaveRecords(ctx context.Context, session string, records []keylog.Record) (err error) {
	if session == "" {
		return ErrEmptySession
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("SaveRecords: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM keylog_records WHERE session = ?`, session); err != nil {
		return fmt.Errorf("SaveRecords: clear %s: %w", session, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO keylog_records
		 (session, seq, type, block, sentence, key_presses, input, edit_distance, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("SaveRecords: prepare: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err = stmt.ExecContext(ctx, session, i, r.Type, r.Block, r.Sentence, r.KeyPresses, r.Input, r.EditDistance, r.Timestamp); err != nil {
			return fmt.Errorf("SaveRecords: record %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("SaveRecords: commit: %w", err)
	}
	s.log.Debug("keylog session stored", "session", session, "records", len(records))

	return nil
}

// ListRecords returns the records of session in their original order.
func (s *Store) ListRecords(ctx context.Context, session string) ([]keylog.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT type, block, sentence, key_presses, input, edit_distance, timestamp
		 FROM keylog_records WHERE session = ? ORDER BY seq`, session)
	if err != nil {
		return nil, fmt.Errorf("ListRecords %s: %w", session, err)
	}
	defer rows.Close()

	var records []keylog.Record
	for rows.Next() {
		var r keylog.Record
		if err := rows.Scan(&r.Type, &r.Block, &r.Sentence, &r.KeyPresses, &r.Input, &r.EditDistance, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("ListRecords %s: %w", session, err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// Sessions lists the distinct keylog session names, sorted.
func (s *Store) Sessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT session FROM keylog_records ORDER BY session`)
	if err != nil {
		return nil, fmt.Errorf("Sessions: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("Sessions: %w", err)
		}
		out = append(out, name)
	}

	return out, rows.Err()
}
