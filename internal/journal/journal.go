// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal persists conversion outcomes in a SQLite database so
// batch runs can skip inputs unchanged since their last successful
// conversion.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/sheetconv/pkg/types"
)

const dbFile = "journal.db"

// Store manages the conversion journal database at dir/journal.db.
type Store struct {
	db *sql.DB
}

// Open opens or creates the journal database in dir, creating the schema
// if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating journal schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		input_path TEXT PRIMARY KEY,
		output_path TEXT NOT NULL,
		source_mod_time TEXT NOT NULL,
		status TEXT NOT NULL,
		recorded_at TEXT NOT NULL
	)`)
	return err
}

// Unchanged reports whether inputPath has a recorded successful conversion
// with the same source modification time.
func (s *Store) Unchanged(inputPath string, modTime time.Time) (bool, error) {
	var storedModTime, status string
	err := s.db.QueryRow(
		`SELECT source_mod_time, status FROM conversions WHERE input_path = ?`, inputPath,
	).Scan(&storedModTime, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying journal for %s: %w", inputPath, err)
	}
	return status == string(types.ConversionDone) && storedModTime == formatModTime(modTime), nil
}

// Record upserts the outcome of converting inputPath.
func (s *Store) Record(inputPath, outputPath string, modTime time.Time, status types.ConversionStatus) error {
	_, err := s.db.Exec(
		`INSERT INTO conversions (input_path, output_path, source_mod_time, status, recorded_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(input_path) DO UPDATE SET
			output_path=excluded.output_path, source_mod_time=excluded.source_mod_time,
			status=excluded.status, recorded_at=excluded.recorded_at`,
		inputPath, outputPath, formatModTime(modTime), string(status),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording conversion of %s: %w", inputPath, err)
	}
	return nil
}

// Entry is one journal row.
type Entry struct {
	InputPath  string
	OutputPath string
	Status     types.ConversionStatus
	RecordedAt string
}

// Entries returns all journal rows ordered by input path.
func (s *Store) Entries() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT input_path, output_path, status, recorded_at FROM conversions ORDER BY input_path`)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var status string
		if err := rows.Scan(&e.InputPath, &e.OutputPath, &status, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning journal row: %w", err)
		}
		e.Status = types.ConversionStatus(status)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func formatModTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
