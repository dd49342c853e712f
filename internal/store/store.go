// Package store keeps saved note snapshots in a local SQLite database.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/uddict/dictation-app/cli/internal/record"
)

// ErrNotFound is returned when no note has the requested id.
var ErrNotFound = errors.New("note not found")

// Note is a saved snapshot.
type Note struct {
	ID      string
	Title   string
	Record  *record.Branch
	SavedAt time.Time
}

// Summary is a note listing entry without its record.
type Summary struct {
	ID      string
	Title   string
	SavedAt time.Time
}

// Store persists notes as ordered JSON blobs.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// a single connection keeps :memory: databases alive between calls
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		payload BLOB NOT NULL,
		saved_at INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create notes table: %w", err)
	}
	return &Store{db: db, path: path, now: time.Now}, nil
}

// Path returns the database location.
func (s *Store) Path() string { return s.path }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save stores snapshot under a new id.
func (s *Store) Save(ctx context.Context, title string, snapshot *record.Branch) (Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Note{}, fmt.Errorf("note title is required")
	}
	if snapshot == nil {
		return Note{}, fmt.Errorf("nothing to save")
	}
	payload, err := snapshot.MarshalJSON()
	if err != nil {
		return Note{}, fmt.Errorf("encode note: %w", err)
	}
	n := Note{
		ID:      uuid.NewString(),
		Title:   title,
		Record:  snapshot,
		SavedAt: s.now().UTC(),
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (id, title, payload, saved_at) VALUES (?, ?, ?, ?)`,
		n.ID, n.Title, payload, n.SavedAt.UnixNano(),
	); err != nil {
		return Note{}, fmt.Errorf("insert note: %w", err)
	}
	return n, nil
}

// Load returns the note with id.
func (s *Store) Load(ctx context.Context, id string) (Note, error) {
	var (
		n       Note
		payload []byte
		saved   int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, payload, saved_at FROM notes WHERE id = ?`, id,
	).Scan(&n.ID, &n.Title, &payload, &saved)
	if errors.Is(err, sql.ErrNoRows) {
		return Note{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Note{}, fmt.Errorf("select note: %w", err)
	}
	// JSON is a YAML subset, so the record decoder keeps key order.
	rec, err := record.Decode(bytes.NewReader(payload))
	if err != nil {
		return Note{}, fmt.Errorf("decode note %s: %w", id, err)
	}
	n.Record = rec
	n.SavedAt = time.Unix(0, saved).UTC()
	return n, nil
}

// List returns all notes, newest first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, saved_at FROM notes ORDER BY saved_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Summary
	for rows.Next() {
		var (
			sum   Summary
			saved int64
		)
		if err := rows.Scan(&sum.ID, &sum.Title, &saved); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		sum.SavedAt = time.Unix(0, saved).UTC()
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Delete removes the note with id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
