// Package session keeps the configurator's per-process state: the current
// settings snapshot and the outputs generated from it. Everything lives in
// an in-memory SQLite database that disappears with the process.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cristianoliveira/wezterm-configurator/internal/colors"
	"github.com/cristianoliveira/wezterm-configurator/internal/settings"
	_ "modernc.org/sqlite"
)

// OutputKind names a cached rendering of the current snapshot.
type OutputKind string

const (
	OutputLua  OutputKind = "lua"
	OutputHTML OutputKind = "html"
	OutputANSI OutputKind = "ansi"
)

// Valid reports whether k is a known output kind.
func (k OutputKind) Valid() bool {
	switch k {
	case OutputLua, OutputHTML, OutputANSI:
		return true
	}
	return false
}

var (
	// ErrNoSnapshot is returned when an output is stored before any
	// settings snapshot exists.
	ErrNoSnapshot = errors.New("session has no settings snapshot")
	// ErrInvalidOutputKind is returned for unknown output kinds.
	ErrInvalidOutputKind = errors.New("invalid output kind")
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
	revision INTEGER PRIMARY KEY AUTOINCREMENT,
	settings TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS outputs (
	revision INTEGER NOT NULL REFERENCES snapshots(revision) ON DELETE CASCADE,
	kind TEXT NOT NULL,
	content TEXT NOT NULL,
	PRIMARY KEY (revision, kind)
);
`

// Store holds the session state.
type Store struct {
	db *sql.DB
}

// Open creates an empty session store.
func Open(ctx context.Context) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("session: open db: %w", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	store := &Store{db: db}
	if err := store.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("session: enable foreign keys: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("session: create schema: %w", err)
	}
	return nil
}

// Close releases the database. The session state is lost.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Update records next as the current snapshot when it differs from the
// stored one, dropping outputs cached for earlier snapshots. It reports
// whether anything changed.
func (s *Store) Update(ctx context.Context, next settings.Settings) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("session: begin update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, revision, ok, err := latest(ctx, tx)
	if err != nil {
		return false, err
	}
	if ok && !settings.HasChanged(next, current) {
		return false, nil
	}

	data, err := settings.EncodeProfile(next)
	if err != nil {
		return false, fmt.Errorf("session: encode snapshot: %w", err)
	}
	res, err := tx.ExecContext(ctx,
		"INSERT INTO snapshots (settings, created_at) VALUES (?, ?)",
		string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return false, fmt.Errorf("session: insert snapshot: %w", err)
	}
	newRevision, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("session: snapshot revision: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM snapshots WHERE revision < ?", newRevision); err != nil {
		return false, fmt.Errorf("session: prune snapshots: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("session: commit update: %w", err)
	}

	colors.StructuredDebug("session", "update", "changed", nil, fmt.Sprint(newRevision), map[string]any{
		"previous_revision": revision,
	})
	return true, nil
}

// Current returns the stored snapshot. ok is false before the first Update.
func (s *Store) Current(ctx context.Context) (settings.Settings, bool, error) {
	current, _, ok, err := latest(ctx, s.db)
	return current, ok, err
}

// Revision returns the revision of the current snapshot, or 0 when there
// is none. Revisions increase with every recorded change.
func (s *Store) Revision(ctx context.Context) (int64, error) {
	var revision sql.NullInt64
	if err := s.db.QueryRowContext(ctx, "SELECT MAX(revision) FROM snapshots").Scan(&revision); err != nil {
		return 0, fmt.Errorf("session: read revision: %w", err)
	}
	return revision.Int64, nil
}

// CachedOutput returns the output of kind rendered for the current
// snapshot, if any.
func (s *Store) CachedOutput(ctx context.Context, kind OutputKind) (string, bool, error) {
	if !kind.Valid() {
		return "", false, fmt.Errorf("%w: %q", ErrInvalidOutputKind, kind)
	}
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM outputs
		WHERE kind = ? AND revision = (SELECT MAX(revision) FROM snapshots)`,
		string(kind)).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session: read output: %w", err)
	}
	return content, true, nil
}

// PutOutput caches text as the output of kind for the current snapshot.
func (s *Store) PutOutput(ctx context.Context, kind OutputKind, text string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOutputKind, kind)
	}
	revision, err := s.Revision(ctx)
	if err != nil {
		return err
	}
	if revision == 0 {
		return ErrNoSnapshot
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO outputs (revision, kind, content) VALUES (?, ?, ?)",
		revision, string(kind), text)
	if err != nil {
		return fmt.Errorf("session: write output: %w", err)
	}
	return nil
}

// Output returns the cached output of kind, calling render and caching its
// result on a miss. Render errors are returned without caching.
func (s *Store) Output(ctx context.Context, kind OutputKind, render func(settings.Settings) (string, error)) (string, error) {
	if text, ok, err := s.CachedOutput(ctx, kind); err != nil || ok {
		return text, err
	}
	current, ok, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoSnapshot
	}
	text, err := render(current)
	if err != nil {
		return "", err
	}
	if err := s.PutOutput(ctx, kind, text); err != nil {
		return "", err
	}
	return text, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func latest(ctx context.Context, q queryer) (settings.Settings, int64, bool, error) {
	var (
		revision int64
		data     string
	)
	err := q.QueryRowContext(ctx,
		"SELECT revision, settings FROM snapshots ORDER BY revision DESC LIMIT 1").Scan(&revision, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return settings.Settings{}, 0, false, nil
	}
	if err != nil {
		return settings.Settings{}, 0, false, fmt.Errorf("session: read snapshot: %w", err)
	}
	s, err := settings.DecodeProfile([]byte(data))
	if err != nil {
		return settings.Settings{}, 0, false, fmt.Errorf("session: decode snapshot %d: %w", revision, err)
	}
	return s, revision, true, nil
}
