// Package store caches the last successfully fetched question payload in a
// local SQLite database so the app keeps working offline. It never stores
// user choices; filters and deck position live only in memory.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNoPayload is returned when the cache holds no payload yet.
var ErrNoPayload = errors.New("no cached payload")

// keepPayloads bounds how many historical payloads are retained.
const keepPayloads = 5

// Payload is one cached copy of the raw sheet export.
type Payload struct {
	ID        string
	FetchedAt time.Time
	Body      string
}

// Store wraps the SQLite payload cache.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SavePayload stores a fresh payload copy and prunes old ones.
func (s *Store) SavePayload(ctx context.Context, body string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payloads (id, fetched_at, body) VALUES (?, ?, ?)`,
		uuid.New().String(), time.Now().UTC().Format(time.RFC3339Nano), body,
	)
	if err != nil {
		return fmt.Errorf("insert payload: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`DELETE FROM payloads WHERE id NOT IN (
			SELECT id FROM payloads ORDER BY fetched_at DESC LIMIT ?
		)`, keepPayloads,
	)
	if err != nil {
		return fmt.Errorf("prune payloads: %w", err)
	}
	return nil
}

// LatestPayload returns the most recently cached payload, or ErrNoPayload.
func (s *Store) LatestPayload(ctx context.Context) (*Payload, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, fetched_at, body FROM payloads ORDER BY fetched_at DESC LIMIT 1`,
	)

	var p Payload
	var fetchedAt string
	if err := row.Scan(&p.ID, &fetchedAt, &p.Body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoPayload
		}
		return nil, fmt.Errorf("scan payload: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("parse fetched_at: %w", err)
	}
	p.FetchedAt = t

	return &p, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS payloads (
			id         TEXT PRIMARY KEY,
			fetched_at TEXT NOT NULL,
			body       TEXT NOT NULL
		)`)
	return err
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultCachePath resolves the cache file path in priority order:
// 1. CHECKIN_CACHE environment variable
// 2. $XDG_DATA_HOME/checkin-roulette/cache.db
// 3. ~/.local/share/checkin-roulette/cache.db
func DefaultCachePath() (string, error) {
	if p := os.Getenv("CHECKIN_CACHE"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "checkin-roulette", "cache.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
