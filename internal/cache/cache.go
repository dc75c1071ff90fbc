// Package cache keeps a durable local copy of the entry collection so the
// survey keeps working without a network. One configured key in a SQLite
// key-value table holds the whole collection, JSON-serialized; every save
// fully overwrites the previous value.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/armanazij/mygp-survey/internal/cache/migrations"
	"github.com/armanazij/mygp-survey/internal/dbx"
	"github.com/armanazij/mygp-survey/internal/models"
	"github.com/pressly/goose/v3"
)

// Store reads and writes the cached collection under a fixed key.
type Store struct {
	db  dbx.DBTX
	key string
}

func New(db dbx.DBTX, key string) *Store {
	return &Store{db: db, key: key}
}

// Open opens the cache database at dsn and applies pending migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate cache db: %w", err)
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// Load returns the cached collection. A missing key or an unparsable value
// yields an empty collection, not an error: the cache is best-effort and the
// session can always start from nothing.
func (s *Store) Load(ctx context.Context) ([]models.Entry, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM cache WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var entries []models.Entry
	if err := json.Unmarshal([]byte(value), &entries); err != nil {
		return []models.Entry{}, nil
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, nil
}

// Save overwrites the cached collection with entries.
func (s *Store) Save(ctx context.Context, entries []models.Entry) error {
	value, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize entries: %w", err)
	}

	query := `INSERT INTO cache (key, value, updated_at) VALUES (?, ?, datetime('now'))
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, s.key, string(value)); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}
