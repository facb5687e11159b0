package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"

	"github.com/gaurav-prasanna/docscrape/core"
)

// tableNamePattern restricts configured table names to plain identifiers,
// since the name is interpolated into SQL.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// HashStore keeps one content hash record per URL for change detection.
// Writing a record for an existing URL overwrites it; no history is kept.
type HashStore struct {
	db    *sql.DB
	table string
}

// NewHashStore opens the SQLite database at dbPath and creates the hash
// table if it does not exist.
func NewHashStore(dbPath, table string) (*HashStore, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid hash table name %q", table)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening hash database: %w", err)
	}

	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	hash TEXT NOT NULL
)`, table)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating hash table: %w", err)
	}

	return &HashStore{db: db, table: table}, nil
}

// Close closes the underlying database connection.
func (s *HashStore) Close() error {
	return s.db.Close()
}

// Record upserts the content hash for a URL. The record id mirrors the URL.
func (s *HashStore) Record(ctx context.Context, url, digest string) error {
	query := fmt.Sprintf(
		`INSERT OR REPLACE INTO %s (id, url, hash) VALUES (?, ?, ?)`, s.table)
	if _, err := s.db.ExecContext(ctx, query, url, url, digest); err != nil {
		return fmt.Errorf("recording hash for %s: %w", url, err)
	}
	return nil
}

// Get returns the stored hash record for a URL, or nil if none exists.
func (s *HashStore) Get(ctx context.Context, url string) (*core.HashRecord, error) {
	query := fmt.Sprintf(`SELECT id, url, hash FROM %s WHERE id = ?`, s.table)

	var rec core.HashRecord
	err := s.db.QueryRowContext(ctx, query, url).Scan(&rec.ID, &rec.URL, &rec.Hash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading hash for %s: %w", url, err)
	}
	return &rec, nil
}
