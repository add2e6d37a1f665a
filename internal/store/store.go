// Package store persists the tracker's records as named JSON documents in a
// local SQLite database. The store is a durable cache, not a database proper:
// reads fall back to a caller-supplied default instead of failing, and the
// engine treats write errors as best-effort.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Record keys. Each names one independent JSON document.
const (
	KeySupplements = "supplements"
	KeyHistory     = "history"
	KeyLifestyle   = "lifestyle"
	KeyProfile     = "userProfile"
)

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}
	if err := bootstrap(db); err != nil {
		return nil, err
	}
	return db, nil
}

func bootstrap(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS records (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	if err != nil {
		return fmt.Errorf("create records table: %w", err)
	}
	return nil
}

// Load reads and decodes the record for key. A missing row, a read error, or
// a corrupt JSON value all yield fallback; Load never fails.
func Load[T any](db *sql.DB, key string, fallback T) T {
	var raw string
	err := db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		return fallback
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return fallback
	}
	return out
}

// Save encodes value and upserts it under key.
func Save(db *sql.DB, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", key, err)
	}
	_, err = db.Exec(`
INSERT INTO records(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, string(raw))
	if err != nil {
		return fmt.Errorf("save record %q: %w", key, err)
	}
	return nil
}
