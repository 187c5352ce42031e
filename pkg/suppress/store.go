// Package suppress persists "do not show this message again" choices.
// Alerts that carry a suppression key consult the store before being
// presented and record the dismissal code when the user ticks the
// checkbox, so a suppressed alert can be answered without showing it.
package suppress

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store handles suppression persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the suppression database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS suppressions (
		key TEXT PRIMARY KEY,
		return_code INTEGER NOT NULL,
		suppressed_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Suppress records that the alert identified by key should not be shown
// again, remembering the return code the user answered with.
func (s *Store) Suppress(key string, returnCode int) error {
	_, err := s.db.Exec(`
		INSERT INTO suppressions (key, return_code, suppressed_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			return_code = excluded.return_code,
			suppressed_at = excluded.suppressed_at
	`, key, returnCode, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("suppress %q: %w", key, err)
	}
	return nil
}

// IsSuppressed reports whether key was suppressed, and if so the return
// code recorded with it.
func (s *Store) IsSuppressed(key string) (bool, int, error) {
	var code int
	err := s.db.QueryRow(`
		SELECT return_code FROM suppressions WHERE key = ?
	`, key).Scan(&code)
	if err == sql.ErrNoRows {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("lookup %q: %w", key, err)
	}
	return true, code, nil
}

// Clear removes a suppression so the alert shows again.
func (s *Store) Clear(key string) error {
	if _, err := s.db.Exec(`DELETE FROM suppressions WHERE key = ?`, key); err != nil {
		return fmt.Errorf("clear %q: %w", key, err)
	}
	return nil
}

// Keys returns every suppressed key, newest first.
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT key FROM suppressions ORDER BY suppressed_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
