// Package storage keeps aggregate usage counters in SQLite. Individual
// events are never persisted, only per-day per-group press totals.
package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type DB struct {
	conn *sql.DB
}

// Open opens the database and initializes the schema
func Open(configDir string) (*DB, error) {
	dbPath := filepath.Join(configDir, "keyglow.db")

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS press_counts (
		date TEXT NOT NULL,
		style_group TEXT NOT NULL,
		presses INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (date, style_group)
	);

	CREATE INDEX IF NOT EXISTS idx_press_counts_date ON press_counts(date);
	`

	_, err := db.conn.Exec(schema)
	return err
}
