package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenDB opens the catalog SQLite database at the given path, or an
// in-memory database when path is ":memory:". Sets WAL mode, enables
// foreign keys, and runs migrations.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS vehicles (
		id TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		body_style TEXT NOT NULL,
		fuel_type TEXT NOT NULL,
		seating INTEGER NOT NULL,
		mpg_combined REAL,
		range_miles REAL,
		cargo_volume REAL NOT NULL DEFAULT 0,
		towing_capacity REAL NOT NULL DEFAULT 0,
		awd INTEGER NOT NULL DEFAULT 0,
		msrp REAL NOT NULL DEFAULT 0,
		features TEXT NOT NULL DEFAULT '[]',
		safety_rating REAL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_body_style ON vehicles(body_style)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id TEXT PRIMARY KEY,
		vehicle_id TEXT NOT NULL REFERENCES vehicles(id),
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		zip TEXT NOT NULL,
		message TEXT,
		consent INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,
}

func migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
