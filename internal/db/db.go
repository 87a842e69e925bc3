package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// TimestampLayout is how start/end times are persisted: text, no zone marker.
const TimestampLayout = "2006-01-02 15:04:05"

// MemoryPath selects an in-memory store.
const MemoryPath = ":memory:"

// Open opens the store at path (creating parent directories), enables
// foreign keys on every connection and ensures the schema exists.
func Open(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	// Pragmas go in the DSN so that every pooled connection gets them.
	database, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if path == MemoryPath {
		// Each new connection to :memory: is a fresh, empty database.
		database.SetMaxOpenConns(1)
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// Close closes the database connection. Safe to call with nil and more than once.
func Close(database *sql.DB) error {
	if database == nil {
		return nil
	}
	return database.Close()
}
