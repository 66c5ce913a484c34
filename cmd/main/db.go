package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CTAG07/bottles/pkg/songbook"
)

// openSongbook opens the SQLite database at path with the driver selected at
// build time, creating its directory and schema as needed. The caller closes
// both the store and the database.
func openSongbook(path string) (*sql.DB, *songbook.Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = songbook.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to setup songbook schema: %w", err)
	}

	store, err := songbook.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create songbook store: %w", err)
	}
	return db, store, nil
}
