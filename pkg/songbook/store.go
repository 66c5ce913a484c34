package songbook

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrEmpty is returned by Replay when no verses have been recorded.
var ErrEmpty = errors.New("songbook is empty")

// SetupSchema creates the verse table in the provided database. It is
// idempotent and safe to call on an already-initialized database.
func SetupSchema(db *sql.DB) error {

	const schemaVerses = `
CREATE TABLE IF NOT EXISTS song_verses (
    verse_count INTEGER PRIMARY KEY,
    line_one TEXT NOT NULL,
    line_two TEXT NOT NULL
);
`

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	if _, err = tx.Exec(schemaVerses); err != nil {
		return fmt.Errorf("could not create verses schema: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}
	return nil
}

// Store holds the database connection and the prepared statements used to
// record and read verses.
type Store struct {
	db              *sql.DB
	stmtUpsertVerse *sql.Stmt
	stmtGetVerse    *sql.Stmt
	stmtGetVerses   *sql.Stmt
	stmtCountVerses *sql.Stmt
	logger          *slog.Logger
}

// NewStore prepares every statement the Store needs. SetupSchema must have
// been run on db first.
func NewStore(db *sql.DB) (*Store, error) {
	stmtUpsertVerse, err := db.Prepare(`INSERT INTO song_verses (verse_count, line_one, line_two) VALUES (?, ?, ?)
ON CONFLICT(verse_count) DO UPDATE SET line_one = excluded.line_one, line_two = excluded.line_two;`)
	if err != nil {
		return nil, err
	}

	stmtGetVerse, err := db.Prepare(`SELECT line_one, line_two FROM song_verses WHERE verse_count = ?;`)
	if err != nil {
		return nil, err
	}

	stmtGetVerses, err := db.Prepare(`SELECT verse_count, line_one, line_two FROM song_verses ORDER BY verse_count DESC;`)
	if err != nil {
		return nil, err
	}

	stmtCountVerses, err := db.Prepare(`SELECT COUNT(*) FROM song_verses;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:              db,
		stmtUpsertVerse: stmtUpsertVerse,
		stmtGetVerse:    stmtGetVerse,
		stmtGetVerses:   stmtGetVerses,
		stmtCountVerses: stmtCountVerses,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// Close releases the prepared statements. The database itself is owned by
// the caller.
func (s *Store) Close() {
	_ = s.stmtUpsertVerse.Close()
	_ = s.stmtGetVerse.Close()
	_ = s.stmtGetVerses.Close()
	_ = s.stmtCountVerses.Close()
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}
