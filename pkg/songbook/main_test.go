package songbook

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/CTAG07/bottles/pkg/song"
	_ "github.com/mattn/go-sqlite3"
)

// setupTestStore creates a new SQLite database in a temp dir and a Store for
// testing. It uses t.Cleanup to ensure resources are released.
func setupTestStore(t *testing.T) (*sql.DB, *Store) {
	dbFile := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite3", dbFile+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := SetupSchema(db); err != nil {
		t.Fatalf("failed to set up schema: %v", err)
	}

	s, err := NewStore(db)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	t.Cleanup(s.Close)

	return db, s
}

// setupRecordedStore is a convenience helper that also records the full song.
func setupRecordedStore(t *testing.T) (context.Context, *Store, []song.Verse) {
	_, s := setupTestStore(t)
	ctx := context.Background()

	verses, err := song.NewGenerator().Verses()
	if err != nil {
		t.Fatalf("setup: Verses() failed: %v", err)
	}
	if err := s.Record(ctx, verses); err != nil {
		t.Fatalf("setup: Record() failed: %v", err)
	}
	return ctx, s, verses
}
