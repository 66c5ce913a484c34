package songbook

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/CTAG07/bottles/pkg/song"
)

// Record writes every verse to the database in a single transaction,
// replacing any verse already stored under the same count.
func (s *Store) Record(ctx context.Context, verses []song.Verse) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction for record: %w", err)
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	stmtUpsertVerse := tx.StmtContext(ctx, s.stmtUpsertVerse)
	for _, v := range verses {
		if _, err = stmtUpsertVerse.ExecContext(ctx, v.Count, v.Lines[0], v.Lines[1]); err != nil {
			return fmt.Errorf("failed to record verse %d: %w", v.Count, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("could not commit recorded verses: %w", err)
	}

	s.logger.InfoContext(ctx, "Song recorded", slog.Int("verses", len(verses)))
	return nil
}

// Verse returns the stored verse for count. It returns sql.ErrNoRows if that
// verse was never recorded.
func (s *Store) Verse(ctx context.Context, count int) (song.Verse, error) {
	v := song.Verse{Count: count}
	err := s.stmtGetVerse.QueryRowContext(ctx, count).Scan(&v.Lines[0], &v.Lines[1])
	if err != nil {
		return song.Verse{}, err
	}
	return v, nil
}

// Verses returns every stored verse, highest count first.
func (s *Store) Verses(ctx context.Context) ([]song.Verse, error) {
	rows, err := s.stmtGetVerses.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var verses []song.Verse
	for rows.Next() {
		var v song.Verse
		if err = rows.Scan(&v.Count, &v.Lines[0], &v.Lines[1]); err != nil {
			return nil, err
		}
		verses = append(verses, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return verses, nil
}

// Count returns the number of stored verses.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.stmtCountVerses.QueryRowContext(ctx).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Replay writes the stored verses to w in the order they are sung, each
// followed by a blank line. It returns ErrEmpty if nothing has been recorded.
func (s *Store) Replay(ctx context.Context, w io.Writer) (int64, error) {
	verses, err := s.Verses(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not load verses for replay: %w", err)
	}
	if len(verses) == 0 {
		return 0, ErrEmpty
	}

	var total int64
	for _, v := range verses {
		n, err := io.WriteString(w, v.String())
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("failed to write verse %d: %w", v.Count, err)
		}
	}

	s.logger.DebugContext(ctx, "Song replayed",
		slog.Int("verses", len(verses)),
		slog.Int64("bytes", total),
	)
	return total, nil
}
