package song

import (
	"fmt"
	"io"
	"log/slog"
)

// Generator writes the whole song, verse by verse, from Start down to zero.
// It holds no state between runs.
type Generator struct {
	logger *slog.Logger
}

// NewGenerator returns a Generator that discards its logs.
func NewGenerator() *Generator {
	return &Generator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger for the Generator. By default, all logs are discarded.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Verses renders every verse of the song in the order it is sung.
func (g *Generator) Verses() ([]Verse, error) {
	verses := make([]Verse, 0, Start+1)
	for count := Start; count >= 0; count-- {
		v, err := Render(count)
		if err != nil {
			return nil, err
		}
		verses = append(verses, v)
	}
	return verses, nil
}

// WriteTo writes the song to w, one verse per count, each followed by a
// blank line. It returns the number of bytes written and the first error
// encountered. It implements io.WriterTo.
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for count := Start; count >= 0; count-- {
		v, err := Render(count)
		if err != nil {
			return total, err
		}
		n, err := io.WriteString(w, v.String())
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("failed to write verse %d: %w", count, err)
		}
		g.logger.Debug("Verse written", slog.Int("count", count))
	}

	g.logger.Debug("Song written",
		slog.Int("verses", Start+1),
		slog.Int64("bytes", total),
	)
	return total, nil
}
