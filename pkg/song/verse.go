package song

import (
	"errors"
	"fmt"
	"strings"
)

// Start is the number of bottles on the wall when the song begins.
const Start = 99

// ErrCountOutOfRange is returned by Render for a count outside [0, Start].
var ErrCountOutOfRange = errors.New("bottle count out of range")

// Verse is the rendered text for a single count. Lines holds the two lyric
// lines without trailing newlines.
type Verse struct {
	Count int
	Lines [2]string
}

// String returns the verse as it appears in the song: both lines, each
// terminated by a newline, followed by the blank separator line.
func (v Verse) String() string {
	return v.Lines[0] + "\n" + v.Lines[1] + "\n\n"
}

// Unit returns the noun for n bottles: "bottle" when n is exactly 1,
// "bottles" otherwise (zero included).
func Unit(n int) string {
	if n == 1 {
		return "bottle"
	}
	return "bottles"
}

// Render builds the verse for count. Counts above one take the general
// hand-off shape, one is the last bottle, and zero is the closing verse
// that restarts the song.
func Render(count int) (Verse, error) {
	var name string
	switch {
	case count < 0 || count > Start:
		return Verse{}, fmt.Errorf("%w: %d", ErrCountOutOfRange, count)
	case count == 0:
		name = tmplEmpty
	case count == 1:
		name = tmplLast
	default:
		name = tmplMore
	}

	var sb strings.Builder
	if err := verseTemplates.ExecuteTemplate(&sb, name, count); err != nil {
		return Verse{}, fmt.Errorf("failed to render verse %d: %w", count, err)
	}

	first, second, ok := strings.Cut(sb.String(), "\n")
	if !ok || strings.Contains(second, "\n") {
		return Verse{}, fmt.Errorf("verse template %q did not render two lines", name)
	}
	return Verse{Count: count, Lines: [2]string{first, second}}, nil
}
