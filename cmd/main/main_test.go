package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CTAG07/bottles/pkg/songbook"
)

// execute runs the root command with args and returns what it wrote to
// stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCmd()
	// A nil slice would make cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeConfig stores cfg as JSON in a temp dir and returns its path.
func writeConfig(t *testing.T, cfg *Config) string {
	t.Helper()
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestRootWritesSong(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Equal(t, 300, strings.Count(stdout, "\n"))
	assert.True(t, strings.HasPrefix(stdout, "99 bottles of beer on the wall, 99 bottles of beer.\n"))
	assert.True(t, strings.HasSuffix(stdout, "Go to the store and buy some more, 99 bottles of beer on the wall.\n\n"))
	assert.Contains(t, stdout, "Take one down and pass it around, 1 bottle of beer on the wall.\n\n")
}

func TestRootIsDeterministic(t *testing.T) {
	first, _, err := execute(t)
	require.NoError(t, err)
	second, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRootRejectsArguments(t *testing.T) {
	stdout, _, err := execute(t, "50")
	assert.Error(t, err)
	assert.Empty(t, stdout)
}

func TestOutFlagWritesFile(t *testing.T) {
	sung, _, err := execute(t)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "song.txt")
	stdout, stderr, err := execute(t, "--out", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Song written")

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sung, string(written))
}

func TestRecordThenReplay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "data", "bottles.db")
	configPath := writeConfig(t, cfg)

	sung, _, err := execute(t)
	require.NoError(t, err)

	_, stderr, err := execute(t, "record", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Songbook updated")

	// Recording again must not duplicate verses.
	_, _, err = execute(t, "record", "--config", configPath, "--log-level", "error")
	require.NoError(t, err)

	replayed, _, err := execute(t, "replay", "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, sung, replayed)
}

func TestReplayEmptySongbook(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "empty.db")
	configPath := writeConfig(t, cfg)

	stdout, _, err := execute(t, "replay", "--config", configPath)
	require.ErrorIs(t, err, songbook.ErrEmpty)
	assert.Empty(t, stdout)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bottles version dev (commit none, built unknown)\n", stdout)
}
