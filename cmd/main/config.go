package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Config holds the optional settings for a run. None of them change the
// lyrics; they only control logging and where the song is read or written.
type Config struct {
	LogLevel     string `json:"log_level"`
	DatabasePath string `json:"database_path"`
	OutputPath   string `json:"output_path"`
}

// DefaultConfig creates a configuration with default values. An empty
// OutputPath means standard output.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		DatabasePath: "./data/bottles.db",
		OutputPath:   "",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// An empty path yields the defaults without touching the filesystem. If the
// file doesn't exist, it is created with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// The song does not depend on the file, so defaults are enough.
				_, _ = fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// parseLogLevel maps a config string to a slog level, defaulting to info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLogLevel(level)}))
}
