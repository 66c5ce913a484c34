package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/CTAG07/bottles/pkg/song"
	"github.com/dustin/go-humanize"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// options holds the flags shared by every command.
type options struct {
	configPath string
	logLevel   string
	outPath    string
}

// app carries the resolved configuration for one command invocation.
type app struct {
	config *Config
	logger *slog.Logger
	stdout io.Writer
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "bottles",
		Short: "Sing 99 Bottles of Beer",
		Long: `Bottles writes the full lyrics of "99 Bottles of Beer" to standard output,
one verse per count from 99 down to 0, each followed by a blank line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.sing()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (JSON)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&opts.outPath, "out", "o", "", "Write the song to this file instead of standard output")

	cmd.AddCommand(recordCmd(opts), replayCmd(opts), versionCmd())
	return cmd
}

func recordCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "record",
		Short: "Store the song in the SQLite songbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.record(cmd.Context())
		},
	}
}

func replayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "replay",
		Short: "Write the song stored in the SQLite songbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			return a.replay(cmd.Context())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bottles version %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		},
	}
}

// newApp loads the config and applies flag overrides on top of it.
func newApp(cmd *cobra.Command, opts *options) (*app, error) {
	config, err := LoadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.logLevel != "" {
		config.LogLevel = opts.logLevel
	}
	if opts.outPath != "" {
		config.OutputPath = opts.outPath
	}

	return &app{
		config: config,
		logger: newLogger(cmd.ErrOrStderr(), config.LogLevel),
		stdout: cmd.OutOrStdout(),
	}, nil
}

// sing writes the generated song to the configured output.
func (a *app) sing() error {
	g := song.NewGenerator()
	g.SetLogger(a.logger)
	return a.emit(g.WriteTo)
}

// record renders the song and stores it in the songbook.
func (a *app) record(ctx context.Context) error {
	verses, err := song.NewGenerator().Verses()
	if err != nil {
		return err
	}

	db, store, err := openSongbook(a.config.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		store.Close()
		if err := db.Close(); err != nil {
			a.logger.Error("Failed to close database", "error", err)
		}
	}()
	store.SetLogger(a.logger)

	if err = store.Record(ctx, verses); err != nil {
		return err
	}
	a.logger.Info("Songbook updated", "database", a.config.DatabasePath, "verses", len(verses))
	return nil
}

// replay writes the song stored in the songbook to the configured output.
func (a *app) replay(ctx context.Context) error {
	db, store, err := openSongbook(a.config.DatabasePath)
	if err != nil {
		return err
	}
	defer func() {
		store.Close()
		if err := db.Close(); err != nil {
			a.logger.Error("Failed to close database", "error", err)
		}
	}()
	store.SetLogger(a.logger)

	return a.emit(func(w io.Writer) (int64, error) {
		return store.Replay(ctx, w)
	})
}

// emit runs write against standard output, or against a buffer that is then
// atomically written to OutputPath when one is configured.
func (a *app) emit(write func(io.Writer) (int64, error)) error {
	if a.config.OutputPath == "" {
		_, err := write(a.stdout)
		return err
	}

	var buf bytes.Buffer
	n, err := write(&buf)
	if err != nil {
		return err
	}
	if err = atomic.WriteFile(a.config.OutputPath, &buf); err != nil {
		return fmt.Errorf("failed to write song file: %w", err)
	}
	a.logger.Info("Song written", "path", a.config.OutputPath, "size", humanize.Bytes(uint64(n)))
	return nil
}
