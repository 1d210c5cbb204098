// Package logging builds the process logger from the [log] config section.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	"github.com/tessro/skim/internal/config"
)

// Options controls where log records go besides the configured file.
type Options struct {
	// Console receives human-readable records. Nil disables console output,
	// which the terminal UI needs while it owns the screen.
	Console io.Writer

	// Verbose lowers the console level to debug.
	Verbose bool
}

// ParseLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New builds a logger fanning out to the console and the configured log
// file. The returned close function releases the file.
func New(cfg config.LogConfig, opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var handlers []slog.Handler
	closeFn := func() error { return nil }

	if opts.Console != nil {
		consoleLevel := level
		if opts.Verbose {
			consoleLevel = slog.LevelDebug
		}
		handlers = append(handlers, slog.NewTextHandler(opts.Console, &slog.HandlerOptions{
			Level: consoleLevel,
		}))
	}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		fileOpts := &slog.HandlerOptions{Level: level}
		if opts.Verbose {
			fileOpts.Level = slog.LevelDebug
		}
		if cfg.Format == "json" {
			handlers = append(handlers, slog.NewJSONHandler(f, fileOpts))
		} else {
			handlers = append(handlers, slog.NewTextHandler(f, fileOpts))
		}
		closeFn = f.Close
	}

	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler), closeFn, nil
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}
