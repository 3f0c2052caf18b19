// Package logging builds the structured logger shared by the commands and
// the dashboard container.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects level, format and destination.
type Config struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
	Output string `toml:"output"` // stderr, stdout, discard or a file path
}

// ParseLevel maps a level name to slog, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger for cfg and a closer for any file it opened.
// A file that cannot be opened falls back to stderr.
func New(cfg Config) (*slog.Logger, func() error) {
	w, closer := writerFor(cfg.Output)
	return NewWithWriter(cfg, w), closer
}

// NewWithWriter is New with an explicit destination; Output is ignored.
func NewWithWriter(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func writerFor(output string) (io.Writer, func() error) {
	noop := func() error { return nil }

	switch output {
	case "", "stderr":
		return os.Stderr, noop
	case "stdout":
		return os.Stdout, noop
	case "discard":
		return io.Discard, noop
	}

	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Cannot open log file %s, logging to stderr: %v\n", output, err)
		return os.Stderr, noop
	}
	return f, f.Close
}
