package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/riordanpawley/storyboard/internal/config"
	"golang.org/x/term"
)

// LogFileName is the file created inside the configured log directory
const LogFileName = "storyboard.log"

// NewLogger creates the application logger. The TUI owns the terminal, so
// records go to a file in cfg.Dir. The file gets the text format when
// stdout is a terminal and JSON otherwise, for scripts and CI collecting
// logs next to command output.
func NewLogger(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(cfg.Dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return newLogger(f, level, term.IsTerminal(int(os.Stdout.Fd()))), f.Close, nil
}

func newLogger(w io.Writer, level slog.Level, text bool) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if text {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}
