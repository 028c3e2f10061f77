package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/riordanpawley/azmodal/internal/config"
)

// newLogger builds the process logger and installs it as slog's default.
// The TUI owns the terminal, so logs go to cfg.Log.File or nowhere.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	if cfg.Log.File == "" {
		logger := slog.New(slog.NewTextHandler(io.Discard, opts))
		slog.SetDefault(logger)
		return logger, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, opts))
	slog.SetDefault(logger)
	return logger, func() { _ = f.Close() }, nil
}
