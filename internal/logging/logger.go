package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"wordfind/internal/config"
)

// NewLogger creates a *slog.Logger from cfg and installs it as the default.
//
// The terminal belongs to the TUI, so records go to cfg.File through a
// rotating writer. An empty File sends records to stderr, which only the
// one-shot commands should use.
//
// Format "json" produces JSON records, anything else the text handler with
// source locations. Level is one of debug, info, warn, error; defaults to info.
func NewLogger(cfg config.LogConfig) (*slog.Logger, io.Closer) {
	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		_ = os.MkdirAll(filepath.Dir(cfg.File), 0755)
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		out, closer = rotating, rotating
	}

	logger := New(out, cfg)
	slog.SetDefault(logger)

	return logger, closer
}

// New builds a logger writing to w without touching the default logger
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
