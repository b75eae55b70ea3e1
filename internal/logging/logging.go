package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/stretchletics/stretchletics/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// New builds the process logger. Output goes to stdout unless cfg.LogFile is
// set, in which case the file is rotated by size.
func New(cfg *config.Config) (*slog.Logger, error) {
	return NewTo(cfg, os.Stdout)
}

// NewTo is New with console output sent to w.
func NewTo(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level := ParseLevel(cfg.LogLevel)
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	out := w
	if p := strings.TrimSpace(cfg.LogFile); p != "" {
		if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
			return slog.New(newHandler(cfg.LogFormat, w, opts)), err
		}
		out = &lumberjack.Logger{
			Filename:   p,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
			Compress:   true,
		}
	}
	return slog.New(newHandler(cfg.LogFormat, out, opts)), nil
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if strings.EqualFold(strings.TrimSpace(format), "text") {
		return slog.NewTextHandler(out, opts)
	}
	return slog.NewJSONHandler(out, opts)
}
