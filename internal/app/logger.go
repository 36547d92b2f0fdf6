package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/studio-backend/internal/config"
)

// NewLogger builds the process logger from cfg, writes to stderr and installs
// it as the slog default. "text" adds source locations; anything else is JSON.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newLogHandler(os.Stderr, cfg)).With(slog.String("app", "studio"))
	slog.SetDefault(logger)
	return logger
}

func newLogHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	text := strings.EqualFold(strings.TrimSpace(cfg.Format), "text")
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level), AddSource: text}
	if text {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func parseLevel(s string) slog.Level {
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
