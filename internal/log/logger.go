// Package log provides structured logging over log/slog.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fieldworkhq/fieldwork/internal/config"
)

// Logger wraps slog.Logger with handler selection from configuration.
type Logger struct {
	handler slog.Handler
	logger  *slog.Logger
}

// NewLogger creates a new Logger based on configuration.
func NewLogger(cfg config.AppConfig) *Logger {
	return NewLoggerWithWriter(os.Stdout, cfg.LogFormat(), cfg.LogLevel())
}

// NewLoggerWithWriter creates a Logger that writes to the specified writer.
func NewLoggerWithWriter(w io.Writer, format config.LogFormat, level string) *Logger {
	lvl := parseLevel(level)

	var handler slog.Handler
	switch format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	default:
		handler = newTerminalHandler(w, &slog.HandlerOptions{Level: lvl})
	}

	return &Logger{
		handler: handler,
		logger:  slog.New(handler),
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Handler returns the underlying slog.Handler.
func (l *Logger) Handler() slog.Handler {
	return l.handler
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// SetDefault installs this logger as the process-wide slog default.
func (l *Logger) SetDefault() {
	slog.SetDefault(l.logger)
}
