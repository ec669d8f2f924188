package magick

import (
	"io"
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	// Native utilities own stdout, so structured logs go to stderr.
	ConfigureLogging(os.Stderr, ConfigFromEnv().Debug)
}

// ConfigureLogging replaces Logger with a JSON logger writing to w.
func ConfigureLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	Logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}
