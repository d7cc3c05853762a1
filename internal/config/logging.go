package config

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// SetupLogger builds the process-wide logger for a planning run: readable
// text on stderr next to the interactive prompts, and JSON appended to
// cfg.LogFile so a generation can be inspected after the terminal session
// is gone. The returned func closes the log file; call it after the last
// log line of the process.
//
// A log file that cannot be opened is not fatal. Planning proceeds with
// stderr output only.
func SetupLogger(cfg Config) (*slog.Logger, func() error) {
	stderr := textHandler(os.Stderr, cfg.LogLevel)

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Warn("log file unavailable, keeping stderr only", "file", cfg.LogFile, "error", err)
		return slog.New(stderr), func() error { return nil }
	}

	logger := slog.New(slogmulti.Fanout(stderr, jsonHandler(file, cfg.LogLevel)))
	return logger, file.Close
}

// NewLoggerWithWriters builds the same stderr/file fanout over arbitrary
// writers so tests can capture both streams.
func NewLoggerWithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slogmulti.Fanout(textHandler(stderr, level), jsonHandler(file, level)))
}

func textHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

func jsonHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}
