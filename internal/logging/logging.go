// Package logging provides zerolog-based structured logging for aercomp.
//
// All components log through a zerolog.Logger carried on the context. Use
// FromContext to retrieve it, ComponentLogger to tag a logger with the
// component name, and ContextWithTraceID/GetOrGenerateTraceID to correlate
// log lines belonging to one comparison run.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Invalid or empty
	// values fall back to "info".
	Level string

	// Format selects "console" (human-readable, stderr) or "json".
	Format string

	// File is an optional log file path. When set, output goes to the file
	// instead of stderr.
	File string
}

// LogResult holds the constructed logger plus file state for cleanup.
type LogResult struct {
	Logger   zerolog.Logger
	FilePath string

	// UsingFile reports whether log output is going to FilePath.
	UsingFile bool

	// FallbackUsed is set when a file was requested but could not be opened
	// and logging fell back to stderr.
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogResult) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger from cfg. A file that cannot be opened is not
// fatal: the logger falls back to stderr and records the reason in the result.
func NewLogger(cfg Config) LogResult {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	result := LogResult{}
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	if cfg.File != "" {
		f, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = fileErr.Error()
		} else {
			out = f
			result.file = f
			result.FilePath = cfg.File
			result.UsingFile = true
		}
	} else if cfg.Format == "json" {
		out = os.Stderr
	}

	result.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return result
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored on ctx, or a disabled logger when the
// context carries none. Callers can always log without nil checks.
func FromContext(ctx context.Context) *zerolog.Logger {
	logger := zerolog.Ctx(ctx)
	return logger
}
