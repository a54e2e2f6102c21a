// Package observability provides structured logging for deskfang runs.
//
// Informational records go to an info sink, warnings and errors to an error
// sink, and both are echoed to the console. The logger is constructed once at
// process start and closed on every exit path; there is no ambient global
// logging state.
package observability

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Log file names within the log directory.
const (
	infoLogFile  = "info.log"
	errorLogFile = "error.log"
)

// Permission modes for the log directory and files.
const (
	logDirPerm  = 0o750
	logFilePerm = 0o640
)

// Config holds logging configuration for one run.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string

	// Format selects the record encoding: text or json.
	Format string

	// Dir is the directory holding the log files, created if absent.
	Dir string
}

// Logger is a structured logger with process-lifetime file sinks.
type Logger struct {
	*slog.Logger

	infoFile  *os.File
	errorFile *os.File
}

// New creates a Logger writing to file sinks under cfg.Dir, echoed to the
// console. Close must be called before process exit.
func New(cfg Config) (*Logger, error) {
	mkErr := os.MkdirAll(cfg.Dir, logDirPerm)
	if mkErr != nil {
		return nil, fmt.Errorf("create log dir: %w", mkErr)
	}

	infoFile, err := openLogFile(cfg.Dir, infoLogFile)
	if err != nil {
		return nil, err
	}

	errorFile, err := openLogFile(cfg.Dir, errorLogFile)
	if err != nil {
		closeErr := infoFile.Close()

		return nil, errors.Join(err, closeErr)
	}

	handler := &SplitHandler{
		info:  buildHandler(cfg, io.MultiWriter(infoFile, os.Stdout)),
		error: buildHandler(cfg, io.MultiWriter(errorFile, os.Stderr)),
	}

	return &Logger{
		Logger:    slog.New(handler),
		infoFile:  infoFile,
		errorFile: errorFile,
	}, nil
}

// Close flushes and closes both file sinks.
func (l *Logger) Close() error {
	return errors.Join(l.infoFile.Close(), l.errorFile.Close())
}

// SplitHandler is an [slog.Handler] that routes records below Warn to the
// info handler and all other records to the error handler.
type SplitHandler struct {
	info  slog.Handler
	error slog.Handler
}

// Enabled reports whether either inner handler accepts the level.
func (sh *SplitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return sh.pick(level).Enabled(ctx, level)
}

// Handle delegates to the handler selected by the record level.
func (sh *SplitHandler) Handle(ctx context.Context, record slog.Record) error {
	err := sh.pick(record.Level).Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("split handler: %w", err)
	}

	return nil
}

// WithAttrs returns a new SplitHandler with the attributes on both inner handlers.
func (sh *SplitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &SplitHandler{
		info:  sh.info.WithAttrs(attrs),
		error: sh.error.WithAttrs(attrs),
	}
}

// WithGroup returns a new SplitHandler with a group prefix on both inner handlers.
func (sh *SplitHandler) WithGroup(name string) slog.Handler {
	return &SplitHandler{
		info:  sh.info.WithGroup(name),
		error: sh.error.WithGroup(name),
	}
}

func (sh *SplitHandler) pick(level slog.Level) slog.Handler {
	if level >= slog.LevelWarn {
		return sh.error
	}

	return sh.info
}

func openLogFile(dir, name string) (*os.File, error) {
	path := filepath.Join(dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", name, err)
	}

	return file, nil
}

func buildHandler(cfg Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	if cfg.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
