// Package logger provides a thin wrapper around zerolog.Logger with
// convenience constructors used throughout snapsift.
//
// The Logger type embeds zerolog.Logger, so the full zerolog API (Debug,
// Info, Warn, Error, Fatal, ...) is available directly on *Logger.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding the upstream
// type exposes its API while allowing application helpers to be added.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger writing JSON to stdout, labelled with the
// given role (e.g. "snapsift"). The caller field records the fully-qualified
// function name instead of file:line.
func NewLogger(role string) *Logger {
	return &Logger{newZerolog(os.Stdout, role)}
}

// NewFileLogger constructs a *Logger writing to a "logs" file next to the
// executable. The TUI owns the terminal, so stdout logging would corrupt the
// screen; file output keeps diagnostics available without touching it.
// Falls back to stdout if the file cannot be opened.
func NewFileLogger(role string) *Logger {
	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return NewLogger(role)
	}

	return &Logger{newZerolog(logFile, role)}
}

func newZerolog(out io.Writer, role string) zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	return zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the
// receiver; it can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper. If none is attached zerolog returns its global logger, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// FromRequest extracts the zerolog.Logger stored in the request's context.
// Like [FromContext], the result is never nil.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
