// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// keeper CLI.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and derive run-scoped
// loggers via WithRunID or FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/MKhiriev/go-snapshot-keeper/internal/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileName is the file NewClientLogger appends to.
const LogFileName = "keeper.log"

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

func configureGlobals(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a *Logger for the given role label (e.g. "keeper",
// "auto") writing JSON to os.Stdout.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
func NewLogger(role string) *Logger {
	configureGlobals("")
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger that appends JSON lines to
// [LogFileName] in dir, or next to the executable when dir is empty. The
// terminal stays free for prompts and command output. Falls back to stderr
// when the file cannot be opened. level is a zerolog level name; an empty or
// unknown level means debug.
func NewClientLogger(role, dir, level string) *Logger {
	configureGlobals(level)

	if dir == "" {
		execPath, _ := os.Executable()
		dir = filepath.Dir(execPath)
	}
	var out io.Writer = os.Stderr
	logFile, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err == nil {
		out = logFile
	}

	return newLogger(out, role)
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithRunID returns a child logger carrying the run id found in ctx as
// "run_id". Without a run id the receiver is returned unchanged.
func (l *Logger) WithRunID(ctx context.Context) *Logger {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok {
		return l
	}
	return &Logger{l.With().Str("run_id", runID).Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// The keeper metrics router attaches a logger to each request with
// zerolog's WithContext before its handlers run.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
