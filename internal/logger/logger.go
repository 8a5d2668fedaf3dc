// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used by the
// vault client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Operation-scoped loggers travel in a context.Context and are recovered
// with FromContext.
//
// Secrets, keys and plaintext field values must never be logged.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger writing JSON to w with the given role label.
//
// The logger is configured with:
//   - global log level set to Debug;
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field holding the fully-qualified function name.
func NewLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger opens path for appending and returns a logger writing to
// it. An empty path selects a "logs" file next to the executable. Stdout is
// kept free for command output, so when the file cannot be opened logs go to
// stderr. The returned closer releases the file.
func NewClientLogger(role, path string) (*Logger, io.Closer) {
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "logs")
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return NewLogger(os.Stderr, role), io.NopCloser(nil)
	}

	return NewLogger(logFile, role), logFile
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithContext attaches the logger to ctx so FromContext can recover it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
