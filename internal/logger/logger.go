// SPDX-License-Identifier: Apache-2.0

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used across sheet-todo.
//
// Logger embeds zerolog.Logger, so the full zerolog API is available on
// *Logger. Request- or operation-scoped loggers are obtained via FromContext
// and FromRequest.
package logger

import (
	"context"
	"net/http"
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

// NewLogger constructs a JSON logger writing to stdout, labelled with the
// given role (e.g. "basketd"). The caller field records the fully-qualified
// function name under the "func" key.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewClientLogger constructs a logger for the terminal client. Stdout belongs
// to the TUI, so output goes to a "logs" file next to the executable; if the
// file cannot be opened the logger falls back to stderr.
func NewClientLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	var out *os.File
	execPath, err := os.Executable()
	if err == nil {
		out, err = os.OpenFile(filepath.Join(filepath.Dir(execPath), "logs"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	}
	if err != nil || out == nil {
		out = os.Stderr
	}

	l := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context, or the
// global logger if none was attached.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx, or the global logger if
// none was attached. Never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
