// Package rtlog provides the structured-logging substrate shared by sema,
// safety, task, and registry. It is a thin, category-tagged wrapper around
// a github.com/joeycumines/logiface logger backed by zerolog, following the
// same "package-level logger, category-tagged entries" shape as a classic
// event-loop runtime's logging layer, but built on the real logging stack
// instead of a hand-rolled sink.
package rtlog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/joeycumines/logiface"
	zerologadapter "github.com/joeycumines/izerolog"
	"github.com/rs/zerolog"
)

// Level is re-exported so callers need not import logiface directly.
type Level = logiface.Level

const (
	LevelTrace   = logiface.LevelTrace
	LevelDebug   = logiface.LevelDebug
	LevelInfo    = logiface.LevelInformational
	LevelWarning = logiface.LevelWarning
	LevelError   = logiface.LevelError
	LevelOff     = logiface.LevelDisabled
)

// Builder is the fluent entry-building type, re-exported from logiface.
type Builder = logiface.Builder[*zerologadapter.Event]

// Logger is a structured logger, tagging every entry it builds with a
// "category" field (scope, task, registry, safety, …) the way an
// event-loop runtime tags entries with their subsystem.
type Logger struct {
	inner *logiface.Logger[*zerologadapter.Event]
}

// New constructs a Logger writing JSON lines to w at the given minimum level.
func New(w io.Writer, level Level) *Logger {
	zl := zerolog.New(w).With().Timestamp().Logger()
	return &Logger{
		inner: zerologadapter.L.New(
			zerologadapter.L.WithZerolog(zl),
			logiface.WithLevel[*zerologadapter.Event](level),
		),
	}
}

// NoOp returns a Logger that discards every entry without allocating.
func NoOp() *Logger {
	return &Logger{inner: zerologadapter.L.New(logiface.WithLevel[*zerologadapter.Event](LevelOff))}
}

// Enabled reports whether the given level would be logged.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && l.inner != nil && l.inner.Level() >= level
}

func (l *Logger) build(level Level, category string) *Builder {
	if l == nil || l.inner == nil {
		return NoOp().build(level, category)
	}
	return l.inner.Build(level).Str("category", category)
}

// Trace begins a trace-level entry tagged with category.
func (l *Logger) Trace(category string) *Builder { return l.build(LevelTrace, category) }

// Debug begins a debug-level entry tagged with category.
func (l *Logger) Debug(category string) *Builder { return l.build(LevelDebug, category) }

// Info begins an info-level entry tagged with category.
func (l *Logger) Info(category string) *Builder { return l.build(LevelInfo, category) }

// Warn begins a warning-level entry tagged with category.
func (l *Logger) Warn(category string) *Builder { return l.build(LevelWarning, category) }

// Error begins an error-level entry tagged with category.
func (l *Logger) Error(category string) *Builder { return l.build(LevelError, category) }

var global struct {
	sync.RWMutex
	logger *Logger
}

var globalInitialized atomic.Bool

// SetGlobal installs the package-level default logger, used by subsystems
// constructed without an explicit *Logger.
func SetGlobal(l *Logger) {
	global.Lock()
	defer global.Unlock()
	global.logger = l
	globalInitialized.Store(true)
}

// Global returns the package-level default logger, defaulting to a logger
// at LevelInfo writing to stderr the first time it's requested.
func Global() *Logger {
	if !globalInitialized.Load() {
		global.Lock()
		if global.logger == nil {
			global.logger = New(os.Stderr, LevelInfo)
		}
		globalInitialized.Store(true)
		global.Unlock()
	}
	global.RLock()
	defer global.RUnlock()
	return global.logger
}

// Or returns l if non-nil, else the package-level default logger. Subsystems
// use this so an explicitly nil *Logger option falls back to Global().
func Or(l *Logger) *Logger {
	if l != nil {
		return l
	}
	return Global()
}
