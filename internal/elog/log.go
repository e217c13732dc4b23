// Package elog provides the small structured-logging surface goecc uses
// internally for cache and curve-arithmetic diagnostics. Modeled on
// drand's common/log package, trimmed to what a library (rather than a
// long-running service) needs: debug-level tracing that stays silent
// unless a caller has opted into a more verbose logger.
package elog

import (
	"sync"

	"go.uber.org/zap"
)

// Logger is the logging surface used throughout goecc.
type Logger interface {
	Debugw(msg string, keyvals ...interface{})
	With(args ...interface{}) Logger
}

type log struct {
	*zap.SugaredLogger
}

func (l *log) With(args ...interface{}) Logger {
	return &log{l.SugaredLogger.With(args...)}
}

var (
	defaultOnce   sync.Once
	defaultLogger Logger
)

// DefaultLogger returns the package-wide default logger, a zap production
// logger at its default level (Info). Debug-level calls made through it are
// therefore silent until a caller installs a more verbose logger via
// SetDefaultLogger.
func DefaultLogger() Logger {
	defaultOnce.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		defaultLogger = &log{l.Sugar()}
	})
	return defaultLogger
}

// SetDefaultLogger overrides the package-wide default logger. Intended for
// callers who want to observe cache-hit and point-arithmetic tracing at
// debug level.
func SetDefaultLogger(l Logger) {
	defaultOnce.Do(func() {})
	defaultLogger = l
}

// New wraps an existing zap logger as a Logger.
func New(zl *zap.Logger) Logger {
	return &log{zl.Sugar()}
}
