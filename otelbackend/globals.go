package otelbackend

import (
	"context"
	"sync"

	"github.com/go-logr/logr"
)

//nolint:gochecknoglobals
var (
	acquireLoggerFunc   AcquireLoggerFunc = DefaultAcquireLoggerFunc
	acquireLoggerFuncMu                   = &sync.Mutex{}

	globalLogger   = logr.Discard()
	globalLoggerMu = &sync.Mutex{}
)

// GetGlobalLogger gets the globally-registered Logger in this package.
// The default Logger implementation is logr.Discard().
func GetGlobalLogger() logr.Logger {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()

	return globalLogger
}

// SetGlobalLogger sets the globally-registered Logger in this package.
func SetGlobalLogger(log logr.Logger) {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()

	globalLogger = log
}

// AcquireLoggerFunc represents a function that can resolve a logr.Logger
// from the given context. Two common implementations are
// DefaultAcquireLoggerFunc and
// "sigs.k8s.io/controller-runtime/pkg/log".FromContext.
type AcquireLoggerFunc func(context.Context) logr.Logger

// DefaultAcquireLoggerFunc is the default AcquireLoggerFunc implementation.
// It resolves the Logger of ctx using logr.FromContext, and falls back to
// GetGlobalLogger().
func DefaultAcquireLoggerFunc(ctx context.Context) logr.Logger {
	if log, err := logr.FromContext(ctx); err == nil {
		return log
	}
	return GetGlobalLogger()
}

// LoggerFromContext executes the globally-registered AcquireLoggerFunc.
// Every activity opened by a Backend stores its Logger, carrying the
// inherited properties as values, in the returned context, such that
// DefaultAcquireLoggerFunc finds it.
func LoggerFromContext(ctx context.Context) logr.Logger {
	acquireLoggerFuncMu.Lock()
	fn := acquireLoggerFunc
	acquireLoggerFuncMu.Unlock()

	return fn(ctx)
}

// SetAcquireLoggerFunc sets the globally-registered AcquireLoggerFunc.
func SetAcquireLoggerFunc(fn AcquireLoggerFunc) {
	acquireLoggerFuncMu.Lock()
	defer acquireLoggerFuncMu.Unlock()

	acquireLoggerFunc = fn
}
