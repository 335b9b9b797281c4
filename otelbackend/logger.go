package otelbackend

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/luxas/deklarative/activity"
	"github.com/luxas/deklarative/activity/zaplog"
)

// HumanReadableLogger returns a console logr.Logger using zap, writing to w
// every record from level.
func HumanReadableLogger(w io.Writer, level activity.Level) logr.Logger {
	return zaplog.NewZap().
		LogTo(w).
		Console().
		NoTimestamps().
		NoStacktraceOnError().
		LogUpto(level).
		Build()
}

// StdLogger returns a logr.Logger writing through the standard library log
// package to w, for programs that do not want zap. Records from level are
// written.
func StdLogger(w io.Writer, level activity.Level) logr.Logger {
	v, isError := zaplog.Verbosity(level)
	if isError {
		v = 0
	}
	stdr.SetVerbosity(v)
	return stdr.New(log.New(w, "", 0))
}
