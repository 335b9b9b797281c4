package activity

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrUnknownLevel is returned by ParseLevel for names it does not know.
var ErrUnknownLevel = errors.New("unknown level")

// InvariantViolationError describes corrupted tracing state, for example a
// call stack pop that does not match the pushed identifier. It is raised as
// a panic and is never swallowed by the orchestration layer.
type InvariantViolationError struct {
	Op       string
	Expected CallID
	Actual   CallID
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("activity: invariant violation in %s: expected call %v, got %v",
		e.Op, e.Expected, e.Actual)
}

// IsInvariantViolation tells whether err is, or wraps, an
// *InvariantViolationError.
func IsInvariantViolation(err error) bool {
	var target *InvariantViolationError
	return errors.As(err, &target)
}

// safely runs fn, and forwards a returned error or a recovered panic to the
// internal exception channel of log. Invariant violations are re-raised.
func safely(log LocalLogger, op string, fn func() error) {
	defer recoverInternal(&log, op)
	if err := fn(); err != nil {
		reportInternal(log, pkgerrors.Wrap(err, op))
	}
}

// recoverInternal must be deferred directly. It forwards a recovered panic
// to *log, except for invariant violations which keep panicking.
func recoverInternal(log *LocalLogger, op string) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok && IsInvariantViolation(err) {
		panic(r)
	}
	reportInternal(*log, pkgerrors.Wrap(panicError(r), op))
}

func panicError(r interface{}) error {
	if err, ok := r.(error); ok {
		return pkgerrors.WithStack(err)
	}
	return pkgerrors.Errorf("panic: %v", r)
}

// reportInternal forwards err to log. A panicking exception handler is
// dropped; the channel must never feed back into the caller.
func reportInternal(log LocalLogger, err error) {
	if log == nil {
		return
	}
	defer func() { _ = recover() }()
	log.OnInternalException(err)
}

func reportMisuse(log LocalLogger, caller CallerInfo, format string, args ...interface{}) {
	if log == nil {
		return
	}
	defer func() { _ = recover() }()
	log.OnInvalidUserCode(caller, format, args...)
}
