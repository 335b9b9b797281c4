package activity

import (
	"context"
	"sync/atomic"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// LoggingContext is the backend state of one open activity. It is created by
// LocalLogger.OpenActivity and owned by the Activity that opened it until
// that activity closes.
type LoggingContext interface {
	// IsAsync is fixed when the context is created.
	IsAsync() bool
	// IsDisposed flips from false to true exactly once.
	IsDisposed() bool
	// SyntheticID is a correlation identifier computed by the backend. It
	// may be empty.
	SyntheticID() string
	// RecycleID disambiguates reused context slots. The core does not
	// interpret it.
	RecycleID() uint64
	// Dispose releases the context. It is called exactly once by the core.
	Dispose()
}

// ContextState implements the bookkeeping part of LoggingContext for
// backends to embed. Dispose marks the state disposed; backends that need
// to do more override it and call MarkDisposed.
type ContextState struct {
	Async    bool
	ID       string
	Recycle  uint64
	disposed int32
}

var _ LoggingContext = &ContextState{}

func (s *ContextState) IsAsync() bool       { return s.Async }
func (s *ContextState) SyntheticID() string { return s.ID }
func (s *ContextState) RecycleID() uint64   { return s.Recycle }
func (s *ContextState) IsDisposed() bool    { return atomic.LoadInt32(&s.disposed) == 1 }
func (s *ContextState) Dispose()            { s.MarkDisposed() }

// MarkDisposed sets the disposed flag and reports whether this call was the
// one that set it.
func (s *ContextState) MarkDisposed() bool {
	return atomic.CompareAndSwapInt32(&s.disposed, 0, 1)
}

// TransactionRequirement is set on OpenActivityOptions by a
// TransactionPolicy.
type TransactionRequirement struct {
	// RequiresTransaction forces the activity to open regardless of the
	// ambient minimum level.
	RequiresTransaction bool
}

// OpenActivityOptions describe an activity to open.
type OpenActivityOptions struct {
	// Source is the name of the opening Source.
	Source string
	// Name is the description of the activity.
	Name string
	// Properties of the activity. Inherited ones propagate to children.
	Properties *PropertyBag
	// Kind is a free-form classification used by transaction policies,
	// e.g. "request".
	Kind string
	// Transaction is filled by ApplyTransactionRequirements.
	Transaction TransactionRequirement
	// Hidden is set by the core when the context is only opened so that
	// children can inherit properties.
	Hidden bool
}

// LocalLogger is the backend logger usable in one ambient context.
// Implementations report their own faults through OnInternalException and
// caller misuse through OnInvalidUserCode; neither may panic.
type LocalLogger interface {
	// IsEnabled must be cheap and free of side effects.
	IsEnabled(level Level) bool
	// OpenActivity allocates a context and returns the context.Context of the
	// new logical scope.
	OpenActivity(ctx context.Context, opts OpenActivityOptions, caller CallerInfo, isAsync bool) (context.Context, LoggingContext, error)
	// RecordBuilder begins one record. lctx is nil for standalone records.
	RecordBuilder(opts RecordOptions, caller CallerInfo, lctx LoggingContext) (RecordBuilder, error)
	ResumeActivity(lctx LoggingContext, caller CallerInfo)
	SuspendActivity(lctx LoggingContext, caller CallerInfo)
	// SetWaitDependency describes what an activity currently waits on.
	SetWaitDependency(lctx LoggingContext, waitedOn interface{})
	OnInternalException(err error)
	OnInvalidUserCode(caller CallerInfo, format string, args ...interface{})
}

//counterfeiter:generate . LocalLogger

// Backend resolves the LocalLogger of an ambient context.
type Backend interface {
	LocalLogger(ctx context.Context) LocalLogger
	// LocalLoggerAt also tells whether level is enabled for that logger.
	LocalLoggerAt(ctx context.Context, level Level) (LocalLogger, bool)
}

// TransactionPolicy is optionally implemented by a LocalLogger to decide
// which activities are transaction boundaries.
type TransactionPolicy interface {
	ApplyTransactionRequirements(ctx context.Context, opts *OpenActivityOptions)
}

// NoopBackend returns the Backend used when nothing is configured. Every
// level is disabled and every operation does nothing.
func NoopBackend() Backend { return noopBackend{} }

type noopBackend struct{}

func (noopBackend) LocalLogger(context.Context) LocalLogger { return noopLogger{} }
func (noopBackend) LocalLoggerAt(context.Context, Level) (LocalLogger, bool) {
	return noopLogger{}, false
}

type noopLogger struct{}

func (noopLogger) IsEnabled(Level) bool { return false }
func (noopLogger) OpenActivity(ctx context.Context, _ OpenActivityOptions, _ CallerInfo, isAsync bool) (context.Context, LoggingContext, error) {
	return ctx, &ContextState{Async: isAsync}, nil
}
func (noopLogger) RecordBuilder(RecordOptions, CallerInfo, LoggingContext) (RecordBuilder, error) {
	return noopRecordBuilder{}, nil
}
func (noopLogger) ResumeActivity(LoggingContext, CallerInfo) {}
func (noopLogger) SuspendActivity(LoggingContext, CallerInfo) {}
func (noopLogger) SetWaitDependency(LoggingContext, interface{}) {}
func (noopLogger) OnInternalException(error) {}
func (noopLogger) OnInvalidUserCode(CallerInfo, string, ...interface{}) {}

type noopRecordBuilder struct{}

func (noopRecordBuilder) BeginWriteItem(ItemKind, TextOptions) {}
func (noopRecordBuilder) WriteParameter(int, string, interface{}, ParameterOptions) {}
func (noopRecordBuilder) WriteString(string) {}
func (noopRecordBuilder) SetException(error) {}
func (noopRecordBuilder) Complete() {}
func (noopRecordBuilder) Dispose() {}
