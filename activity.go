package activity

import (
	"context"
	"sync/atomic"

	pkgerrors "github.com/pkg/errors"
)

// State is the lifecycle state of an Activity.
type State int32

const (
	// StateUnopened activities were never enabled; every operation is a
	// no-op.
	StateUnopened State = iota
	// StateOpen activities wait for an outcome.
	StateOpen
	// StateSucceeded is reached with SetSuccess.
	StateSucceeded
	// StateResultSet is reached with SetResult.
	StateResultSet
	// StateOutcomeSet is reached with SetOutcome.
	StateOutcomeSet
	// StateFailed is reached with SetException.
	StateFailed
	// StateDisposed is reached with Dispose.
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "Unopened"
	case StateOpen:
		return "Open"
	case StateSucceeded:
		return "Succeeded"
	case StateResultSet:
		return "ResultSet"
	case StateOutcomeSet:
		return "OutcomeSet"
	case StateFailed:
		return "Failed"
	case StateDisposed:
		return "Disposed"
	default:
		return "Unknown"
	}
}

// Activity is the handle of one activity returned by
// LevelSource.OpenActivity. It is closed exactly once by one of SetSuccess,
// SetResult, SetOutcome or SetException. Dispose closes a still-open
// activity with an Indeterminate outcome, so the idiomatic use is:
//
//	ctx, act := src.Info().OpenActivity(ctx, "Sync")
//	defer act.Dispose()
//	if err := sync(ctx); err != nil {
//		act.SetException(err)
//		return err
//	}
//	act.SetSuccess()
//
// Closing never panics and never returns an error: backend faults are
// reported through LocalLogger.OnInternalException and misuse through
// LocalLogger.OnInvalidUserCode.
type Activity struct {
	log    LocalLogger
	levels ActivityLevels
	lctx   LoggingContext

	name   string
	source string
	props  *PropertyBag
	async  bool
	hidden bool
	callID CallID
	caller CallerInfo

	state int32
}

// withoutLogger returns a copy of a that is unopened. Call stack bookkeeping
// (CallID, async) is kept so that Suspend and Resume stay balanced.
func (a *Activity) withoutLogger() *Activity {
	return &Activity{
		levels: a.levels,
		name:   a.name,
		source: a.source,
		async:  a.async,
		callID: a.callID,
		caller: a.caller,
	}
}

// Name returns the name the activity was opened with.
func (a *Activity) Name() string { return a.name }

// Levels returns the levels captured when the activity opened.
func (a *Activity) Levels() ActivityLevels { return a.levels }

// Context returns the backend context, or nil if none was opened.
func (a *Activity) Context() LoggingContext { return a.lctx }

// CallID returns the identifier of the activity on a CallStack.
func (a *Activity) CallID() CallID { return a.callID }

// IsAsync tells whether Suspend and Resume may be used.
func (a *Activity) IsAsync() bool { return a.async }

// IsHidden tells whether the context was opened only for property
// inheritance, without entry and exit text.
func (a *Activity) IsHidden() bool { return a.hidden }

// State returns the current state.
func (a *Activity) State() State { return State(atomic.LoadInt32(&a.state)) }

// IsEnabled tells whether the activity reached the backend at all.
func (a *Activity) IsEnabled() bool { return a.log != nil }

func (a *Activity) writeEntry() error {
	b, err := a.log.RecordBuilder(RecordOptions{
		Kind:       RecordActivityEntry,
		Level:      a.levels.Default,
		Source:     a.source,
		Properties: a.props,
	}, a.caller, a.lctx)
	if err != nil {
		return err
	}
	defer b.Dispose()
	a.writeDescription(b)
	b.Complete()
	return nil
}

func (a *Activity) writeDescription(b RecordBuilder) {
	b.BeginWriteItem(ItemActivityDescription, TextOptions{})
	b.WriteString(a.name)
	writeProperties(b, a.props)
}

// SetSuccess closes the activity with a Succeeded outcome at the Default
// level.
func (a *Activity) SetSuccess() {
	a.close(StateSucceeded, a.levels.Default, OutcomeSucceeded, nil, func(b RecordBuilder) {
		b.WriteString(OutcomeSucceeded.String())
	})
}

// SetResult closes the activity with a Succeeded outcome carrying result, at
// the Default level.
func (a *Activity) SetResult(result interface{}) {
	a.close(StateResultSet, a.levels.Default, OutcomeSucceeded, nil, func(b RecordBuilder) {
		b.WriteString(OutcomeSucceeded.String() + ": ")
		b.WriteParameter(0, "result", result, ParameterOptions{Mode: ParameterValue})
	})
}

// SetOutcome closes the activity at an explicit level with a message
// template. The outcome is Failed if err is non-nil, Succeeded otherwise.
// The force bit of the opening level is kept.
func (a *Activity) SetOutcome(level Level, err error, template string, args ...interface{}) {
	outcome := OutcomeSucceeded
	if err != nil {
		outcome = OutcomeFailed
	}
	a.close(StateOutcomeSet, level, outcome, err, func(b RecordBuilder) {
		WriteTemplate(b, template, args...)
	})
}

// SetException closes the activity with a Failed outcome at the Failure
// level.
func (a *Activity) SetException(err error) {
	a.close(StateFailed, a.levels.Failure, OutcomeFailed, err, func(b RecordBuilder) {
		b.WriteString(OutcomeFailed.String())
	})
}

// Dispose closes the activity with an Indeterminate outcome at
// LevelWarning if no outcome was set, and marks it disposed. Calling Dispose
// after an outcome, or more than once, is allowed.
func (a *Activity) Dispose() {
	if a.log == nil {
		return
	}
	if atomic.CompareAndSwapInt32(&a.state, int32(StateOpen), int32(StateDisposed)) {
		a.closeOpen(LevelWarning, OutcomeIndeterminate, nil, func(b RecordBuilder) {
			b.WriteString(OutcomeIndeterminate.String())
		})
		return
	}
	atomic.StoreInt32(&a.state, int32(StateDisposed))
}

func (a *Activity) close(target State, level Level, outcome Outcome, err error, body func(RecordBuilder)) {
	if a.log == nil {
		return
	}
	if !atomic.CompareAndSwapInt32(&a.state, int32(StateOpen), int32(target)) {
		reportMisuse(a.log, a.caller, "activity %q is already closed (state %s)", a.name, a.State())
		return
	}
	a.closeOpen(level, outcome, err, body)
}

func (a *Activity) closeOpen(level Level, outcome Outcome, err error, body func(RecordBuilder)) {
	level = CopyForce(a.levels.Default, level)

	if a.lctx == nil {
		if !a.log.IsEnabled(level) {
			return
		}
		safely(a.log, "close activity", func() error {
			return a.writeOutcome(RecordActivityStandalone, level, outcome, err, true, body)
		})
		return
	}

	safely(a.log, "close activity", func() error {
		// The context must be disposed even if writing the outcome fails.
		defer a.lctx.Dispose()
		if !a.log.IsEnabled(level) {
			return nil
		}
		return a.writeOutcome(RecordActivityExit, level, outcome, err, a.hidden, body)
	})
}

func (a *Activity) writeOutcome(kind RecordKind, level Level, outcome Outcome, err error, withDescription bool, body func(RecordBuilder)) error {
	opts := RecordOptions{
		Kind:    kind,
		Level:   level,
		Outcome: outcome,
		Source:  a.source,
	}
	if withDescription {
		opts.Properties = a.props
	}
	b, berr := a.log.RecordBuilder(opts, a.caller, a.lctx)
	if berr != nil {
		return berr
	}
	defer b.Dispose()
	if withDescription {
		a.writeDescription(b)
	}
	b.BeginWriteItem(ItemActivityOutcome, TextOptions{})
	body(b)
	if err != nil {
		b.SetException(err)
	}
	b.Complete()
	return nil
}

// Suspend is called before the activity awaits an operation, on the
// goroutine that currently runs it. The call is popped from the CallStack
// of ctx, if any. Suspend is only valid for asynchronous activities;
// otherwise the misuse is reported and nothing changes.
func (a *Activity) Suspend(ctx context.Context) {
	if !a.checkAsync("Suspend") {
		return
	}
	if s := CallStackFromContext(ctx); s != nil {
		s.Suspend(a.callID)
	}
	if a.lctx == nil || a.State() != StateOpen {
		return
	}
	safely(a.log, "suspend activity", func() error {
		a.log.SuspendActivity(a.lctx, a.caller)
		return nil
	})
}

// Resume is called when the awaited operation completed, on the goroutine
// that continues the activity. The call is pushed onto the CallStack of
// ctx, if any. Resume is only valid for asynchronous activities.
func (a *Activity) Resume(ctx context.Context) {
	if !a.checkAsync("Resume") {
		return
	}
	if s := CallStackFromContext(ctx); s != nil {
		s.Resume(a.callID)
	}
	if a.lctx == nil || a.State() != StateOpen {
		return
	}
	safely(a.log, "resume activity", func() error {
		a.log.ResumeActivity(a.lctx, a.caller)
		return nil
	})
}

func (a *Activity) checkAsync(op string) bool {
	if a.async {
		return true
	}
	reportMisuse(a.log, a.caller, "%s called on activity %q which is not asynchronous", op, a.name)
	return false
}

// Await suspends the activity, runs fn and resumes the activity, also when
// fn panics.
func (a *Activity) Await(ctx context.Context, fn func(ctx context.Context) error) error {
	a.Suspend(ctx)
	defer a.Resume(ctx)
	return fn(ctx)
}

// SetWaitDependency tells the backend what the activity is waiting on.
func (a *Activity) SetWaitDependency(waitedOn interface{}) {
	if a.lctx == nil || a.State() != StateOpen {
		return
	}
	safely(a.log, "set wait dependency", func() error {
		a.log.SetWaitDependency(a.lctx, waitedOn)
		return nil
	})
}

// Err closes the activity from an error return value: SetException if err
// is non-nil, SetSuccess otherwise. It returns err unchanged.
func (a *Activity) Err(err error) error {
	if err != nil {
		a.SetException(err)
		return err
	}
	a.SetSuccess()
	return nil
}

// failOnPanic closes the activity as failed with the recovered value r.
func (a *Activity) failOnPanic(r interface{}) {
	a.SetException(pkgerrors.Wrap(panicError(r), "panic in activity "+a.name))
}
