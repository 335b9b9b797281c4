/*
Package activity is a level-gated activity tracing core. Instrumented code
opens activities (spans) through a Source, closes them with an outcome, and
writes messages in their scope. A pluggable Backend decides what is enabled
and renders the records.

A Source is named after an actor, like the *FooReader implementing Read, and
hands out one LevelSource per level:

	var src = activity.For(&FooReader{})

	func (r *FooReader) Read(ctx context.Context) error {
		ctx, act := src.Info().OpenActivity(ctx, "Read",
			activity.WithProperty("tenant", r.tenant, activity.BaggageProperty()))
		defer act.Dispose()

		src.Debug().Writef(ctx, "reading {Bytes} bytes", len(r.buf))
		return act.Err(r.read(ctx))
	}

Let's talk about levels. Levels are ordered from LevelTrace to
LevelCritical. Each Level carries a force bit, set with WithForce, which asks
the backend to emit a record regardless of its ambient minimum level. A
backend that is hard-disabled still refuses forced records. The force bit of
the opening level is copied, with CopyForce, to whatever level the activity
closes at.

Opening an activity follows three policies, in priority order:

	transaction required  ->  the level is forced; if the backend still
	                          refuses, nothing is opened at all
	inherited properties  ->  a context is opened even if the level is
	                          disabled, so children inherit the properties;
	                          such a context is hidden (no entry/exit text)
	otherwise             ->  a context is opened only if the level is
	                          enabled

Activities are closed exactly once with SetSuccess, SetResult, SetOutcome or
SetException. Dispose, most commonly deferred right after opening, closes a
forgotten activity with an Indeterminate outcome at LevelWarning and always
releases the backend context.

Asynchronous activities, opened with the Async option or RunAsync, may be
suspended and resumed around awaited operations. Which call is current is
tracked by a CallStack carried in the context. A CallStack belongs to one
goroutine; popping anything but the top of the stack panics with an
*InvariantViolationError, as the tracing state can no longer be trusted.

No other failure ever reaches the caller: errors and panics raised by the
backend are reported through LocalLogger.OnInternalException, and misuse like
closing an activity twice through LocalLogger.OnInvalidUserCode.

When no Backend is configured, all calls are cheap no-ops. The otelbackend
package connects the core to go-logr and OpenTelemetry, and the recorder
package records everything in memory for unit tests.
*/
package activity
