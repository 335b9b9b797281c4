package activity

import "context"

// Run opens a synchronous activity called name, runs fn inside it and closes
// the activity from the error fn returns. The activity is entered on the
// CallStack of ctx, if the context carries one.
//
// If fn panics, the activity is closed as failed and the panic continues.
func (s *LevelSource) Run(ctx context.Context, name string, fn func(ctx context.Context, act *Activity) error, opts ...ActivityOption) error {
	ctx, act := s.open(ctx, name, newActivityOptions(opts))
	return run(ctx, act, CallStackFromContext(ctx), fn)
}

// RunAsync is like Run, but the activity is asynchronous: fn may use
// act.Await, act.Suspend and act.Resume around awaited operations. A
// CallStack is attached to the context if it does not carry one yet.
func (s *LevelSource) RunAsync(ctx context.Context, name string, fn func(ctx context.Context, act *Activity) error, opts ...ActivityOption) error {
	o := newActivityOptions(opts)
	o.async = true
	stack := CallStackFromContext(ctx)
	if stack == nil {
		ctx, stack = WithCallStack(ctx)
	}
	ctx, act := s.open(ctx, name, o)
	return run(ctx, act, stack, fn)
}

func run(ctx context.Context, act *Activity, stack *CallStack, fn func(context.Context, *Activity) error) (err error) {
	if stack != nil {
		stack.Enter(act.CallID())
		defer stack.Exit(act.CallID())
	}
	defer act.Dispose()
	defer func() {
		if r := recover(); r != nil {
			act.failOnPanic(r)
			panic(r)
		}
	}()
	return act.Err(fn(ctx, act))
}
