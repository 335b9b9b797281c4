package activity

import (
	"context"

	pkgerrors "github.com/pkg/errors"
)

// LevelSource writes records and opens activities at one level. It decides
// per call whether the backend is contacted at all; when the level is
// disabled no record builder is requested.
//
// LevelSources are obtained from a Source and never fail: faults of the
// backend are reported through its internal exception channel.
type LevelSource struct {
	source *Source
	level  Level
}

// Level returns the level of s, including the force bit.
func (s *LevelSource) Level() Level { return s.level }

// Source returns the Source s belongs to.
func (s *LevelSource) Source() *Source { return s.source }

// IsEnabled tells whether records written through s with ctx would reach
// the backend.
func (s *LevelSource) IsEnabled(ctx context.Context) bool {
	_, enabled := s.source.backendFor(ctx).LocalLoggerAt(ctx, s.level)
	return enabled
}

// Write writes msg verbatim.
func (s *LevelSource) Write(ctx context.Context, msg string) {
	s.write(ctx, nil, func(b RecordBuilder) { b.WriteString(msg) })
}

// WriteError writes msg and attaches err to the record.
func (s *LevelSource) WriteError(ctx context.Context, err error, msg string) {
	s.write(ctx, err, func(b RecordBuilder) { b.WriteString(msg) })
}

// Writef writes a message template, binding args to its holes. See
// WriteTemplate for the template syntax.
func (s *LevelSource) Writef(ctx context.Context, template string, args ...interface{}) {
	s.write(ctx, nil, func(b RecordBuilder) { WriteTemplate(b, template, args...) })
}

// WriteKV writes msg followed by keysAndValues as name=value parameters, in
// the manner of logr.Logger.Info.
func (s *LevelSource) WriteKV(ctx context.Context, msg string, keysAndValues ...interface{}) {
	s.write(ctx, nil, func(b RecordBuilder) { writeKeysAndValues(b, msg, keysAndValues) })
}

func (s *LevelSource) write(ctx context.Context, err error, body func(RecordBuilder)) {
	var log LocalLogger
	defer recoverInternal(&log, "write record")

	log, enabled := s.source.backendFor(ctx).LocalLoggerAt(ctx, s.level)
	if !enabled {
		return
	}
	caller := Caller(2)
	b, berr := log.RecordBuilder(RecordOptions{
		Kind:   RecordMessage,
		Level:  s.level,
		Source: s.source.name,
	}, caller, nil)
	if berr != nil {
		reportInternal(log, pkgerrors.Wrap(berr, "write record"))
		return
	}
	defer b.Dispose()
	b.BeginWriteItem(ItemMessage, TextOptions{})
	body(b)
	if err != nil {
		b.SetException(err)
	}
	b.Complete()
}

// ApplyTransactionRequirements lets the backend decide whether the
// activity described by opts is a transaction boundary. Pass the resulting
// options to OpenActivity with WithOpenOptions.
func (s *LevelSource) ApplyTransactionRequirements(ctx context.Context, opts *OpenActivityOptions) {
	var log LocalLogger
	defer recoverInternal(&log, "apply transaction requirements")

	log = s.source.backendFor(ctx).LocalLogger(ctx)
	policy, ok := log.(TransactionPolicy)
	if !ok {
		return
	}
	if opts.Source == "" {
		opts.Source = s.source.name
	}
	policy.ApplyTransactionRequirements(ctx, opts)
}

// OpenActivity opens an activity called name. The returned context belongs
// to the scope of the activity and must be used for work done inside it.
// The returned *Activity is never nil and must be closed exactly once, most
// commonly with a deferred Dispose after SetSuccess, SetResult, SetOutcome
// or SetException.
//
// The context is only opened when the level of s is enabled, unless the
// activity carries inherited properties (then a hidden context is opened
// so that children inherit them) or the options require a transaction
// (then the level is forced).
func (s *LevelSource) OpenActivity(ctx context.Context, name string, opts ...ActivityOption) (context.Context, *Activity) {
	o := newActivityOptions(opts)
	return s.open(ctx, name, o)
}

func (s *LevelSource) open(ctx context.Context, name string, o *activityOptions) (retCtx context.Context, ret *Activity) {
	openOpts := o.open
	openOpts.Source = s.source.name
	openOpts.Name = name
	if o.properties != nil {
		openOpts.Properties = o.properties
	}

	level := s.level
	if openOpts.Transaction.RequiresTransaction {
		level = level.WithForce()
	}
	act := &Activity{
		name:   name,
		source: s.source.name,
		props:  openOpts.Properties,
		async:  o.async || o.caller.IsAsync(),
		callID: NewCallID(),
		caller: o.caller,
		levels: ActivityLevels{
			Default: level,
			Failure: CopyForce(level, s.source.levels.Failure),
		},
	}
	if o.levels != nil {
		act.levels = ActivityLevels{
			Default: CopyForce(level, o.levels.Default),
			Failure: CopyForce(level, o.levels.Failure),
		}
	}
	empty := act.withoutLogger()

	var log LocalLogger
	retCtx, ret = ctx, empty
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok && IsInvariantViolation(rerr) {
				panic(r)
			}
			reportInternal(log, pkgerrors.Wrap(panicError(r), "open activity"))
			if ret != nil && ret.lctx != nil && !ret.lctx.IsDisposed() {
				safely(log, "dispose context", func() error { ret.lctx.Dispose(); return nil })
			}
			retCtx, ret = ctx, empty
		}
	}()

	backend := s.source.backendFor(ctx)
	log, enabled := backend.LocalLoggerAt(ctx, act.levels.Default)

	switch {
	case openOpts.Transaction.RequiresTransaction:
		if !enabled {
			// Hard disabled: even the forced level is refused.
			return ctx, empty
		}
	case openOpts.Properties.HasInheritedProperty():
		openOpts.Hidden = !enabled
	case !enabled:
		act.log = log
		act.state = int32(StateOpen)
		return ctx, act
	}

	if act.caller.IsNull() {
		act.caller = Caller(2)
		if act.async {
			act.caller = act.caller.Async()
		}
	}

	newCtx, lctx, err := log.OpenActivity(ctx, openOpts, act.caller, act.async)
	if err != nil {
		reportInternal(log, pkgerrors.Wrap(err, "open activity"))
		return ctx, empty
	}
	if lctx == nil {
		return ctx, empty
	}
	if newCtx == nil {
		newCtx = ctx
	}
	act.lctx = lctx
	act.hidden = openOpts.Hidden
	act.state = int32(StateOpen)
	ret = act

	// Opening may have entered a new logical scope with its own logger.
	act.log = backend.LocalLogger(newCtx)
	log = act.log

	if !act.hidden {
		if err := act.writeEntry(); err != nil {
			reportInternal(log, pkgerrors.Wrap(err, "write activity entry"))
			safely(log, "dispose context", func() error { lctx.Dispose(); return nil })
			return ctx, empty
		}
	}
	return newCtx, act
}

// ActivityOption customizes OpenActivity.
type ActivityOption func(*activityOptions)

type activityOptions struct {
	open       OpenActivityOptions
	properties *PropertyBag
	async      bool
	caller     CallerInfo
	levels     *ActivityLevels
}

func newActivityOptions(opts []ActivityOption) *activityOptions {
	o := &activityOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithProperties attaches the properties of v to the activity. See
// PropertiesOf for the accepted values.
func WithProperties(v interface{}) ActivityOption {
	return func(o *activityOptions) {
		o.properties = PropertiesOf(v).Merge(o.properties)
	}
}

// WithProperty attaches one property to the activity.
func WithProperty(name string, value interface{}, opts PropertyOptions) ActivityOption {
	return func(o *activityOptions) {
		if o.properties == nil {
			o.properties = &PropertyBag{}
		}
		o.properties.Set(name, value, opts)
	}
}

// Async marks the activity as asynchronous, which allows Suspend and
// Resume.
func Async() ActivityOption { return func(o *activityOptions) { o.async = true } }

// WithCaller supplies the call site instead of capturing it.
func WithCaller(c CallerInfo) ActivityOption { return func(o *activityOptions) { o.caller = c } }

// WithKind sets OpenActivityOptions.Kind.
func WithKind(kind string) ActivityOption {
	return func(o *activityOptions) { o.open.Kind = kind }
}

// WithActivityLevels overrides the Default and Failure levels of the
// activity. The force bit of the opening level is kept.
func WithActivityLevels(levels ActivityLevels) ActivityOption {
	return func(o *activityOptions) { o.levels = &levels }
}

// WithOpenOptions starts from opts, typically after
// ApplyTransactionRequirements. Source and Name are always overwritten.
func WithOpenOptions(opts OpenActivityOptions) ActivityOption {
	return func(o *activityOptions) { o.open = opts }
}
