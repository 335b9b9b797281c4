package otelbackend

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/luxas/deklarative/activity"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/luxas/deklarative/activity/otelbackend"

// New returns a new *Builder. By default, the logger is resolved from the
// context using LoggerFromContext, spans are created using the global
// TracerProvider, every level from activity.LevelInfo is enabled and no
// metrics are registered.
func New() *Builder {
	return &Builder{
		minLevel: activity.LevelInfo,
	}
}

// Builder is a builder-pattern constructor for a Backend.
type Builder struct {
	log           *logr.Logger
	tp            trace.TracerProvider
	minLevel      activity.Level
	disabled      bool
	metrics       *Metrics
	transactional map[string]bool
	propagator    propagation.TextMapPropagator
}

// WithLogger makes every LocalLogger write to log, instead of the Logger
// resolved from the ambient context.
func (b *Builder) WithLogger(log logr.Logger) *Builder {
	b.log = &log
	return b
}

// WithTracerProvider sets the TracerProvider that activity spans are
// created with.
//
// Defaults to otel.GetTracerProvider().
func (b *Builder) WithTracerProvider(tp trace.TracerProvider) *Builder {
	b.tp = tp
	return b
}

// WithMinLevel sets the ambient minimum level. Forced levels pass anyway.
//
// Defaults to activity.LevelInfo.
func (b *Builder) WithMinLevel(level activity.Level) *Builder {
	b.minLevel = level.WithoutForce()
	return b
}

// HardDisable makes the backend refuse every level, forced or not.
func (b *Builder) HardDisable() *Builder {
	b.disabled = true
	return b
}

// WithMetrics records Prometheus metrics in m.
func (b *Builder) WithMetrics(m *Metrics) *Builder {
	b.metrics = m
	return b
}

// RequireTransactionFor marks activities opened with
// activity.WithKind(kind) as transaction boundaries.
func (b *Builder) RequireTransactionFor(kinds ...string) *Builder {
	if b.transactional == nil {
		b.transactional = make(map[string]bool, len(kinds))
	}
	for _, k := range kinds {
		b.transactional[k] = true
	}
	return b
}

// WithPropagator sets the propagator used by Inject and Extract.
//
// Defaults to Propagator().
func (b *Builder) WithPropagator(p propagation.TextMapPropagator) *Builder {
	b.propagator = p
	return b
}

// Build builds the Backend.
func (b *Builder) Build() *Backend {
	tp := b.tp
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	p := b.propagator
	if p == nil {
		p = Propagator()
	}
	transactional := make(map[string]bool, len(b.transactional))
	for k, v := range b.transactional {
		transactional[k] = v
	}
	return &Backend{
		log:           b.log,
		tracer:        tp.Tracer(instrumentationName),
		minLevel:      b.minLevel,
		disabled:      b.disabled,
		metrics:       b.metrics,
		transactional: transactional,
		propagator:    p,
	}
}

// Backend is the activity.Backend built by Builder. It is safe for
// concurrent use.
type Backend struct {
	log           *logr.Logger
	tracer        trace.Tracer
	minLevel      activity.Level
	disabled      bool
	metrics       *Metrics
	transactional map[string]bool
	propagator    propagation.TextMapPropagator

	recycle uint64
}

var _ activity.Backend = &Backend{}

func (b *Backend) LocalLogger(ctx context.Context) activity.LocalLogger {
	parent := contextFrom(ctx)
	var log logr.Logger
	switch {
	case parent != nil:
		log = parent.log
	case b.log != nil:
		log = *b.log
	default:
		log = LoggerFromContext(ctx)
	}
	return &localLogger{
		backend: b,
		log:     log,
		parent:  parent,
		span:    trace.SpanFromContext(ctx),
	}
}

func (b *Backend) LocalLoggerAt(ctx context.Context, level activity.Level) (activity.LocalLogger, bool) {
	log := b.LocalLogger(ctx)
	return log, log.IsEnabled(level)
}

// IsEnabled tells whether records at level are written.
func (b *Backend) IsEnabled(level activity.Level) bool {
	if b.disabled || level == activity.LevelNone {
		return false
	}
	return level.HasForce() || level.AtLeast(b.minLevel)
}

// localLogger is bound to the Logger, innermost Context and span of one
// ambient context.Context.
type localLogger struct {
	backend *Backend
	log     logr.Logger
	parent  *Context
	span    trace.Span
}

var (
	_ activity.LocalLogger       = &localLogger{}
	_ activity.TransactionPolicy = &localLogger{}
)

func (l *localLogger) IsEnabled(level activity.Level) bool { return l.backend.IsEnabled(level) }

// ApplyTransactionRequirements requires a transaction for the configured
// kinds, and for root activities continuing a sampled remote trace.
func (l *localLogger) ApplyTransactionRequirements(ctx context.Context, opts *activity.OpenActivityOptions) {
	if l.backend.transactional[opts.Kind] {
		opts.Transaction.RequiresTransaction = true
		return
	}
	if l.parent == nil {
		sc := trace.SpanContextFromContext(ctx)
		if sc.IsRemote() && sc.IsSampled() {
			opts.Transaction.RequiresTransaction = true
		}
	}
}

func (l *localLogger) OpenActivity(ctx context.Context, opts activity.OpenActivityOptions, caller activity.CallerInfo, isAsync bool) (context.Context, activity.LoggingContext, error) {
	own := opts.Properties.Inherited()
	var parentInherited *activity.PropertyBag
	if l.parent != nil {
		parentInherited = l.parent.inherited
	} else {
		// Root activities inherit what was propagated from the caller.
		remote := propertiesFromBaggage(ctx)
		own = own.Merge(remote)
		parentInherited = remote
	}

	c := &Context{
		ContextState: activity.ContextState{Async: isAsync},
		backend:      l.backend,
		source:       opts.Source,
		inherited:    opts.Properties.Inherited().Merge(parentInherited),
	}

	if opts.Hidden {
		c.span = trace.SpanFromContext(ctx)
	} else {
		attrs := append(callerAttributes(caller), propertyAttributes(opts.Properties)...)
		attrs = append(attrs,
			activitySourceKey.String(opts.Source),
			activityAsyncKey.Bool(isAsync),
			activityTransactionKey.Bool(opts.Transaction.RequiresTransaction),
		)
		ctx, c.span = l.backend.tracer.Start(ctx, opts.Name, trace.WithAttributes(attrs...))
		c.ownsSpan = true
	}
	c.ID = syntheticID(c.span.SpanContext())
	c.Recycle = l.backend.nextRecycleID()

	var err error
	ctx, err = withBaggage(ctx, opts.Properties)
	if err != nil {
		l.OnInternalException(err)
	}

	c.log = l.log.WithValues(keysAndValues(own)...)
	ctx = logr.NewContext(ctx, c.log)
	ctx = withContext(ctx, c)

	l.backend.metrics.opened(opts.Source)
	return ctx, c, nil
}

func (l *localLogger) RecordBuilder(opts activity.RecordOptions, caller activity.CallerInfo, lctx activity.LoggingContext) (activity.RecordBuilder, error) {
	rb := &recordBuilder{
		backend: l.backend,
		opts:    opts,
		caller:  caller,
		log:     l.log,
	}
	if opts.Kind == activity.RecordMessage || lctx == nil {
		// Messages and standalone records are events of the ambient span.
		rb.span = l.span
		return rb, nil
	}
	c, ok := lctx.(*Context)
	if !ok {
		return nil, errors.Errorf("otelbackend: unexpected logging context %T", lctx)
	}
	rb.span = c.span
	rb.owned = c.ownsSpan
	rb.log = c.log
	return rb, nil
}

func (l *localLogger) ResumeActivity(lctx activity.LoggingContext, _ activity.CallerInfo) {
	if c, ok := lctx.(*Context); ok && c.ownsSpan {
		c.span.AddEvent("resumed")
	}
}

func (l *localLogger) SuspendActivity(lctx activity.LoggingContext, _ activity.CallerInfo) {
	if c, ok := lctx.(*Context); ok && c.ownsSpan {
		c.span.AddEvent("suspended")
	}
}

func (l *localLogger) SetWaitDependency(lctx activity.LoggingContext, waitedOn interface{}) {
	if c, ok := lctx.(*Context); ok && c.ownsSpan {
		c.span.SetAttributes(activityWaitingOnKey.String(encodeValue(waitedOn)))
	}
}

func (l *localLogger) OnInternalException(err error) {
	l.backend.metrics.internalError()
	l.log.Error(err, "activity backend fault")
}

func (l *localLogger) OnInvalidUserCode(caller activity.CallerInfo, format string, args ...interface{}) {
	l.backend.metrics.invalidUsage()
	kv := []interface{}{"reason", fmt.Sprintf(format, args...)}
	if !caller.IsNull() {
		kv = append(kv, "caller", caller.ShortFile()+":"+strconv.Itoa(caller.Line))
	}
	l.log.Info("invalid use of the activity API", kv...)
}

// keysAndValues lists the rendered properties of bag as logr key-value
// pairs.
func keysAndValues(bag *activity.PropertyBag) []interface{} {
	kv := make([]interface{}, 0, 2*bag.Len())
	bag.Each(func(p activity.Property) {
		if p.Options.Rendered {
			kv = append(kv, p.Name, p.Value)
		}
	})
	return kv
}
