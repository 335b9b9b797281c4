package otelbackend

import (
	"context"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/luxas/deklarative/activity"
	"go.opentelemetry.io/otel/trace"
)

// Context is the activity.LoggingContext of a Backend.
type Context struct {
	activity.ContextState

	backend   *Backend
	source    string
	span      trace.Span
	ownsSpan  bool
	log       logr.Logger
	inherited *activity.PropertyBag
}

// Span returns the span of the activity. Hidden contexts return the span
// of the enclosing context, which they do not end.
func (c *Context) Span() trace.Span { return c.span }

// Inherited returns the properties inherited by children of the activity.
func (c *Context) Inherited() *activity.PropertyBag { return c.inherited }

// Logger returns the Logger of the activity, carrying its inherited
// properties.
func (c *Context) Logger() logr.Logger { return c.log }

// Dispose ends the span of the activity.
func (c *Context) Dispose() {
	if !c.MarkDisposed() {
		return
	}
	if c.ownsSpan {
		c.span.End()
	}
	c.backend.metrics.disposed()
}

type contextKeyStruct struct{}

//nolint:gochecknoglobals
var contextKey = contextKeyStruct{}

func withContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey, c)
}

func contextFrom(ctx context.Context) *Context {
	c, _ := ctx.Value(contextKey).(*Context)
	return c
}

// ContextFrom returns the innermost open Context of ctx, or nil.
func ContextFrom(ctx context.Context) *Context { return contextFrom(ctx) }

// syntheticID is "<trace id>-<span id>" for valid span contexts, and a
// random UUID otherwise.
func syntheticID(sc trace.SpanContext) string {
	if !sc.IsValid() {
		return uuid.NewString()
	}
	return sc.TraceID().String() + "-" + sc.SpanID().String()
}

func (b *Backend) nextRecycleID() uint64 {
	return atomic.AddUint64(&b.recycle, 1)
}
