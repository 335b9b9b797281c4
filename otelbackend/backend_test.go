package otelbackend_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/luxas/deklarative/activity"
	"github.com/luxas/deklarative/activity/otelbackend"
	"github.com/luxas/deklarative/activity/zaplog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type harness struct {
	backend *otelbackend.Backend
	spans   *tracetest.SpanRecorder
	logs    *bytes.Buffer
	metrics *otelbackend.Metrics
	src     *activity.Source
}

func newHarness(minLevel activity.Level, kinds ...string) *harness {
	h := &harness{
		spans:   tracetest.NewSpanRecorder(),
		logs:    &bytes.Buffer{},
		metrics: otelbackend.NewMetricsWithRegistry(prometheus.NewRegistry()),
	}
	tp := tracesdk.NewTracerProvider(tracesdk.WithSpanProcessor(h.spans))
	log := zaplog.NewZap().LogTo(h.logs).Example().LogUpto(activity.LevelTrace).Build()
	h.backend = otelbackend.New().
		WithLogger(log).
		WithTracerProvider(tp).
		WithMinLevel(minLevel).
		WithMetrics(h.metrics).
		RequireTransactionFor(kinds...).
		Build()
	h.src = activity.For("sync").WithBackend(h.backend)
	return h
}

func TestBackend_activitySpan(t *testing.T) {
	h := newHarness(activity.LevelInfo)

	ctx, act := h.src.Info().OpenActivity(context.Background(), "Sync",
		activity.WithProperty("tenant", "acme", activity.InheritedProperty()))
	h.src.Info().Writef(ctx, "copied {Count} files", 3)
	act.SetSuccess()
	act.Dispose()

	spans := h.spans.Ended()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, "Sync", s.Name())
	assert.Equal(t, codes.Ok, s.Status().Code)
	assert.Contains(t, s.Attributes(), attribute.String("activity.property.tenant", "acme"))
	assert.Contains(t, s.Attributes(), attribute.String("activity.source", "sync"))
	assert.Contains(t, s.Attributes(), attribute.String("activity.outcome", "Succeeded"))

	require.Len(t, s.Events(), 1)
	ev := s.Events()[0]
	assert.Equal(t, "message", ev.Name)
	assert.Contains(t, ev.Attributes, attribute.String("activity.message", "copied 3 files"))
	assert.Contains(t, ev.Attributes, attribute.Int("Count", 3))

	logs := h.logs.String()
	assert.Contains(t, logs, `"msg":"Sync tenant=acme"`)
	assert.Contains(t, logs, `"kind":"activity-entry"`)
	assert.Contains(t, logs, `"msg":"copied 3 files","tenant":"acme","kind":"message","Count":3`)
	assert.Contains(t, logs, `"outcome":"Succeeded"`)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.ActivitiesOpened.WithLabelValues("sync")))
	assert.Equal(t, 0.0, testutil.ToFloat64(h.metrics.ActivitiesActive))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Outcomes.WithLabelValues("Succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Records.WithLabelValues("info", "message")))
}

func TestBackend_failure(t *testing.T) {
	h := newHarness(activity.LevelInfo)

	_, act := h.src.Info().OpenActivity(context.Background(), "Sync")
	act.SetException(errors.New("boom"))
	act.Dispose()

	spans := h.spans.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "Failed", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)

	logs := h.logs.String()
	assert.Contains(t, logs, `"severity":"warning"`)
	assert.Contains(t, logs, `"error":"boom"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Outcomes.WithLabelValues("Failed")))
}

func TestBackend_errorLevel(t *testing.T) {
	h := newHarness(activity.LevelInfo)

	h.src.Error().WriteError(context.Background(), errors.New("disk full"), "cannot write")
	assert.Contains(t, h.logs.String(), `{"level":"error","msg":"cannot write","kind":"message"`)
	assert.Contains(t, h.logs.String(), `"error":"disk full"`)
	assert.Empty(t, h.spans.Ended())
}

func TestBackend_disabled(t *testing.T) {
	h := newHarness(activity.LevelWarning)

	ctx, act := h.src.Info().OpenActivity(context.Background(), "Sync")
	assert.Nil(t, act.Context())
	h.src.Info().Write(ctx, "not written")
	act.SetSuccess()
	act.Dispose()

	assert.Empty(t, h.spans.Started())
	assert.Empty(t, h.logs.String())
	assert.Nil(t, otelbackend.ContextFrom(ctx))
}

func TestBackend_hiddenContext(t *testing.T) {
	h := newHarness(activity.LevelWarning)

	ctx, act := h.src.Info().OpenActivity(context.Background(), "Sync",
		activity.WithProperty("tenant", "acme", activity.InheritedProperty()))
	require.True(t, act.IsHidden())
	h.src.Warning().Write(ctx, "careful")
	act.SetSuccess()
	act.Dispose()

	assert.Empty(t, h.spans.Started())
	c := otelbackend.ContextFrom(ctx)
	require.NotNil(t, c)
	assert.True(t, c.IsDisposed())

	assert.Equal(t, `{"level":"info","msg":"careful","tenant":"acme","kind":"message","severity":"warning"}`+"\n", h.logs.String())
}

func TestBackend_childInherits(t *testing.T) {
	h := newHarness(activity.LevelInfo)

	ctx, parent := h.src.Info().OpenActivity(context.Background(), "Sync",
		activity.WithProperty("tenant", "acme", activity.InheritedProperty()))
	cctx, child := h.src.Info().OpenActivity(ctx, "Copy",
		activity.WithProperty("file", "a.txt", activity.RenderedProperty()))

	c := otelbackend.ContextFrom(cctx)
	require.NotNil(t, c)
	p, ok := c.Inherited().Get("tenant")
	require.True(t, ok)
	assert.Equal(t, "acme", p.Value)
	_, ok = c.Inherited().Get("file")
	assert.False(t, ok)

	child.SetSuccess()
	parent.SetSuccess()

	spans := h.spans.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "Copy", spans[0].Name())
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
	assert.Equal(t, spans[0].SpanContext().TraceID().String()+"-"+spans[0].SpanContext().SpanID().String(), c.SyntheticID())
}

func TestBackend_async(t *testing.T) {
	h := newHarness(activity.LevelInfo)

	ctx, act := h.src.Info().OpenActivity(context.Background(), "Fetch", activity.Async())
	act.SetWaitDependency("upstream")
	act.Suspend(ctx)
	act.Resume(ctx)
	act.SetSuccess()

	spans := h.spans.Ended()
	require.Len(t, spans, 1)
	names := make([]string, 0, 2)
	for _, ev := range spans[0].Events() {
		names = append(names, ev.Name)
	}
	assert.Equal(t, []string{"suspended", "resumed"}, names)
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("activity.async", true))
	assert.Contains(t, spans[0].Attributes(), attribute.String("activity.waiting_on", "upstream"))
}

func TestBackend_misuse(t *testing.T) {
	h := newHarness(activity.LevelInfo)

	_, act := h.src.Info().OpenActivity(context.Background(), "Sync")
	act.SetSuccess()
	act.SetSuccess()

	assert.Contains(t, h.logs.String(), `"msg":"invalid use of the activity API"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.InvalidUsage))
}

func TestBackend_transactionKinds(t *testing.T) {
	h := newHarness(activity.LevelError, "request")

	opts := activity.OpenActivityOptions{Kind: "request"}
	h.src.Debug().ApplyTransactionRequirements(context.Background(), &opts)
	require.True(t, opts.Transaction.RequiresTransaction)

	_, act := h.src.Debug().OpenActivity(context.Background(), "Handle", activity.WithOpenOptions(opts))
	act.SetSuccess()

	spans := h.spans.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("activity.transaction", true))
}

func TestBackend_hardDisabled(t *testing.T) {
	tp := tracesdk.NewTracerProvider()
	b := otelbackend.New().WithTracerProvider(tp).HardDisable().Build()
	assert.False(t, b.IsEnabled(activity.LevelCritical.WithForce()))
	assert.False(t, b.IsEnabled(activity.LevelNone))

	b = otelbackend.New().WithTracerProvider(tp).WithMinLevel(activity.LevelError).Build()
	assert.True(t, b.IsEnabled(activity.LevelDebug.WithForce()))
	assert.False(t, b.IsEnabled(activity.LevelWarning))
	assert.True(t, b.IsEnabled(activity.LevelError))
}

func TestBackend_propagation(t *testing.T) {
	h := newHarness(activity.LevelInfo)

	ctx, act := h.src.Info().OpenActivity(context.Background(), "Send",
		activity.WithProperty("tenant", "acme", activity.BaggageProperty()))
	carrier := propagation.MapCarrier{}
	h.backend.Inject(ctx, carrier)
	act.SetSuccess()

	assert.NotEmpty(t, carrier.Get("traceparent"))
	assert.Equal(t, "tenant=acme", carrier.Get("baggage"))

	remote := h.backend.Extract(context.Background(), carrier)
	opts := activity.OpenActivityOptions{}
	h.src.Debug().ApplyTransactionRequirements(remote, &opts)
	assert.True(t, opts.Transaction.RequiresTransaction, "sampled remote parents continue as transactions")

	rctx, handle := h.src.Info().OpenActivity(remote, "Receive")
	h.src.Info().Write(rctx, "received")
	handle.SetSuccess()

	p, ok := otelbackend.ContextFrom(rctx).Inherited().Get("tenant")
	require.True(t, ok)
	assert.Equal(t, "acme", p.Value)
	assert.True(t, p.Options.Baggage)
	assert.Contains(t, h.logs.String(), `"msg":"received","tenant":"acme"`)

	spans := h.spans.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[0].SpanContext().TraceID(), spans[1].SpanContext().TraceID())
	assert.Equal(t, spans[0].SpanContext().SpanID(), spans[1].Parent().SpanID())
	assert.True(t, spans[1].Parent().IsRemote())
}

func TestBackend_loggerFromContext(t *testing.T) {
	logs := &bytes.Buffer{}
	log := zaplog.NewZap().LogTo(logs).Example().Build()
	ctx := logr.NewContext(context.Background(), log)

	b := otelbackend.New().WithTracerProvider(tracesdk.NewTracerProvider()).Build()
	activity.For("ctx").WithBackend(b).Info().Write(ctx, "from the context")

	assert.Contains(t, logs.String(), `"msg":"from the context"`)
}
