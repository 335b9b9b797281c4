package otelbackend_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/luxas/deklarative/activity"
	"github.com/luxas/deklarative/activity/otelbackend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func runOnce(t *testing.T, seed int64) trace.SpanContext {
	t.Helper()

	exp := tracetest.NewInMemoryExporter()
	tp, err := otelbackend.Provider().
		WithExporter(exp).
		WithServiceName("provider-test").
		Synchronous().
		DeterministicIDs(seed).
		Build()
	require.NoError(t, err)

	b := otelbackend.New().WithTracerProvider(tp).Build()
	_, act := activity.For("provider").WithBackend(b).Info().OpenActivity(context.Background(), "Build")
	act.SetSuccess()

	spans := exp.GetSpans()
	require.NoError(t, tp.Shutdown(context.Background()))
	require.Len(t, spans, 1)
	assert.Equal(t, "Build", spans[0].Name)
	return spans[0].SpanContext
}

func TestProvider_DeterministicIDs(t *testing.T) {
	first := runOnce(t, 1234)
	second := runOnce(t, 1234)
	assert.Equal(t, first.TraceID(), second.TraceID())
	assert.Equal(t, first.SpanID(), second.SpanID())
	assert.NotEqual(t, first.TraceID(), runOnce(t, 42).TraceID())
}

func TestProvider_resource(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp, err := otelbackend.Provider().WithExporter(exp).Synchronous().Build()
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "span")
	span.End()

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	v, ok := spans[0].Resource.Set().Value("service.name")
	require.True(t, ok)
	assert.Equal(t, otelbackend.DefaultServiceName, v.AsString())
}

func TestProvider_noExporter(t *testing.T) {
	tp, err := otelbackend.Provider().Build()
	require.NoError(t, err)
	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestHumanReadableLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log := otelbackend.HumanReadableLogger(buf, activity.LevelDebug)
	log.V(1).Info("debugging", "key", "value")
	log.V(2).Info("tracing")

	assert.Equal(t, "DEBUG\tdebugging\t{\"key\": \"value\"}\n", buf.String())
}

func TestStdLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log := otelbackend.StdLogger(buf, activity.LevelInfo)
	log.Info("hello", "key", "value")
	log.V(1).Info("hidden")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "value")
	assert.NotContains(t, buf.String(), "hidden")
}
