package config

import (
	"context"
	"io"

	"github.com/go-logr/logr"
	"github.com/luxas/deklarative/activity/otelbackend"
	"github.com/luxas/deklarative/activity/zaplog"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/multierr"
)

// Stack is a built tracing stack. Shutdown must be called to flush the
// exported spans.
type Stack struct {
	Backend        *otelbackend.Backend
	TracerProvider *tracesdk.TracerProvider
	Logger         logr.Logger
	// Registry holds the backend metrics, if enabled.
	Registry *prometheus.Registry
}

// Shutdown flushes and stops the TracerProvider.
func (s *Stack) Shutdown(ctx context.Context) error {
	return multierr.Combine(
		s.TracerProvider.ForceFlush(ctx),
		s.TracerProvider.Shutdown(ctx),
	)
}

// Build builds the stack c describes. Logs, and spans of the stdout
// exporter, are written to out.
func (c *Config) Build(ctx context.Context, out io.Writer) (*Stack, error) {
	pb := otelbackend.Provider().WithServiceName(c.Service)
	switch c.Exporter.Kind {
	case ExporterStdout:
		pb = pb.WithStdoutExporter(stdouttrace.WithWriter(out))
	case ExporterJaeger:
		pb = pb.WithInsecureJaegerExporter(c.Exporter.Endpoint)
	case ExporterOTLP:
		pb = pb.WithInsecureOTelExporter(ctx, c.Exporter.Endpoint)
	}
	tp, err := pb.Build()
	if err != nil {
		return nil, err
	}

	s := &Stack{
		TracerProvider: tp,
		Logger:         c.Log.logger(out),
	}
	b := otelbackend.New().
		WithLogger(s.Logger).
		WithTracerProvider(tp).
		WithMinLevel(c.Level).
		RequireTransactionFor(c.TransactionKinds...)
	if c.Disabled {
		b = b.HardDisable()
	}
	if c.Metrics {
		s.Registry = prometheus.NewRegistry()
		b = b.WithMetrics(otelbackend.NewMetricsWithRegistry(s.Registry))
	}
	s.Backend = b.Build()
	return s, nil
}

func (c LogConfig) logger(out io.Writer) logr.Logger {
	switch c.Format {
	case LogStd:
		return otelbackend.StdLogger(out, c.Level)
	case LogJSON:
		return zaplog.NewZap().LogTo(out).LogUpto(c.Level).Build()
	default:
		return otelbackend.HumanReadableLogger(out, c.Level)
	}
}
