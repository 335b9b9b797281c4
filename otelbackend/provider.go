package otelbackend

import (
	"context"
	"io"
	"math/rand"
	"sync"

	"github.com/luxas/deklarative/activity/filetest"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
)

// DefaultServiceName is the "service.name" resource attribute unless
// overridden using WithAttributes or WithServiceName.
const DefaultServiceName = "activity"

// Provider returns a new *TracerProviderBuilder instance.
func Provider() *TracerProviderBuilder {
	return &TracerProviderBuilder{}
}

// TracerProviderBuilder is an opinionated builder-pattern constructor for a
// TracerProvider that exports activity spans to stdout, the Jaeger HTTP API
// or an OpenTelemetry Collector over gRPC.
type TracerProviderBuilder struct {
	exporters []tracesdk.SpanExporter
	errs      []error
	tpOpts    []tracesdk.TracerProviderOption
	attrs     []attribute.KeyValue
	sync      bool
}

// WithInsecureOTelExporter registers an exporter to an OpenTelemetry
// Collector on the given address, which defaults to "localhost:4317" if addr
// is empty. The Collector speaks gRPC, hence, don't add any "http(s)://"
// prefix to addr. Additional options can override the default behavior.
func (b *TracerProviderBuilder) WithInsecureOTelExporter(ctx context.Context, addr string, opts ...otlptracegrpc.Option) *TracerProviderBuilder {
	if len(addr) == 0 {
		addr = "localhost:4317"
	}

	// The defaults go first, such that opts can override them.
	opts = append([]otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(addr),
		otlptracegrpc.WithInsecure(),
	}, opts...)
	exp, err := otlptracegrpc.New(ctx, opts...)
	return b.withExporter(exp, err)
}

// WithInsecureJaegerExporter registers an exporter to Jaeger using Jaeger's
// own HTTP API. The default address is "http://localhost:14268/api/traces"
// if addr is left empty.
func (b *TracerProviderBuilder) WithInsecureJaegerExporter(addr string, opts ...jaeger.CollectorEndpointOption) *TracerProviderBuilder {
	var defaultOpts []jaeger.CollectorEndpointOption
	if len(addr) != 0 {
		defaultOpts = append(defaultOpts, jaeger.WithEndpoint(addr))
	}
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(append(defaultOpts, opts...)...))
	return b.withExporter(exp, err)
}

// WithStdoutExporter exports pretty-formatted spans to os.Stdout, or another
// writer if stdouttrace.WithWriter(w) is supplied as an option.
func (b *TracerProviderBuilder) WithStdoutExporter(opts ...stdouttrace.Option) *TracerProviderBuilder {
	opts = append([]stdouttrace.Option{stdouttrace.WithPrettyPrint()}, opts...)
	exp, err := stdouttrace.New(opts...)
	return b.withExporter(exp, err)
}

// WithExporter registers a custom exporter, for example a
// tracetest.InMemoryExporter.
func (b *TracerProviderBuilder) WithExporter(exp tracesdk.SpanExporter) *TracerProviderBuilder {
	return b.withExporter(exp, nil)
}

func (b *TracerProviderBuilder) withExporter(exp tracesdk.SpanExporter, err error) *TracerProviderBuilder {
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.exporters = append(b.exporters, exp)
	return b
}

// WithOptions allows configuring the TracerProvider in various ways, for
// example tracesdk.WithSpanProcessor(sp) or tracesdk.WithSampler(s).
func (b *TracerProviderBuilder) WithOptions(opts ...tracesdk.TracerProviderOption) *TracerProviderBuilder {
	b.tpOpts = append(b.tpOpts, opts...)
	return b
}

// WithAttributes registers more resource attributes. By default semantic
// conventions of version v1.4.0 are used, with "service.name" set to
// DefaultServiceName.
func (b *TracerProviderBuilder) WithAttributes(attrs ...attribute.KeyValue) *TracerProviderBuilder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// WithServiceName is a shorthand for setting the "service.name" attribute.
func (b *TracerProviderBuilder) WithServiceName(name string) *TracerProviderBuilder {
	return b.WithAttributes(semconv.ServiceNameKey.String(name))
}

// Synchronous makes the exporters export in synchronous mode, which is
// useful for avoiding flakes in unit tests. The default mode is batching.
// DO NOT use in production.
func (b *TracerProviderBuilder) Synchronous() *TracerProviderBuilder {
	b.sync = true
	return b
}

// TestJSON enables Synchronous mode, and exports using WithStdoutExporter
// without timestamps to a filetest.Tester file under testdata/ named after
// the current test with a ".json" suffix. Deterministic IDs are used with a
// static seed.
//
// This is useful for unit tests.
func (b *TracerProviderBuilder) TestJSON(g *filetest.Tester) *TracerProviderBuilder {
	return b.Synchronous().WithStdoutExporter(
		stdouttrace.WithWriter(g.Add(g.T.Name()+".json").Writer()),
		stdouttrace.WithoutTimestamps(),
	).DeterministicIDs(1234)
}

// DeterministicIDs enables deterministic trace and span IDs. Useful for unit
// tests. DO NOT use in production.
func (b *TracerProviderBuilder) DeterministicIDs(seed int64) *TracerProviderBuilder {
	return b.WithOptions(tracesdk.WithIDGenerator(deterministicWithSeed(seed)))
}

// Build builds the TracerProvider. Errors from constructing the exporters
// are combined.
func (b *TracerProviderBuilder) Build() (*tracesdk.TracerProvider, error) {
	if err := multierr.Combine(b.errs...); err != nil {
		return nil, err
	}
	// Discard all spans if no exporter is configured.
	if len(b.exporters) == 0 {
		b = b.WithStdoutExporter(stdouttrace.WithWriter(io.Discard))
	}

	// The default attributes go first, such that b.attrs can override them.
	attrs := append([]attribute.KeyValue{
		semconv.ServiceNameKey.String(DefaultServiceName),
	}, b.attrs...)

	tpOpts := []tracesdk.TracerProviderOption{
		tracesdk.WithResource(resource.NewWithAttributes(semconv.SchemaURL, attrs...)),
	}
	for _, exporter := range b.exporters {
		if b.sync {
			tpOpts = append(tpOpts, tracesdk.WithSyncer(exporter))
			continue
		}
		tpOpts = append(tpOpts, tracesdk.WithBatcher(exporter))
	}
	tpOpts = append(tpOpts, b.tpOpts...)

	return tracesdk.NewTracerProvider(tpOpts...), nil
}

// InstallGlobally builds the TracerProvider and registers it globally using
// otel.SetTracerProvider(tp).
func (b *TracerProviderBuilder) InstallGlobally() (*tracesdk.TracerProvider, error) {
	tp, err := b.Build()
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)
	return tp, nil
}

type deterministicIDGenerator struct {
	mu  *sync.Mutex
	rnd *rand.Rand
}

func (g *deterministicIDGenerator) NewSpanID(context.Context, trace.TraceID) trace.SpanID {
	g.mu.Lock()
	defer g.mu.Unlock()
	sid := trace.SpanID{}
	_, _ = g.rnd.Read(sid[:])
	return sid
}

func (g *deterministicIDGenerator) NewIDs(context.Context) (trace.TraceID, trace.SpanID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	tid := trace.TraceID{}
	_, _ = g.rnd.Read(tid[:])
	sid := trace.SpanID{}
	_, _ = g.rnd.Read(sid[:])
	return tid, sid
}

func deterministicWithSeed(seed int64) tracesdk.IDGenerator {
	return &deterministicIDGenerator{
		mu: &sync.Mutex{},
		//nolint:gosec
		rnd: rand.New(rand.NewSource(seed)),
	}
}
