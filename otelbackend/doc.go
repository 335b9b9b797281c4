/*
Package otelbackend implements activity.Backend on top of go-logr and
OpenTelemetry. Every activity context is an OpenTelemetry span, and every
record is written to the logr.Logger of the ambient context.Context, which
by default is resolved using LoggerFromContext.

	tp, err := otelbackend.Provider().WithStdoutExporter().Build()
	if err != nil {
		return err
	}
	defer func() { _ = tp.Shutdown(ctx) }()

	activity.SetGlobalBackend(otelbackend.New().
		WithLogger(zaplog.NewZap().Console().Build()).
		WithTracerProvider(tp).
		WithMinLevel(activity.LevelInfo).
		Build())

Records are logged with the verbosity given by zaplog.Verbosity. Error and
critical records go through logr.Logger.Error. The record kind, outcome and
parameters are logged as key-value pairs.

Inherited properties of an activity are added to the Logger stored in the
returned context with WithValues, so everything logged within the activity
carries them. Baggage properties are also written to the W3C baggage of the
context. Inject and Extract carry both the span context and the baggage
across process boundaries; on the receiving side, root activities inherit
the baggage members as properties.

Activity contexts that are only opened so that children can inherit
properties (hidden contexts) do not start spans.
*/
package otelbackend
