package otelbackend

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/luxas/deklarative/activity"
	"github.com/luxas/deklarative/activity/zaplog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	kindKey     = "kind"
	outcomeKey  = "outcome"
	severityKey = "severity"
	errorKey    = "error"
)

// recordBuilder renders one record into a log line, and into span events
// and status.
type recordBuilder struct {
	backend *Backend
	opts    activity.RecordOptions
	caller  activity.CallerInfo
	log     logr.Logger
	span    trace.Span
	// owned is set when span belongs to the activity the record is about.
	owned bool

	texts  []string
	cur    *strings.Builder
	hidden bool
	params []interface{}
	attrs  []attribute.KeyValue
	err    error
	done   bool
}

var _ activity.RecordBuilder = &recordBuilder{}

func (b *recordBuilder) BeginWriteItem(_ activity.ItemKind, opts activity.TextOptions) {
	b.flush()
	b.cur = &strings.Builder{}
	b.hidden = opts.Hidden
}

func (b *recordBuilder) WriteParameter(index int, name string, value interface{}, opts activity.ParameterOptions) {
	if name == "" {
		name = fmt.Sprintf("arg%d", index)
	}
	b.params = append(b.params, name, value)
	b.attrs = append(b.attrs, attributeValue(name, value))

	if b.cur == nil {
		b.cur = &strings.Builder{}
	}
	switch opts.Mode {
	case activity.ParameterValue:
		b.cur.WriteString(formatValue(value, opts.Format))
	case activity.ParameterNameValue:
		if b.cur.Len() > 0 {
			b.cur.WriteByte(' ')
		}
		b.cur.WriteString(name + "=" + formatValue(value, opts.Format))
	case activity.ParameterHidden:
	}
}

func (b *recordBuilder) WriteString(s string) {
	if b.cur == nil {
		b.cur = &strings.Builder{}
	}
	b.cur.WriteString(s)
}

func (b *recordBuilder) SetException(err error) { b.err = err }

func (b *recordBuilder) flush() {
	if b.cur != nil && !b.hidden && b.cur.Len() > 0 {
		b.texts = append(b.texts, b.cur.String())
	}
	b.cur = nil
}

func (b *recordBuilder) Complete() {
	if b.done {
		return
	}
	b.done = true
	b.flush()
	msg := strings.Join(b.texts, " | ")

	b.writeLog(msg)
	b.writeSpan(msg)
	b.backend.metrics.record(b.opts)
}

func (b *recordBuilder) writeLog(msg string) {
	kv := []interface{}{kindKey, b.opts.Kind.String()}
	if b.opts.Outcome != activity.OutcomeNone {
		kv = append(kv, outcomeKey, b.opts.Outcome.String())
	}
	if sev := b.opts.Level.Severity(); sev == activity.LevelWarning || sev == activity.LevelCritical {
		kv = append(kv, severityKey, sev.String())
	}
	kv = append(kv, b.params...)

	v, isError := zaplog.Verbosity(b.opts.Level)
	if isError {
		b.log.Error(b.err, msg, kv...)
		return
	}
	if b.err != nil {
		kv = append(kv, errorKey, b.err.Error())
	}
	b.log.V(v).Info(msg, kv...)
}

func (b *recordBuilder) writeSpan(msg string) {
	if b.span == nil || !b.span.IsRecording() {
		return
	}
	level := activityLevelKey.String(b.opts.Level.Severity().String())

	switch {
	case b.opts.Kind == activity.RecordActivityEntry:
		b.span.SetAttributes(level)
	case b.opts.Kind == activity.RecordActivityExit && b.owned:
		b.span.SetAttributes(activityOutcomeKey.String(b.opts.Outcome.String()))
		switch b.opts.Outcome {
		case activity.OutcomeFailed:
			if b.err != nil {
				b.span.RecordError(b.err)
			}
			b.span.SetStatus(codes.Error, msg)
		case activity.OutcomeSucceeded:
			b.span.SetStatus(codes.Ok, "")
		case activity.OutcomeNone, activity.OutcomeIndeterminate:
		}
	default:
		attrs := append([]attribute.KeyValue{level, activityMessageKey.String(msg)}, b.attrs...)
		attrs = append(attrs, callerAttributes(b.caller)...)
		if b.opts.Outcome != activity.OutcomeNone {
			attrs = append(attrs, activityOutcomeKey.String(b.opts.Outcome.String()))
		}
		if b.err != nil {
			b.span.RecordError(b.err, trace.WithAttributes(attrs...))
			return
		}
		b.span.AddEvent(b.opts.Kind.String(), trace.WithAttributes(attrs...))
	}
}

func (b *recordBuilder) Dispose() {
	b.done = true
}

func formatValue(v interface{}, format string) string {
	if format != "" {
		return fmt.Sprintf("%"+format, v)
	}
	return encodeValue(v)
}
