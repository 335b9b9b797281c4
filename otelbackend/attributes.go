package otelbackend

import (
	"fmt"
	"reflect"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/luxas/deklarative/activity"
	"github.com/modern-go/reflect2"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	// PropertyAttributePrefix is the prefix of span attributes holding
	// activity properties.
	PropertyAttributePrefix = "activity.property."

	activityAsyncKey       = attribute.Key("activity.async")
	activityHiddenKey      = attribute.Key("activity.hidden")
	activitySourceKey      = attribute.Key("activity.source")
	activityLevelKey       = attribute.Key("activity.level")
	activityOutcomeKey     = attribute.Key("activity.outcome")
	activityMessageKey     = attribute.Key("activity.message")
	activityWaitingOnKey   = attribute.Key("activity.waiting_on")
	activityTransactionKey = attribute.Key("activity.transaction")
)

//nolint:gochecknoglobals
var (
	errorType    = reflect2.TypeOfPtr((*error)(nil)).Elem()
	stringerType = reflect2.TypeOfPtr((*fmt.Stringer)(nil)).Elem()

	// valueAPI encodes complex property values into JSON. Map keys are
	// sorted, such that the output is deterministic.
	valueAPI = buildValueAPI()
)

func buildValueAPI() jsoniter.API {
	api := jsoniter.Config{
		EscapeHTML:             false,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
	api.RegisterExtension(&textExtension{})
	return api
}

// textExtension encodes errors and fmt.Stringers as their text instead of
// their (often empty) exported fields.
type textExtension struct {
	jsoniter.DummyExtension
}

func (e *textExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	if typ.Kind() == reflect.Interface {
		return nil
	}
	switch {
	case typ.Implements(errorType):
		return &textEncoder{typ: typ, text: func(v interface{}) string { return v.(error).Error() }}
	case typ.Implements(stringerType):
		return &textEncoder{typ: typ, text: func(v interface{}) string { return v.(fmt.Stringer).String() }}
	}
	return nil
}

type textEncoder struct {
	typ  reflect2.Type
	text func(interface{}) string
}

func (e *textEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	obj := e.typ.UnsafeIndirect(ptr)
	return e.typ.IsNullable() && reflect2.IsNil(obj)
}

func (e *textEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	obj := e.typ.UnsafeIndirect(ptr)
	if e.typ.IsNullable() && reflect2.IsNil(obj) {
		stream.WriteNil()
		return
	}
	stream.WriteString(e.text(obj))
}

// encodeValue renders v as a string for logs and span attributes.
func encodeValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	}
	out, err := valueAPI.MarshalToString(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return out
}

// attributeValue converts v into a typed attribute where possible, and
// into its JSON text otherwise.
func attributeValue(key string, v interface{}) attribute.KeyValue {
	k := attribute.Key(key)
	switch t := v.(type) {
	case nil:
		return k.String("")
	case string:
		return k.String(t)
	case bool:
		return k.Bool(t)
	case int:
		return k.Int(t)
	case int32:
		return k.Int64(int64(t))
	case int64:
		return k.Int64(t)
	case uint32:
		return k.Int64(int64(t))
	case float32:
		return k.Float64(float64(t))
	case float64:
		return k.Float64(t)
	case time.Duration:
		return k.String(t.String())
	case []string:
		return k.StringSlice(t)
	case []int:
		return k.IntSlice(t)
	case []bool:
		return k.BoolSlice(t)
	default:
		return k.String(encodeValue(v))
	}
}

func propertyAttributes(bag *activity.PropertyBag) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, bag.Len())
	bag.Each(func(p activity.Property) {
		attrs = append(attrs, attributeValue(PropertyAttributePrefix+p.Name, p.Value))
	})
	return attrs
}

func callerAttributes(c activity.CallerInfo) []attribute.KeyValue {
	if c.IsNull() {
		return nil
	}
	return []attribute.KeyValue{
		semconv.CodeFilepathKey.String(c.File),
		semconv.CodeLineNumberKey.Int(c.Line),
		semconv.CodeFunctionKey.String(c.Function),
	}
}
