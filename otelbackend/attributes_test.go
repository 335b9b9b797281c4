package otelbackend

import (
	"errors"
	"testing"
	"time"

	"github.com/luxas/deklarative/activity"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

type endpoint struct{ host string }

func (e endpoint) String() string { return "tcp://" + e.host }

type request struct {
	Peer    endpoint          `json:"peer"`
	Err     error             `json:"err"`
	Headers map[string]string `json:"headers"`
}

func Test_encodeValue(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want string
	}{
		{name: "string", v: "plain", want: "plain"},
		{name: "error", v: errors.New("boom"), want: "boom"},
		{name: "stringer", v: endpoint{"localhost"}, want: "tcp://localhost"},
		{name: "int", v: 42, want: "42"},
		{name: "sorted map", v: map[string]int{"b": 2, "a": 1}, want: `{"a":1,"b":2}`},
		{
			name: "nested text",
			v:    request{Peer: endpoint{"db"}, Err: errors.New("timeout"), Headers: map[string]string{"x": "1"}},
			want: `{"peer":"tcp://db","err":"timeout","headers":{"x":"1"}}`,
		},
		{name: "nil error field", v: request{}, want: `{"peer":"tcp://","err":null,"headers":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeValue(tt.v))
		})
	}
}

func Test_attributeValue(t *testing.T) {
	assert.Equal(t, attribute.Int("n", 3), attributeValue("n", 3))
	assert.Equal(t, attribute.Bool("b", true), attributeValue("b", true))
	assert.Equal(t, attribute.String("d", "1.5s"), attributeValue("d", 1500*time.Millisecond))
	assert.Equal(t, attribute.StringSlice("s", []string{"a"}), attributeValue("s", []string{"a"}))
	assert.Equal(t, attribute.String("m", `{"k":"v"}`), attributeValue("m", map[string]string{"k": "v"}))
	assert.Equal(t, attribute.String("nil", ""), attributeValue("nil", nil))
}

func Test_propertyAttributes(t *testing.T) {
	bag := activity.NewPropertyBag(
		activity.Property{Name: "tenant", Value: "acme", Options: activity.BaggageProperty()},
		activity.Property{Name: "retries", Value: 2},
	)
	assert.Equal(t, []attribute.KeyValue{
		attribute.String("activity.property.tenant", "acme"),
		attribute.Int("activity.property.retries", 2),
	}, propertyAttributes(bag))
	assert.Empty(t, propertyAttributes(nil))
}

func Test_callerAttributes(t *testing.T) {
	assert.Nil(t, callerAttributes(activity.NullCaller))
	attrs := callerAttributes(activity.CallerInfo{File: "/src/main.go", Line: 12, Function: "main.run"})
	assert.Equal(t, []attribute.KeyValue{
		attribute.String("code.filepath", "/src/main.go"),
		attribute.Int("code.lineno", 12),
		attribute.String("code.function", "main.run"),
	}, attrs)
}

func Test_escapeBaggageValue(t *testing.T) {
	assert.Equal(t, "acme", escapeBaggageValue("acme"))
	assert.Equal(t, "a%20b%2Cc%3Bd", escapeBaggageValue("a b,c;d"))
}
