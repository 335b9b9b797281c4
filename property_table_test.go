package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type taggedRequest struct {
	TenantID string `activity:"tenant,baggage"`
	UserID   string `activity:"user,inherited"`
	Token    string `activity:"-"`
	Raw      []byte `activity:",hidden"`
	Count    int
	internal int
}

type registeredRequest struct {
	A string
	B int
}

func TestPropertiesOf_struct(t *testing.T) {
	req := &taggedRequest{TenantID: "acme", UserID: "jane", Token: "secret", Raw: []byte("x"), Count: 2, internal: 1}
	b := PropertiesOf(req)
	assert.Equal(t, []Property{
		{Name: "tenant", Value: "acme", Options: BaggageProperty()},
		{Name: "user", Value: "jane", Options: InheritedProperty()},
		{Name: "Raw", Value: []byte("x"), Options: PropertyOptions{}},
		{Name: "Count", Value: 2, Options: RenderedProperty()},
	}, b.Properties())
	assert.True(t, b.HasInheritedProperty())

	// The cached layout is used for values too.
	assert.Equal(t, 4, PropertiesOf(*req).Len())
}

func TestPropertiesOf_other(t *testing.T) {
	assert.Nil(t, PropertiesOf(nil))
	assert.Nil(t, PropertiesOf((*taggedRequest)(nil)))

	bag := NewPropertyBag()
	assert.Same(t, bag, PropertiesOf(bag))

	m := PropertiesOf(map[string]interface{}{"b": 2, "a": 1})
	assert.Equal(t, []Property{
		{Name: "a", Value: 1, Options: RenderedProperty()},
		{Name: "b", Value: 2, Options: RenderedProperty()},
	}, m.Properties())

	assert.Equal(t, []Property{
		{Name: "value", Value: 42, Options: RenderedProperty()},
	}, PropertiesOf(42).Properties())
}

func TestRegisterProperties(t *testing.T) {
	err := RegisterProperties(&registeredRequest{}, map[string]Property{
		"B": {Name: "count", Options: InheritedProperty()},
	})
	assert.Nil(t, err)
	assert.Equal(t, []Property{
		{Name: "count", Value: 3, Options: InheritedProperty()},
	}, PropertiesOf(registeredRequest{A: "x", B: 3}).Properties())

	assert.NotNil(t, RegisterProperties(42, nil))
}
