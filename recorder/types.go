package recorder

import (
	"github.com/luxas/deklarative/activity"
)

// Record is one completed record. YAML tags exist on all types such that
// the recording can be marshalled into a golden file easily.
type Record struct {
	Kind       string      `json:"kind" yaml:"kind"`
	Level      string      `json:"level" yaml:"level"`
	Outcome    string      `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Source     string      `json:"source,omitempty" yaml:"source,omitempty"`
	Context    string      `json:"context,omitempty" yaml:"context,omitempty"`
	Caller     string      `json:"-" yaml:"-"`
	Items      []Item      `json:"items" yaml:"items"`
	Error      string      `json:"error,omitempty" yaml:"error,omitempty"`
	Properties []Attribute `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Text joins the text of all items with " | ".
func (r *Record) Text() string {
	out := ""
	for i, item := range r.Items {
		if i != 0 {
			out += " | "
		}
		out += item.Text
	}
	return out
}

// Property returns the value of the record property called name.
func (r *Record) Property(name string) (interface{}, bool) {
	for _, a := range r.Properties {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// Item is one item of a Record.
type Item struct {
	Kind       string      `json:"kind" yaml:"kind"`
	Hidden     bool        `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Text       string      `json:"text" yaml:"text"`
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Parameter is a parameter written into an Item.
type Parameter struct {
	Index  int         `json:"index" yaml:"index"`
	Name   string      `json:"name" yaml:"name"`
	Value  interface{} `json:"value" yaml:"value"`
	Mode   string      `json:"mode" yaml:"mode"`
	Format string      `json:"format,omitempty" yaml:"format,omitempty"`
}

// Attribute is a named value.
type Attribute struct {
	Name  string      `json:"name" yaml:"name"`
	Value interface{} `json:"value" yaml:"value"`
}

// ContextInfo describes a LoggingContext opened by the Backend.
type ContextInfo struct {
	ID        string      `json:"id" yaml:"id"`
	Name      string      `json:"name" yaml:"name"`
	Parent    string      `json:"parent,omitempty" yaml:"parent,omitempty"`
	Async     bool        `json:"async,omitempty" yaml:"async,omitempty"`
	Hidden    bool        `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Forced    bool        `json:"transaction,omitempty" yaml:"transaction,omitempty"`
	Inherited []Attribute `json:"inherited,omitempty" yaml:"inherited,omitempty"`
	Events    []string    `json:"events,omitempty" yaml:"events,omitempty"`
	Disposals int         `json:"disposals" yaml:"disposals"`
}

func attributesOf(bag *activity.PropertyBag) []Attribute {
	var out []Attribute
	bag.Each(func(p activity.Property) {
		out = append(out, Attribute{Name: p.Name, Value: p.Value})
	})
	return out
}
