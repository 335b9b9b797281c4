package activity

// PropertyOptions controls how one property is treated.
//
// Baggage implies Inherited. Use SetInherited and SetBaggage to mutate the
// options so that this holds at all times.
type PropertyOptions struct {
	// Rendered properties appear in the human-readable text.
	Rendered bool
	// Inherited properties propagate to child activities and messages.
	Inherited bool
	// Baggage properties cross process boundaries.
	Baggage bool
}

// SetInherited sets Inherited; clearing it also clears Baggage.
func (o *PropertyOptions) SetInherited(v bool) {
	o.Inherited = v
	if !v {
		o.Baggage = false
	}
}

// SetBaggage sets Baggage; setting it also sets Inherited.
func (o *PropertyOptions) SetBaggage(v bool) {
	o.Baggage = v
	if v {
		o.Inherited = true
	}
}

// normalize enforces Baggage => Inherited on literals built without the
// setters.
func (o PropertyOptions) normalize() PropertyOptions {
	if o.Baggage {
		o.Inherited = true
	}
	return o
}

// RenderedProperty are the options of a plain, rendered property.
func RenderedProperty() PropertyOptions { return PropertyOptions{Rendered: true} }

// InheritedProperty are the options of a rendered, inherited property.
func InheritedProperty() PropertyOptions {
	return PropertyOptions{Rendered: true, Inherited: true}
}

// BaggageProperty are the options of a rendered baggage property.
func BaggageProperty() PropertyOptions {
	return PropertyOptions{Rendered: true, Inherited: true, Baggage: true}
}

// Property is one named value of a PropertyBag.
type Property struct {
	Name    string
	Value   interface{}
	Options PropertyOptions
}

// PropertyBag is an ordered collection of properties. The zero value is an
// empty bag ready to use. A nil *PropertyBag is a valid, empty, read-only
// bag.
type PropertyBag struct {
	props        []Property
	hasInherited bool
}

// NewPropertyBag returns a bag holding props, in order.
func NewPropertyBag(props ...Property) *PropertyBag {
	b := &PropertyBag{}
	for _, p := range props {
		b.Set(p.Name, p.Value, p.Options)
	}
	return b
}

// Add appends a property without checking for duplicates.
func (b *PropertyBag) Add(name string, value interface{}, opts PropertyOptions) *PropertyBag {
	opts = opts.normalize()
	b.props = append(b.props, Property{Name: name, Value: value, Options: opts})
	if opts.Inherited {
		b.hasInherited = true
	}
	return b
}

// Set replaces the property called name, keeping its position, or appends
// it if there is none.
func (b *PropertyBag) Set(name string, value interface{}, opts PropertyOptions) *PropertyBag {
	for i := range b.props {
		if b.props[i].Name == name {
			b.props[i] = Property{Name: name, Value: value, Options: opts.normalize()}
			b.recompute()
			return b
		}
	}
	return b.Add(name, value, opts)
}

func (b *PropertyBag) recompute() {
	b.hasInherited = false
	for _, p := range b.props {
		if p.Options.Inherited {
			b.hasInherited = true
			return
		}
	}
}

// HasInheritedProperty tells, without visiting the properties, whether at
// least one property is marked inherited. Values are not considered: a bag
// whose inherited properties are all nil still reports true.
func (b *PropertyBag) HasInheritedProperty() bool { return b != nil && b.hasInherited }

// Len returns the number of properties.
func (b *PropertyBag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.props)
}

// Get returns the property called name.
func (b *PropertyBag) Get(name string) (Property, bool) {
	if b == nil {
		return Property{}, false
	}
	for _, p := range b.props {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Each calls fn for each property in order.
func (b *PropertyBag) Each(fn func(Property)) {
	if b == nil {
		return
	}
	for _, p := range b.props {
		fn(p)
	}
}

// Properties returns a copy of the properties.
func (b *PropertyBag) Properties() []Property {
	if b == nil {
		return nil
	}
	return append([]Property(nil), b.props...)
}

// Inherited returns a new bag with only the inherited properties.
func (b *PropertyBag) Inherited() *PropertyBag {
	out := &PropertyBag{}
	b.Each(func(p Property) {
		if p.Options.Inherited {
			out.Add(p.Name, p.Value, p.Options)
		}
	})
	return out
}

// Merge returns a new bag with the properties of parent followed by those
// of b. Properties of b win on name clashes, at the position of parent.
func (b *PropertyBag) Merge(parent *PropertyBag) *PropertyBag {
	out := &PropertyBag{}
	parent.Each(func(p Property) { out.Add(p.Name, p.Value, p.Options) })
	b.Each(func(p Property) { out.Set(p.Name, p.Value, p.Options) })
	return out
}
