package activity

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/modern-go/reflect2"
)

// The tag key read from struct fields by PropertiesOf.
//
//	type request struct {
//		TenantID string `activity:"tenant,baggage"`
//		UserID   string `activity:"user,inherited"`
//		Token    string `activity:"-"`
//		Raw      []byte `activity:",hidden"`
//	}
const propertyTagKey = "activity"

type fieldMeta struct {
	index   []int
	name    string
	options PropertyOptions
}

type typeMeta struct {
	fields []fieldMeta
}

// propertyTable caches the property layout of struct types keyed by their
// runtime type pointer. Entries are written once and read-only afterwards.
//
//nolint:gochecknoglobals
var propertyTable sync.Map // map[uintptr]*typeMeta

// RegisterProperties registers an explicit layout for the struct type of
// sample, overriding the layout derived from struct tags. options maps Go
// field names to property names and options; fields not in options are
// skipped. It must be called before the first PropertiesOf call for the
// type.
func RegisterProperties(sample interface{}, options map[string]Property) error {
	t := reflect.TypeOf(sample)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("activity: cannot register properties of %T, not a struct", sample)
	}
	meta := &typeMeta{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		p, ok := options[f.Name]
		if !ok || f.PkgPath != "" {
			continue
		}
		name := p.Name
		if name == "" {
			name = f.Name
		}
		meta.fields = append(meta.fields, fieldMeta{index: f.Index, name: name, options: p.Options.normalize()})
	}
	propertyTable.Store(reflect2.RTypeOf(reflect.New(t).Elem().Interface()), meta)
	return nil
}

// PropertiesOf builds a PropertyBag from v. v may be a *PropertyBag, a
// map[string]interface{} (rendered, non-inherited properties sorted by
// key), a struct or a pointer to a struct. Struct layouts are derived
// from `activity` struct tags on first use and cached.
func PropertiesOf(v interface{}) *PropertyBag {
	switch t := v.(type) {
	case nil:
		return nil
	case *PropertyBag:
		return t
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b := &PropertyBag{}
		for _, k := range keys {
			b.Add(k, t[k], RenderedProperty())
		}
		return b
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return NewPropertyBag(Property{Name: "value", Value: v, Options: RenderedProperty()})
	}

	meta := lookupTypeMeta(rv)
	b := &PropertyBag{}
	for _, f := range meta.fields {
		b.Add(f.name, rv.FieldByIndex(f.index).Interface(), f.options)
	}
	return b
}

func lookupTypeMeta(rv reflect.Value) *typeMeta {
	key := reflect2.RTypeOf(rv.Interface())
	if m, ok := propertyTable.Load(key); ok {
		return m.(*typeMeta)
	}
	m, _ := propertyTable.LoadOrStore(key, scanType(rv.Type()))
	return m.(*typeMeta)
}

func scanType(t reflect.Type) *typeMeta {
	meta := &typeMeta{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		tag := f.Tag.Get(propertyTagKey)
		if tag == "-" {
			continue
		}
		parts := strings.Split(tag, ",")
		name := parts[0]
		if name == "" {
			name = f.Name
		}
		opts := RenderedProperty()
		for _, flag := range parts[1:] {
			switch strings.TrimSpace(flag) {
			case "inherited":
				opts.SetInherited(true)
			case "baggage":
				opts.SetBaggage(true)
			case "hidden":
				opts.Rendered = false
			}
		}
		meta.fields = append(meta.fields, fieldMeta{index: f.Index, name: name, options: opts})
	}
	return meta
}
