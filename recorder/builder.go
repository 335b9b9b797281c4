package recorder

import (
	"fmt"
	"strings"

	"github.com/luxas/deklarative/activity"
)

type recordBuilder struct {
	backend   *Backend
	record    *Record
	text      strings.Builder
	item      *Item
	completed bool
	disposed  bool
}

func (b *recordBuilder) BeginWriteItem(kind activity.ItemKind, opts activity.TextOptions) {
	b.flush()
	b.item = &Item{Kind: kind.String(), Hidden: opts.Hidden}
}

func (b *recordBuilder) WriteParameter(index int, name string, value interface{}, opts activity.ParameterOptions) {
	if b.item == nil {
		b.BeginWriteItem(activity.ItemMessage, activity.TextOptions{})
	}
	b.item.Parameters = append(b.item.Parameters, Parameter{
		Index:  index,
		Name:   name,
		Value:  value,
		Mode:   opts.Mode.String(),
		Format: opts.Format,
	})
	switch opts.Mode {
	case activity.ParameterValue:
		b.text.WriteString(formatValue(value, opts.Format))
	case activity.ParameterNameValue:
		if b.text.Len() != 0 {
			b.text.WriteByte(' ')
		}
		b.text.WriteString(name + "=" + formatValue(value, opts.Format))
	case activity.ParameterHidden:
	}
}

func formatValue(value interface{}, format string) string {
	if format == "" {
		return fmt.Sprint(value)
	}
	return fmt.Sprintf("%"+format, value)
}

func (b *recordBuilder) WriteString(s string) {
	if b.item == nil {
		b.BeginWriteItem(activity.ItemMessage, activity.TextOptions{})
	}
	b.text.WriteString(s)
}

func (b *recordBuilder) SetException(err error) {
	if err != nil {
		b.record.Error = err.Error()
	}
}

func (b *recordBuilder) flush() {
	if b.item == nil {
		return
	}
	b.item.Text = b.text.String()
	b.text.Reset()
	b.record.Items = append(b.record.Items, *b.item)
	b.item = nil
}

func (b *recordBuilder) Complete() {
	if b.completed || b.disposed {
		return
	}
	b.completed = true
	b.flush()
	b.backend.commit(b.record)
}

// Dispose without Complete abandons the record.
func (b *recordBuilder) Dispose() { b.disposed = true }
