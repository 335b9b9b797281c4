package activity

import (
	"strconv"
	"strings"
)

type segment struct {
	literal string
	hole    bool
	name    string
	format  string
	// index is the explicit positional index of a numeric hole, or -1.
	index int
}

// parseTemplate splits a message template into literals and holes.
//
//	"user {User} logged in after {1:ms}ms {{literal}}"
//
// Holes are "{name}" or "{name:format}". A numeric name refers to an
// argument by position; other names bind arguments in order of appearance.
// "{{" and "}}" are escaped braces. An unterminated hole is kept literally.
func parseTemplate(template string) []segment {
	var (
		segs []segment
		lit  strings.Builder
	)
	flush := func() {
		if lit.Len() != 0 {
			segs = append(segs, segment{literal: lit.String(), index: -1})
			lit.Reset()
		}
	}
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			lit.WriteByte('{')
			i++
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			lit.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				lit.WriteString(template[i:])
				i = len(template)
				continue
			}
			body := template[i+1 : i+1+end]
			flush()
			segs = append(segs, newHole(body))
			i += end + 1
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return segs
}

func newHole(body string) segment {
	s := segment{hole: true, name: body, index: -1}
	if colon := strings.IndexByte(body, ':'); colon >= 0 {
		s.name, s.format = body[:colon], body[colon+1:]
	}
	s.name = strings.TrimSpace(s.name)
	if n, err := strconv.Atoi(s.name); err == nil && n >= 0 {
		s.index = n
	}
	return s
}

// WriteTemplate writes template into b, binding args to the holes of the
// template as ParameterValue parameters. Holes without a matching argument
// are written literally; arguments without a hole are written as hidden
// parameters so that structured backends still receive them.
func WriteTemplate(b RecordBuilder, template string, args ...interface{}) {
	used := make([]bool, len(args))
	next := 0
	for _, s := range parseTemplate(template) {
		if !s.hole {
			b.WriteString(s.literal)
			continue
		}
		idx := s.index
		if idx < 0 {
			idx = next
			next++
		}
		if idx >= len(args) {
			b.WriteString("{" + s.name + "}")
			continue
		}
		used[idx] = true
		b.WriteParameter(idx, s.name, args[idx], ParameterOptions{Mode: ParameterValue, Format: s.format})
	}
	for i, u := range used {
		if !u {
			b.WriteParameter(i, "arg"+strconv.Itoa(i), args[i], ParameterOptions{Mode: ParameterHidden})
		}
	}
}

// writeKeysAndValues writes msg followed by keysAndValues pairs as
// ParameterNameValue parameters. A trailing key without value, or a
// non-string key, is written hidden under a generated name.
func writeKeysAndValues(b RecordBuilder, msg string, keysAndValues []interface{}) {
	b.WriteString(msg)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok || i+1 >= len(keysAndValues) {
			b.WriteParameter(i/2, "arg"+strconv.Itoa(i/2), keysAndValues[i], ParameterOptions{Mode: ParameterHidden})
			continue
		}
		b.WriteParameter(i/2, key, keysAndValues[i+1], ParameterOptions{Mode: ParameterNameValue})
	}
}

// writeProperties writes the properties of bag as parameters; properties
// that are not rendered are written hidden.
func writeProperties(b RecordBuilder, bag *PropertyBag) {
	i := 0
	bag.Each(func(p Property) {
		mode := ParameterNameValue
		if !p.Options.Rendered {
			mode = ParameterHidden
		}
		b.WriteParameter(i, p.Name, p.Value, ParameterOptions{Mode: mode})
		i++
	})
}
