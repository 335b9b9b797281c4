package activity

import (
	"fmt"
	"io"
	"os"
)

// SourceNamed is an interface that allows types to customize the name of
// the Source created for them with For.
type SourceNamed interface {
	SourceName() string
}

func sourceName(actor interface{}) string {
	switch t := actor.(type) {
	case string:
		return t
	case SourceNamed:
		return t.SourceName()
	case nil:
		return ""
	}

	switch actor {
	case os.Stdin:
		return "os.Stdin"
	case os.Stdout:
		return "os.Stdout"
	case os.Stderr:
		return "os.Stderr"
	case io.Discard:
		return "io.Discard"
	default:
		return fmt.Sprintf("%T", actor)
	}
}

// qualifiedName joins the source name and the activity name, if both are
// set.
func qualifiedName(source, name string) string {
	if len(source) != 0 && len(name) != 0 {
		return source + "." + name
	}
	full := source + name
	if len(full) != 0 {
		return full
	}
	return "<unnamed_activity>"
}
