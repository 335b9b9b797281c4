// Package filetest verifies that records written by instrumented code match
// golden files under testdata/.
//
// See ExampleTester for how to use this package together with the
// recorder backend.
package filetest

import (
	"bytes"
	"io"
	"regexp"
	"sort"
	"testing"

	"github.com/luxas/deklarative/activity/recorder"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

// New is a wrapper for goldie.New, returning a *Tester. Golden files are by
// default read from testdata/ with the ".yaml" suffix.
func New(t *testing.T, opts ...goldie.Option) *Tester { //nolint:thelper
	opts = append([]goldie.Option{
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".yaml"),
	}, opts...)
	return &Tester{
		G:     goldie.New(t, opts...),
		T:     t,
		Files: make(map[string]*Target),
	}
}

// Tester maps golden file names to write targets.
type Tester struct {
	G *goldie.Goldie
	T *testing.T
	// Files map a golden file name to a target buffer and set of filters.
	Files map[string]*Target
}

// Target buffers content. Filters are applied in order to the buffered
// content before it is compared.
type Target struct {
	Buffer  *bytes.Buffer
	Filters []Filter
}

// Filter transforms content before comparison, similar to an UNIX pipe.
type Filter func([]byte) []byte

// Add registers a new target called name. An existing target with the same
// name is overwritten.
func (g *Tester) Add(name string) *Target {
	b := &Target{
		Buffer: new(bytes.Buffer),
	}
	g.Files[name] = b
	return b
}

// Recorder registers a target called name, and returns a recorder backend
// streaming every completed record into it.
func (g *Tester) Recorder(name string) *recorder.Backend {
	return recorder.New().StreamTo(g.Add(name).Writer())
}

// Filter adds a new filter to the Target.
func (b *Target) Filter(filter Filter) *Target {
	b.Filters = append(b.Filters, filter)
	return b
}

// Writer returns the io.Writer content sources write to.
func (b *Target) Writer() io.Writer { return b.Buffer }

// Scrub returns a Filter replacing all matches of expr with repl, for
// example to hide line numbers or generated identifiers.
func Scrub(expr, repl string) Filter {
	re := regexp.MustCompile(expr)
	return func(b []byte) []byte { return re.ReplaceAll(b, []byte(repl)) }
}

func (g *Tester) do(fn func(*testing.T, string, []byte)) {
	names := make([]string, 0, len(g.Files))
	for name := range g.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a := g.Files[name]
		content := a.Buffer.Bytes()
		for _, filter := range a.Filters {
			content = filter(content)
		}

		name := name
		g.T.Run(name, func(t *testing.T) {
			fn(t, name, content)
		})
	}
}

// Assert verifies that all golden files are up-to-date, each in a sub-test.
//
// If the "-update" flag is passed to "go test", for example as
// "go test . -update", the golden files are updated instead.
func (g *Tester) Assert() { g.do(g.G.Assert) }

// Update writes all buffered content to the golden files.
func (g *Tester) Update() {
	g.do(func(t *testing.T, name string, content []byte) { //nolint:thelper
		assert.Nil(t, g.G.Update(t, name, content))
	})
}
