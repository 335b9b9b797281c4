package filetest

import (
	"context"
	"testing"

	"github.com/luxas/deklarative/activity"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	// Define g in the beginning of the test and run g.Assert() deferred,
	// such that all records written in the test are verified.
	g := New(t)
	defer g.Assert()

	// Every record completed by b is streamed as YAML into the golden file
	// testdata/sync.yaml.
	b := g.Recorder("sync")
	src := activity.For("demo").WithBackend(b)

	ctx, act := src.Info().OpenActivity(context.Background(), "Sync",
		activity.WithProperty("tenant", "acme", activity.InheritedProperty()))
	src.Info().Writef(ctx, "copied {Count} files", 3)
	act.SetSuccess()
	act.Dispose()

	assert.Nil(t, b.WriteErr())
}

func TestScrub(t *testing.T) {
	f := Scrub(`ctx-[0-9]+`, "ctx-N")
	assert.Equal(t, "parent: ctx-N, id: ctx-N", string(f([]byte("parent: ctx-12, id: ctx-3"))))
}

func TestTarget_Filter(t *testing.T) {
	g := New(t)
	target := g.Add("filtered").
		Filter(Scrub(`\s+`, " ")).
		Filter(Scrub(`^ | $`, ""))
	_, err := target.Writer().Write([]byte("  abc   ss  a  "))
	assert.Nil(t, err)

	content := target.Buffer.Bytes()
	for _, filter := range target.Filters {
		content = filter(content)
	}
	assert.Equal(t, "abc ss a", string(content))
}
