package activity

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type namedActor struct{}

func (namedActor) SourceName() string { return "custom" }

type plainActor struct{}

func Test_sourceName(t *testing.T) {
	tests := []struct {
		actor interface{}
		want  string
	}{
		{"literal", "literal"},
		{namedActor{}, "custom"},
		{&plainActor{}, "*activity.plainActor"},
		{os.Stdout, "os.Stdout"},
		{io.Discard, "io.Discard"},
		{nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, sourceName(tt.actor))
		})
	}
}

func Test_qualifiedName(t *testing.T) {
	assert.Equal(t, "src.op", qualifiedName("src", "op"))
	assert.Equal(t, "src", qualifiedName("src", ""))
	assert.Equal(t, "op", qualifiedName("", "op"))
	assert.Equal(t, "<unnamed_activity>", qualifiedName("", ""))
}

func TestSource_ForLevel(t *testing.T) {
	s := For(namedActor{})
	assert.Equal(t, "custom", s.Name())
	assert.Same(t, s.Info(), s.ForLevel(LevelInfo))
	assert.NotSame(t, s.Info(), s.ForLevel(LevelInfo.WithForce()))
	assert.Equal(t, LevelInfo.WithForce(), s.ForLevel(LevelInfo.WithForce()).Level())
	assert.Equal(t, LevelDebug, s.Default().Level())
	assert.Equal(t, LevelWarning, s.Failure().Level())
	assert.Equal(t, "custom.sub", s.WithName("sub").Name())
	assert.Equal(t, LevelError, s.WithLevels(ActivityLevels{Default: LevelInfo, Failure: LevelError}).Failure().Level())
}
