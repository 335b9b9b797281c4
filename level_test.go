package activity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_force(t *testing.T) {
	l := LevelInfo.WithForce()
	assert.True(t, l.HasForce())
	assert.Equal(t, LevelInfo, l.Severity())
	assert.Equal(t, LevelInfo, l.WithoutForce())
	assert.False(t, LevelInfo.HasForce())
	assert.Equal(t, l, l.WithForce())
}

func TestCopyForce(t *testing.T) {
	tests := []struct {
		name   string
		source Level
		other  Level
		want   Level
	}{
		{"forced source", LevelDebug.WithForce(), LevelWarning, LevelWarning.WithForce()},
		{"plain source", LevelDebug, LevelWarning, LevelWarning},
		{"plain source clears force of other", LevelDebug, LevelError.WithForce(), LevelError},
		{"both forced", LevelTrace.WithForce(), LevelError.WithForce(), LevelError.WithForce()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CopyForce(tt.source, tt.other))
		})
	}
}

func TestLevel_AtLeast(t *testing.T) {
	assert.True(t, LevelError.AtLeast(LevelWarning))
	assert.True(t, LevelWarning.AtLeast(LevelWarning))
	assert.False(t, LevelInfo.AtLeast(LevelWarning))
	// The force bit never takes part in the comparison.
	assert.False(t, LevelInfo.WithForce().AtLeast(LevelWarning))
	assert.True(t, LevelWarning.AtLeast(LevelWarning.WithForce()))
	assert.False(t, LevelNone.AtLeast(LevelNone))
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "critical+force", LevelCritical.WithForce().String())
	assert.Equal(t, "level(9)", Level(9).String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "trace", want: LevelTrace},
		{in: "WARN", want: LevelWarning},
		{in: " warning ", want: LevelWarning},
		{in: "error+force", want: LevelError.WithForce()},
		{in: "none", want: LevelNone},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownLevel)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_text(t *testing.T) {
	out, err := json.Marshal(map[string]Level{"min": LevelDebug.WithForce()})
	assert.Nil(t, err)
	assert.Equal(t, `{"min":"debug+force"}`, string(out))

	var in map[string]Level
	assert.Nil(t, json.Unmarshal(out, &in))
	assert.Equal(t, LevelDebug.WithForce(), in["min"])

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"min":"loud"}`), &in), ErrUnknownLevel)
}

func TestDefaultActivityLevels(t *testing.T) {
	assert.Equal(t, ActivityLevels{Default: LevelDebug, Failure: LevelWarning}, DefaultActivityLevels())
}
