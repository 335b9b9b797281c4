package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/luxas/deklarative/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func wantStack() *Config {
	return &Config{
		Level:            activity.LevelDebug,
		Service:          "billing",
		TransactionKinds: []string{"request"},
		Metrics:          true,
		Exporter:         ExporterConfig{Kind: ExporterOTLP, Endpoint: "collector:4317"},
		Log:              LogConfig{Format: LogJSON, Level: activity.LevelInfo},
	}
}

func TestLoad(t *testing.T) {
	for _, path := range []string{"testdata/stack.yaml", "testdata/stack.toml"} {
		t.Run(path, func(t *testing.T) {
			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, wantStack(), cfg)
		})
	}
}

func TestLoad_unknownFormat(t *testing.T) {
	_, err := Load("testdata/stack.json")
	assert.EqualError(t, err, `config: unknown format of file "testdata/stack.json"`)
}

func TestParse_defaults(t *testing.T) {
	cfg, err := Parse([]byte("service: billing\n"), FormatYAML)
	require.NoError(t, err)
	want := Default()
	want.Service = "billing"
	assert.Equal(t, want, cfg)
}

func TestParse_unknownFields(t *testing.T) {
	_, err := Parse([]byte("levle: info\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte("levle = \"info\"\n"), FormatTOML)
	assert.EqualError(t, err, "unknown fields [levle]")
}

func TestParse_forcedLevel(t *testing.T) {
	cfg, err := Parse([]byte("level: warning+force\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, activity.LevelWarning.WithForce(), cfg.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
		want []string
	}{
		{
			name: "valid",
			mut:  func(*Config) {},
		},
		{
			name: "no level",
			mut:  func(c *Config) { c.Level = activity.LevelNone },
			want: []string{"Config.Level: invalid value none (level)"},
		},
		{
			name: "several",
			mut: func(c *Config) {
				c.Service = ""
				c.Exporter.Kind = "zipkin"
				c.Log.Format = "xml"
			},
			want: []string{
				"Config.Service: invalid value  (required)",
				"Config.Exporter.Kind: invalid value zipkin (oneof=none stdout jaeger otlp)",
				"Config.Log.Format: invalid value xml (oneof=json console std)",
			},
		},
		{
			name: "empty transaction kind",
			mut:  func(c *Config) { c.TransactionKinds = []string{"request", ""} },
			want: []string{"Config.TransactionKinds[1]: invalid value  (required)"},
		},
		{
			name: "jaeger endpoint is a url",
			mut: func(c *Config) {
				c.Exporter = ExporterConfig{Kind: ExporterJaeger, Endpoint: "collector:4317"}
			},
			want: []string{"Config.Exporter.Endpoint: invalid value collector:4317 (url)"},
		},
		{
			name: "endpoint without exporter",
			mut: func(c *Config) {
				c.Exporter = ExporterConfig{Kind: ExporterStdout, Endpoint: "collector:4317"}
			},
			want: []string{"Config.Exporter.Endpoint: invalid value collector:4317 (excluded_unless=jaeger|otlp)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mut(cfg)
			err := cfg.Validate()
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}
			var got []string
			for _, e := range multierr.Errors(err) {
				got = append(got, e.Error())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Build(t *testing.T) {
	cfg := Default()
	cfg.Exporter.Kind = ExporterStdout
	cfg.Metrics = true
	cfg.Level = activity.LevelError

	out := &bytes.Buffer{}
	s, err := cfg.Build(context.Background(), out)
	require.NoError(t, err)
	require.NotNil(t, s.Registry)

	src := activity.For("build").WithBackend(s.Backend)
	_, act := src.Info().OpenActivity(context.Background(), "Skipped")
	act.SetSuccess()
	_, act = src.Error().OpenActivity(context.Background(), "Exported")
	act.SetSuccess()
	require.NoError(t, s.Shutdown(context.Background()))

	assert.Contains(t, out.String(), "ERROR\tExported")
	assert.Contains(t, out.String(), `"Name": "Exported"`)
	assert.NotContains(t, out.String(), "Skipped")

	families, err := s.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestConfig_Build_disabled(t *testing.T) {
	cfg := Default()
	cfg.Disabled = true
	s, err := cfg.Build(context.Background(), &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, s.Backend.IsEnabled(activity.LevelCritical.WithForce()))
	assert.Nil(t, s.Registry)
}
