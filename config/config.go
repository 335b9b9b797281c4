// Package config loads the configuration of an activity tracing stack from
// YAML or TOML, validates it, and builds the otelbackend.Backend it
// describes.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/luxas/deklarative/activity"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a configuration file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Exporter kinds.
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
	ExporterJaeger = "jaeger"
	ExporterOTLP   = "otlp"
)

// Log formats.
const (
	LogJSON    = "json"
	LogConsole = "console"
	LogStd     = "std"
)

// Config describes a tracing stack.
//
//	level: info
//	service: billing
//	transactionKinds: [request]
//	exporter:
//	  kind: otlp
//	  endpoint: collector:4317
//	log:
//	  format: console
//	  level: debug
type Config struct {
	// Level is the minimum level of activities and records. Forced levels
	// pass anyway.
	Level activity.Level `yaml:"level" toml:"level" validate:"level"`
	// Disabled hard-disables the backend; even forced levels are refused.
	Disabled bool `yaml:"disabled" toml:"disabled"`
	// Service is the "service.name" of exported spans.
	Service string `yaml:"service" toml:"service" validate:"required"`
	// TransactionKinds are the activity kinds that are transaction
	// boundaries.
	TransactionKinds []string `yaml:"transactionKinds" toml:"transactionKinds" validate:"dive,required"`
	// Metrics registers Prometheus metrics of the backend.
	Metrics bool `yaml:"metrics" toml:"metrics"`

	Exporter ExporterConfig `yaml:"exporter" toml:"exporter"`
	Log      LogConfig      `yaml:"log" toml:"log"`
}

// ExporterConfig chooses where spans are exported.
type ExporterConfig struct {
	Kind string `yaml:"kind" toml:"kind" validate:"oneof=none stdout jaeger otlp"`
	// Endpoint is the Jaeger collector URL or the host:port of an
	// OpenTelemetry Collector. Empty means the exporter default.
	Endpoint string `yaml:"endpoint" toml:"endpoint"`
}

// LogConfig chooses how records are logged.
type LogConfig struct {
	Format string `yaml:"format" toml:"format" validate:"oneof=json console std"`
	// Level is the minimum level that is logged. It filters records after
	// the backend level did.
	Level activity.Level `yaml:"level" toml:"level" validate:"level"`
}

// Default returns the configuration used for fields a file leaves out.
func Default() *Config {
	return &Config{
		Level:   activity.LevelInfo,
		Service: "activity",
		Exporter: ExporterConfig{
			Kind: ExporterNone,
		},
		Log: LogConfig{
			Format: LogConsole,
			Level:  activity.LevelTrace,
		},
	}
}

// FormatOf tells the Format of a file by its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unknown format of file %q", path)
	}
}

// Load reads, decodes and validates the configuration file at path.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "config %q", path)
	}
	return cfg, nil
}

// Parse decodes data on top of Default() and validates the result. Unknown
// fields are an error.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) != 0 {
			return nil, fmt.Errorf("unknown fields %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field of c. All violations are combined into the
// returned error.
func (c *Config) Validate() error {
	err := newValidator().Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var errs error
	for _, fe := range verrs {
		errs = multierr.Append(errs, fmt.Errorf("%s: invalid value %v (%s)", fe.Namespace(), fe.Value(), rule(fe)))
	}
	return errs
}

func rule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		l, ok := fl.Field().Interface().(activity.Level)
		return ok && l.Severity() >= activity.LevelTrace && l.Severity() <= activity.LevelCritical
	})
	v.RegisterStructValidation(validateExporter, ExporterConfig{})
	return v
}

func validateExporter(sl validator.StructLevel) {
	e, _ := sl.Current().Interface().(ExporterConfig)
	if e.Endpoint == "" {
		return
	}
	var tag string
	switch e.Kind {
	case ExporterJaeger:
		tag = "url"
	case ExporterOTLP:
		tag = "hostname_port"
	default:
		sl.ReportError(e.Endpoint, "Endpoint", "Endpoint", "excluded_unless", "jaeger|otlp")
		return
	}
	if err := sl.Validator().Var(e.Endpoint, tag); err != nil {
		sl.ReportError(e.Endpoint, "Endpoint", "Endpoint", tag, "")
	}
}
