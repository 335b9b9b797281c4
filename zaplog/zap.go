// Package zaplog provides a builder-pattern constructor for creating a
// logr.Logger implementation using Zap, with levels named and filtered the
// way activity levels are.
package zaplog

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/luxas/deklarative/activity"
	"github.com/luxas/deklarative/activity/filetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	// Encoder is a symbolic link to zapcore.Encoder.
	Encoder = zapcore.Encoder
	// EncoderConfig is a symbolic link to zapcore.EncoderConfig.
	EncoderConfig = zapcore.EncoderConfig
	// LevelEncoder is a symbolic link to zapcore.LevelEncoder.
	LevelEncoder = zapcore.LevelEncoder

	// EncoderConfigOption represents a function that applies an option to the EncoderConfig.
	EncoderConfigOption func(*EncoderConfig)
	// EncoderCreator represents an Encoder constructor given a populated EncoderConfig.
	EncoderCreator func(EncoderConfig) Encoder
)

// JSONEncoderCreator is a symbolic link to zapcore.NewJSONEncoder.
func JSONEncoderCreator() EncoderCreator { return zapcore.NewJSONEncoder }

// ConsoleEncoderCreator is a symbolic link to zapcore.NewConsoleEncoder.
func ConsoleEncoderCreator() EncoderCreator { return zapcore.NewConsoleEncoder }

// ProductionEncoderConfig is a symbolic link to zap.NewProductionEncoderConfig().
func ProductionEncoderConfig() EncoderConfig { return zap.NewProductionEncoderConfig() }

// DevelopmentEncoderConfig is a symbolic link to zap.NewDevelopmentEncoderConfig().
func DevelopmentEncoderConfig() EncoderConfig { return zap.NewDevelopmentEncoderConfig() }

// ZapLevel is the zap level records of level are logged at through
// logr. Trace and debug map to logr verbosity 2 and 1. Warnings are logged
// at verbosity 0, as logr has no warning level; critical records are
// logged as errors.
//
//	Activity	Zap	Logr
//	trace		-2	V(2).Info
//	debug		-1	V(1).Info
//	info		0	V(0).Info
//	warning		0	V(0).Info
//	error		2	Error
//	critical	2	Error
func ZapLevel(level activity.Level) zapcore.Level {
	switch level.Severity() {
	case activity.LevelTrace:
		return zapcore.Level(-2)
	case activity.LevelDebug:
		return zapcore.DebugLevel
	case activity.LevelInfo, activity.LevelWarning:
		return zapcore.InfoLevel
	case activity.LevelError, activity.LevelCritical:
		return zapcore.ErrorLevel
	default:
		return zapcore.FatalLevel + 1
	}
}

// Verbosity is the logr verbosity records of level are written with, and
// whether logr.Logger.Error shall be used instead of Info.
func Verbosity(level activity.Level) (v int, isError bool) {
	zl := ZapLevel(level)
	if zl >= zapcore.ErrorLevel {
		return 0, true
	}
	return int(-zl), false
}

func levelName(l zapcore.Level) string {
	switch {
	case l < zapcore.DebugLevel:
		return activity.LevelTrace.String()
	case l == zapcore.DebugLevel:
		return activity.LevelDebug.String()
	case l == zapcore.InfoLevel:
		return activity.LevelInfo.String()
	case l == zapcore.WarnLevel:
		return activity.LevelWarning.String()
	case l == zapcore.ErrorLevel:
		return activity.LevelError.String()
	default:
		return activity.LevelCritical.String()
	}
}

// LowercaseLevelEncoder is the default LevelEncoder; it names zap levels
// like activity levels, e.g. "trace" for logr verbosity 2.
func LowercaseLevelEncoder() LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(levelName(l))
	}
}

// CapitalLevelEncoder is the uppercase variant of LowercaseLevelEncoder.
func CapitalLevelEncoder() LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(strings.ToUpper(levelName(l)))
	}
}

// NewZap returns a new *Builder using the default configuration.
func NewZap() *Builder {
	return (&Builder{
		outW:           os.Stdout,
		encoderCfg:     ProductionEncoderConfig(),
		encoderCreator: JSONEncoderCreator(),
		level:          zapcore.InfoLevel,
	}).WithLevelEncoder(LowercaseLevelEncoder())
}

// Builder is a builder-pattern struct for building a logr.Logger
// using go.uber.org/zap.
//
// The default configuration uses the production encoder configuration,
// writes JSON, names levels like activity levels, logs from
// activity.LevelInfo, and logs to os.Stdout.
type Builder struct {
	outW              io.Writer
	encoderCfg        EncoderConfig
	encoderCfgOptions []EncoderConfigOption
	encoderCreator    EncoderCreator
	level             zapcore.Level
	opts              []zap.Option
}

// LogTo specifies where to write logs. A zapcore.WriteSyncer shall be passed
// in if possible, otherwise a no-op Sync method will be used internally. The
// resulting WriteSyncer is locked using zapcore.Lock.
//
// Defaults to os.Stdout.
func (b *Builder) LogTo(w io.Writer) *Builder {
	b.outW = w
	return b
}

// WithEncoderConfig lets the user fine-tune how to encode/format logs.
//
// Defaults to zap.NewProductionEncoderConfig().
func (b *Builder) WithEncoderConfig(cfg EncoderConfig) *Builder {
	b.encoderCfg = cfg
	return b
}

// WithEncoderConfigOption registers a function that mutates the
// EncoderConfig at Build() time.
//
// A call to this function appends to the list of previous values.
func (b *Builder) WithEncoderConfigOption(opts ...EncoderConfigOption) *Builder {
	b.encoderCfgOptions = append(b.encoderCfgOptions, opts...)
	return b
}

// WithEncoderCreator uses a specific EncoderCreator to create the encoder.
//
// Defaults to JSONEncoderCreator().
func (b *Builder) WithEncoderCreator(encoderCreator EncoderCreator) *Builder {
	b.encoderCreator = encoderCreator
	return b
}

// LogUpto specifies the minimum activity level that is output. See
// ZapLevel for how activity levels map to zap and logr levels.
//
// Defaults to activity.LevelInfo.
func (b *Builder) LogUpto(level activity.Level) *Builder {
	b.level = ZapLevel(level)
	return b
}

// WithOptions appends options for configuring zap.
//
// Options by default applied in Build() are:
//
//	zap.AddStacktrace(zap.ErrorLevel)
//	zap.ErrorOutput(sink)
func (b *Builder) WithOptions(opts ...zap.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// Console is a shorthand for:
//
//	WithEncoder(ConsoleEncoderCreator()).
//	HumanFriendlyTime().
//	WithLevelEncoder(CapitalLevelEncoder())
func (b *Builder) Console() *Builder {
	return b.WithEncoderCreator(ConsoleEncoderCreator()).
		HumanFriendlyTime().
		WithLevelEncoder(CapitalLevelEncoder())
}

// Example is a shorthand for
//
//	HumanFriendlyTime().
//	NoTimestamps().
//	NoStacktraceOnError()
func (b *Builder) Example() *Builder {
	return b.HumanFriendlyTime().
		NoTimestamps().
		NoStacktraceOnError()
}

// Test makes the logger log to the golden file named after the running
// test, with the ".log" suffix, registered with g. Stack trace origins are
// filtered before comparison.
func (b *Builder) Test(g *filetest.Tester) *Builder {
	return b.LogTo(g.Add(g.T.Name() + ".log").Filter(FilterStacktraceOrigins).Writer())
}

// NoStacktraceOnError only outputs stack traces from the zap DPanicLevel.
func (b *Builder) NoStacktraceOnError() *Builder {
	return b.WithOptions(zap.AddStacktrace(zap.DPanicLevel))
}

// WithLevelEncoder customizes how the log level is encoded.
//
// The default is LowercaseLevelEncoder.
func (b *Builder) WithLevelEncoder(levelEnc LevelEncoder) *Builder {
	return b.WithEncoderConfigOption(func(ec *EncoderConfig) {
		ec.EncodeLevel = levelEnc
	})
}

// NoTimestamps omits timestamps in the logs, for deterministic output in
// examples and tests.
func (b *Builder) NoTimestamps() *Builder {
	return b.WithEncoderConfigOption(func(ec *EncoderConfig) {
		ec.TimeKey = zapcore.OmitKey
	})
}

// HumanFriendlyTime encodes time.Time as ISO8601 with millisecond precision
// and time.Duration using its String method.
func (b *Builder) HumanFriendlyTime() *Builder {
	return b.WithEncoderConfigOption(func(ec *EncoderConfig) {
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		ec.EncodeDuration = zapcore.StringDurationEncoder
	})
}

// Build builds the logger with the configured options.
func (b *Builder) Build() logr.Logger {
	return zapr.NewLogger(b.BuildZap())
}

// BuildZap builds the underlying *zap.Logger.
func (b *Builder) BuildZap() *zap.Logger {
	sink := zapcore.Lock(zapcore.AddSync(b.outW))

	encCfg := b.encoderCfg
	for _, mutFn := range b.encoderCfgOptions {
		mutFn(&encCfg)
	}
	encoder := b.encoderCreator(encCfg)

	// Defaults are prepended, such that the user can override them.
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
		zap.ErrorOutput(sink),
	}
	opts = append(opts, b.opts...)

	return zap.New(zapcore.NewCore(encoder, sink, b.level), opts...)
}

// FilterStacktraceOrigins removes every line in content that starts with a
// tab, i.e. the file:line origins of a console stack trace, which vary
// across Go versions.
func FilterStacktraceOrigins(content []byte) []byte {
	s := bufio.NewScanner(bytes.NewReader(content))
	out := make([]byte, 0, len(content))
	for s.Scan() {
		line := s.Bytes()
		if bytes.HasPrefix(line, []byte("\t")) {
			continue
		}

		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}
