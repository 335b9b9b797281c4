package activity

import (
	"fmt"
	"strings"
)

// Level is the severity of a record or activity. Levels are totally ordered
// from LevelNone to LevelCritical. On top of the severity, a Level carries a
// force bit which asks the backend to emit the record regardless of the
// ambient minimum severity. A backend that is hard-disabled still drops
// forced records.
type Level uint8

const (
	// LevelNone is never enabled.
	LevelNone Level = iota
	// LevelTrace is the most verbose level.
	LevelTrace
	// LevelDebug is meant for diagnostics of internal behavior.
	LevelDebug
	// LevelInfo is meant for normal operational messages.
	LevelInfo
	// LevelWarning is meant for unexpected but handled conditions.
	LevelWarning
	// LevelError is meant for failed operations.
	LevelError
	// LevelCritical is meant for failures that compromise the process.
	LevelCritical
)

// forceBit lives above every severity value.
const forceBit Level = 1 << 6

// WithForce returns l with the force bit set.
func (l Level) WithForce() Level { return l | forceBit }

// WithoutForce returns l with the force bit cleared.
func (l Level) WithoutForce() Level { return l &^ forceBit }

// HasForce tells whether the force bit is set.
func (l Level) HasForce() bool { return l&forceBit != 0 }

// Severity is the level without the force bit. Enablement comparisons must
// always be made on the severity.
func (l Level) Severity() Level { return l.WithoutForce() }

// CopyForce returns other with the force bit of source. The force bit of
// other itself is discarded.
func CopyForce(source, other Level) Level {
	if source.HasForce() {
		return other.WithForce()
	}
	return other.WithoutForce()
}

// AtLeast reports whether the severity of l is greater than or equal to the
// severity of min, ignoring force bits on both sides.
func (l Level) AtLeast(min Level) bool {
	if l.Severity() == LevelNone {
		return false
	}
	return l.Severity() >= min.Severity()
}

var levelNames = [...]string{
	LevelNone:     "none",
	LevelTrace:    "trace",
	LevelDebug:    "debug",
	LevelInfo:     "info",
	LevelWarning:  "warning",
	LevelError:    "error",
	LevelCritical: "critical",
}

// String returns the lowercase name of the severity, with a "+force" suffix
// if the force bit is set.
func (l Level) String() string {
	sev := l.Severity()
	name := fmt.Sprintf("level(%d)", uint8(sev))
	if int(sev) < len(levelNames) {
		name = levelNames[sev]
	}
	if l.HasForce() {
		return name + "+force"
	}
	return name
}

// ParseLevel converts a level name to a Level. Names are case-insensitive,
// "warn" is accepted as an alias of "warning", and a "+force" suffix sets the
// force bit.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	force := false
	if strings.HasSuffix(name, "+force") {
		force = true
		name = strings.TrimSuffix(name, "+force")
	}
	if name == "warn" {
		name = "warning"
	}
	for i, n := range levelNames {
		if n == name {
			l := Level(i)
			if force {
				l = l.WithForce()
			}
			return l, nil
		}
	}
	return LevelNone, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ActivityLevels is the pair of levels an activity is bound to when it
// opens. Outcome operations resolve to Default on success and Failure on
// failure unless the caller supplies a level explicitly.
type ActivityLevels struct {
	Default Level
	Failure Level
}

// DefaultActivityLevels are used by a Source unless WithLevels is given.
func DefaultActivityLevels() ActivityLevels {
	return ActivityLevels{Default: LevelDebug, Failure: LevelWarning}
}
