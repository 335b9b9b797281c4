package activity

import (
	"context"
	"sync"
)

// Source is the entry point of instrumented code. It is named after an
// actor and hands out one LevelSource per level. A Source is immutable; the
// With* methods return modified copies.
//
//	var src = activity.For(&FooReader{})
//
//	func (r *FooReader) Read(ctx context.Context) (err error) {
//		ctx, act := src.Info().OpenActivity(ctx, "Read")
//		defer act.Dispose()
//		...
//	}
type Source struct {
	name    string
	backend Backend
	levels  ActivityLevels

	once    *sync.Once
	sources *[2 * levelCount]*LevelSource
}

const levelCount = int(LevelCritical) + 1

// For returns a new Source named after actor.
//
// If actor implements SourceNamed, that name is used. If actor is a string,
// it is used as-is. If actor is os.Std{in,out,err} or io.Discard, those
// human-friendly names are used. Otherwise the type name is resolved by
// fmt.Sprintf("%T", actor).
func For(actor interface{}) *Source {
	return newSource(sourceName(actor), nil, DefaultActivityLevels())
}

func newSource(name string, b Backend, levels ActivityLevels) *Source {
	return &Source{
		name:    name,
		backend: b,
		levels:  levels,
		once:    &sync.Once{},
		sources: &[2 * levelCount]*LevelSource{},
	}
}

// Name returns the name of the source.
func (s *Source) Name() string { return s.name }

// Levels returns the ActivityLevels of the source.
func (s *Source) Levels() ActivityLevels { return s.levels }

// WithBackend returns a copy of s bound to b. Without a bound Backend, the
// Backend is resolved per call with BackendFromContext.
func (s *Source) WithBackend(b Backend) *Source { return newSource(s.name, b, s.levels) }

// WithLevels returns a copy of s using levels for Default and Failure.
func (s *Source) WithLevels(levels ActivityLevels) *Source {
	return newSource(s.name, s.backend, levels)
}

// WithName returns a copy of s with the name of the source extended by
// name.
func (s *Source) WithName(name string) *Source {
	return newSource(qualifiedName(s.name, name), s.backend, s.levels)
}

func (s *Source) backendFor(ctx context.Context) Backend {
	if s.backend != nil {
		return s.backend
	}
	return BackendFromContext(ctx)
}

func (s *Source) init() {
	for i := range s.sources {
		l := Level(i % levelCount)
		if i >= levelCount {
			l = l.WithForce()
		}
		s.sources[i] = &LevelSource{source: s, level: l}
	}
}

// ForLevel returns the LevelSource of level. The same instance is returned
// for the same level on every call.
func (s *Source) ForLevel(level Level) *LevelSource {
	s.once.Do(s.init)
	idx := int(level.Severity())
	if idx >= levelCount {
		idx = levelCount - 1
	}
	if level.HasForce() {
		idx += levelCount
	}
	return s.sources[idx]
}

// Trace returns the LevelSource for LevelTrace.
func (s *Source) Trace() *LevelSource { return s.ForLevel(LevelTrace) }

// Debug returns the LevelSource for LevelDebug.
func (s *Source) Debug() *LevelSource { return s.ForLevel(LevelDebug) }

// Info returns the LevelSource for LevelInfo.
func (s *Source) Info() *LevelSource { return s.ForLevel(LevelInfo) }

// Warning returns the LevelSource for LevelWarning.
func (s *Source) Warning() *LevelSource { return s.ForLevel(LevelWarning) }

// Error returns the LevelSource for LevelError.
func (s *Source) Error() *LevelSource { return s.ForLevel(LevelError) }

// Critical returns the LevelSource for LevelCritical.
func (s *Source) Critical() *LevelSource { return s.ForLevel(LevelCritical) }

// Default returns the LevelSource of the Default level of the source.
func (s *Source) Default() *LevelSource { return s.ForLevel(s.levels.Default) }

// Failure returns the LevelSource of the Failure level of the source.
func (s *Source) Failure() *LevelSource { return s.ForLevel(s.levels.Failure) }
