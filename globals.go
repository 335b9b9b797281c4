package activity

import (
	"context"
	"sync"
)

//nolint:gochecknoglobals
var (
	globalBackend   = NoopBackend()
	globalBackendMu = &sync.Mutex{}
)

// GetGlobalBackend returns the globally-registered Backend. The default
// Backend is NoopBackend(), which disables everything.
func GetGlobalBackend() Backend {
	globalBackendMu.Lock()
	defer globalBackendMu.Unlock()

	return globalBackend
}

// SetGlobalBackend sets the globally-registered Backend. A nil b restores
// NoopBackend().
func SetGlobalBackend(b Backend) {
	globalBackendMu.Lock()
	defer globalBackendMu.Unlock()

	if b == nil {
		b = NoopBackend()
	}
	globalBackend = b
}

type backendKeyStruct struct{}

var backendKey = backendKeyStruct{} //nolint:gochecknoglobals

// ContextWithBackend injects b into a new context descending from parent.
// Sources without an explicit Backend use it for all calls made with that
// context or its descendants.
func ContextWithBackend(parent context.Context, b Backend) context.Context {
	return context.WithValue(parent, backendKey, b)
}

// BackendFromContext returns the Backend of ctx, if any, or
// GetGlobalBackend().
func BackendFromContext(ctx context.Context) Backend {
	if b, ok := ctx.Value(backendKey).(Backend); ok && b != nil {
		return b
	}
	return GetGlobalBackend()
}
