// Package recorder provides an in-memory activity.Backend that captures every
// context, record and fault, such that the behavior of instrumented code can
// be unit tested. Completed records can also be streamed as YAML to an
// io.Writer and compared with golden files, for example using the filetest
// package.
package recorder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/luxas/deklarative/activity"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

// New returns a new Backend where every level from LevelTrace is enabled.
func New() *Backend {
	return &Backend{
		minLevel: activity.LevelTrace,
		mu:       &sync.Mutex{},
	}
}

// Backend records everything in memory. It is safe for concurrent use.
type Backend struct {
	minLevel      activity.Level
	disabled      bool
	transactional map[string]bool
	failOpen      error
	failRecord    error
	ws            zapcore.WriteSyncer

	mu        *sync.Mutex
	contexts  []*ContextInfo
	records   []*Record
	internal  []error
	misuse    []string
	nextID    uint64
	writeErrs error
}

var _ activity.Backend = &Backend{}

// WithMinLevel sets the ambient minimum level. Forced levels pass anyway.
func (b *Backend) WithMinLevel(level activity.Level) *Backend {
	b.minLevel = level.WithoutForce()
	return b
}

// HardDisable makes the backend refuse every level, forced or not.
func (b *Backend) HardDisable() *Backend {
	b.disabled = true
	return b
}

// RequireTransactionFor marks activities opened with
// activity.WithKind(kind) as transaction boundaries.
func (b *Backend) RequireTransactionFor(kinds ...string) *Backend {
	if b.transactional == nil {
		b.transactional = make(map[string]bool, len(kinds))
	}
	for _, k := range kinds {
		b.transactional[k] = true
	}
	return b
}

// FailOpenWith makes OpenActivity fail with err.
func (b *Backend) FailOpenWith(err error) *Backend {
	b.failOpen = err
	return b
}

// FailRecordsWith makes RecordBuilder fail with err.
func (b *Backend) FailRecordsWith(err error) *Backend {
	b.failRecord = err
	return b
}

// StreamTo writes every completed record as a YAML list item to w. Writer
// w can optionally implement the zapcore.WriteSyncer interface; if so it'll
// be used. Each item is preceded by a header comment:
//
//	# activity-entry Sync
//	- {record data}
func (b *Backend) StreamTo(w io.Writer) *Backend {
	b.ws = zapcore.Lock(zapcore.AddSync(w))
	return b
}

func (b *Backend) LocalLogger(ctx context.Context) activity.LocalLogger {
	return &Logger{backend: b, parent: contextFrom(ctx)}
}

func (b *Backend) LocalLoggerAt(ctx context.Context, level activity.Level) (activity.LocalLogger, bool) {
	log := b.LocalLogger(ctx)
	return log, log.IsEnabled(level)
}

// IsEnabled tells whether records at level are written.
func (b *Backend) IsEnabled(level activity.Level) bool {
	if b.disabled || level == activity.LevelNone {
		return false
	}
	return level.HasForce() || level.AtLeast(b.minLevel)
}

// Records returns the completed records in order.
func (b *Backend) Records() []*Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*Record(nil), b.records...)
}

// Contexts returns the opened contexts in order.
func (b *Backend) Contexts() []*ContextInfo {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]*ContextInfo(nil), b.contexts...)
}

// InternalExceptions returns what was reported through OnInternalException.
func (b *Backend) InternalExceptions() []error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]error(nil), b.internal...)
}

// Misuse returns the formatted OnInvalidUserCode reports.
func (b *Backend) Misuse() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.misuse...)
}

// WriteErr returns the errors that occurred while streaming records.
func (b *Backend) WriteErr() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writeErrs
}

// Reset forgets everything recorded so far.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.contexts, b.records, b.internal, b.misuse, b.writeErrs = nil, nil, nil, nil, nil
}

func (b *Backend) commit(r *Record) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.records = append(b.records, r)
	if b.ws == nil {
		return
	}
	// Deliberately use yaml.v2 here as it marshals lists on the same
	// indentation level as the list key.
	out, err := yaml.Marshal([]*Record{r})
	if err == nil {
		header := fmt.Sprintf("# %s %s", r.Kind, r.Context)
		out = bytes.Join([][]byte{[]byte(header), out, nil}, []byte{'\n'})
		err = writeNoLength(b.ws, out)
	}
	b.writeErrs = multierr.Append(b.writeErrs, err)
}

func writeNoLength(w io.Writer, p []byte) error {
	_, err := w.Write(p)
	return err
}

func (b *Backend) newContext(opts activity.OpenActivityOptions, parent *Context, isAsync bool) *Context {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	c := &Context{
		ContextState: activity.ContextState{
			Async:   isAsync,
			ID:      "ctx-" + strconv.FormatUint(b.nextID, 10),
			Recycle: b.nextID,
		},
		backend:   b,
		inherited: opts.Properties.Inherited().Merge(parent.inheritedBag()),
	}
	c.Info = &ContextInfo{
		ID:        c.ID,
		Name:      opts.Name,
		Async:     isAsync,
		Hidden:    opts.Hidden,
		Forced:    opts.Transaction.RequiresTransaction,
		Inherited: attributesOf(c.inherited),
	}
	if parent != nil {
		c.Info.Parent = parent.ID
	}
	b.contexts = append(b.contexts, c.Info)
	return c
}

func (b *Backend) event(c *Context, format string, args ...interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.Info.Events = append(c.Info.Events, fmt.Sprintf(format, args...))
}

// Context is the activity.LoggingContext of the recorder.
type Context struct {
	activity.ContextState

	Info *ContextInfo

	backend   *Backend
	inherited *activity.PropertyBag
}

// Dispose counts every call, such that tests can verify that a context is
// released exactly once.
func (c *Context) Dispose() {
	c.backend.mu.Lock()
	c.Info.Disposals++
	c.backend.mu.Unlock()
	c.MarkDisposed()
}

func (c *Context) inheritedBag() *activity.PropertyBag {
	if c == nil {
		return nil
	}
	return c.inherited
}

type recorderCtxKeyStruct struct{}

//nolint:gochecknoglobals
var recorderCtxKey = recorderCtxKeyStruct{}

func withContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, recorderCtxKey, c)
}

func contextFrom(ctx context.Context) *Context {
	c, _ := ctx.Value(recorderCtxKey).(*Context)
	return c
}

// Logger is the activity.LocalLogger of the recorder. It is bound to the
// innermost Context of the ambient context.Context, if any.
type Logger struct {
	backend *Backend
	parent  *Context
}

var (
	_ activity.LocalLogger       = &Logger{}
	_ activity.TransactionPolicy = &Logger{}
)

func (l *Logger) IsEnabled(level activity.Level) bool { return l.backend.IsEnabled(level) }

func (l *Logger) ApplyTransactionRequirements(_ context.Context, opts *activity.OpenActivityOptions) {
	if l.backend.transactional[opts.Kind] {
		opts.Transaction.RequiresTransaction = true
	}
}

func (l *Logger) OpenActivity(ctx context.Context, opts activity.OpenActivityOptions, _ activity.CallerInfo, isAsync bool) (context.Context, activity.LoggingContext, error) {
	if l.backend.failOpen != nil {
		return ctx, nil, l.backend.failOpen
	}
	c := l.backend.newContext(opts, l.parent, isAsync)
	return withContext(ctx, c), c, nil
}

func (l *Logger) RecordBuilder(opts activity.RecordOptions, caller activity.CallerInfo, lctx activity.LoggingContext) (activity.RecordBuilder, error) {
	if l.backend.failRecord != nil {
		return nil, l.backend.failRecord
	}
	r := &Record{
		Kind:    opts.Kind.String(),
		Level:   opts.Level.String(),
		Outcome: opts.Outcome.String(),
		Source:  opts.Source,
	}
	if !caller.IsNull() {
		r.Caller = caller.ShortFile() + ":" + strconv.Itoa(caller.Line)
	}

	// Messages are written inside the ambient context; activity records
	// belong to their own context, or to none if standalone.
	owner := l.parent
	if opts.Kind != activity.RecordMessage {
		owner, _ = lctx.(*Context)
	}
	if owner != nil {
		r.Context = owner.Info.Name
		if opts.Kind == activity.RecordMessage {
			r.Properties = attributesOf(owner.inherited)
		}
	}
	r.Properties = append(r.Properties, attributesOf(opts.Properties)...)
	return &recordBuilder{backend: l.backend, record: r}, nil
}

func (l *Logger) ResumeActivity(lctx activity.LoggingContext, _ activity.CallerInfo) {
	if c, ok := lctx.(*Context); ok {
		l.backend.event(c, "resumed")
	}
}

func (l *Logger) SuspendActivity(lctx activity.LoggingContext, _ activity.CallerInfo) {
	if c, ok := lctx.(*Context); ok {
		l.backend.event(c, "suspended")
	}
}

func (l *Logger) SetWaitDependency(lctx activity.LoggingContext, waitedOn interface{}) {
	if c, ok := lctx.(*Context); ok {
		l.backend.event(c, "waiting on %v", waitedOn)
	}
}

func (l *Logger) OnInternalException(err error) {
	l.backend.mu.Lock()
	defer l.backend.mu.Unlock()
	l.backend.internal = append(l.backend.internal, err)
}

func (l *Logger) OnInvalidUserCode(_ activity.CallerInfo, format string, args ...interface{}) {
	l.backend.mu.Lock()
	defer l.backend.mu.Unlock()
	l.backend.misuse = append(l.backend.misuse, fmt.Sprintf(format, args...))
}
