package activity

import (
	"context"
	"strconv"
	"sync/atomic"
)

// CallID identifies one synchronous or asynchronous unit of work on a
// CallStack. The zero value is the null identifier.
type CallID uint64

// NullCallID is returned by CallStack.Current when the stack is empty.
const NullCallID CallID = 0

//nolint:gochecknoglobals
var lastCallID uint64

// NewCallID returns a process-unique, non-null CallID.
func NewCallID() CallID { return CallID(atomic.AddUint64(&lastCallID, 1)) }

func (id CallID) String() string {
	if id == NullCallID {
		return "<null>"
	}
	return "call-" + strconv.FormatUint(uint64(id), 10)
}

// CallStack is a LIFO stack of CallIDs tracking which asynchronous call is
// current on one goroutine. It must never be shared between goroutines:
// a goroutine resuming a call on behalf of another one uses its own stack,
// see WithCallStack.
//
// Enter and Exit bracket a unit of work; Suspend and Resume bracket one
// awaited operation inside it. A pop that does not match the expected
// identifier panics with *InvariantViolationError.
type CallStack struct {
	ids         []CallID
	onSuspended []func(CallID)
	onResumed   []func(CallID)
}

// NewCallStack returns an empty CallStack.
func NewCallStack() *CallStack { return &CallStack{} }

// OnSuspended registers fn to be called after each Suspend.
func (s *CallStack) OnSuspended(fn func(CallID)) { s.onSuspended = append(s.onSuspended, fn) }

// OnResumed registers fn to be called after each Resume.
func (s *CallStack) OnResumed(fn func(CallID)) { s.onResumed = append(s.onResumed, fn) }

// Enter pushes id when a unit of work starts.
func (s *CallStack) Enter(id CallID) { s.push(id) }

// Exit pops id when a unit of work ends.
func (s *CallStack) Exit(id CallID) { s.pop("exit", id) }

// Suspend pops id before control returns to the awaiter.
func (s *CallStack) Suspend(id CallID) {
	s.pop("suspend", id)
	for _, fn := range s.onSuspended {
		fn(id)
	}
}

// Resume pushes id before the awaited continuation runs.
func (s *CallStack) Resume(id CallID) {
	s.push(id)
	for _, fn := range s.onResumed {
		fn(id)
	}
}

// Current returns the top of the stack, or NullCallID.
func (s *CallStack) Current() CallID {
	if s == nil || len(s.ids) == 0 {
		return NullCallID
	}
	return s.ids[len(s.ids)-1]
}

// Len returns the depth of the stack.
func (s *CallStack) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

func (s *CallStack) push(id CallID) { s.ids = append(s.ids, id) }

func (s *CallStack) pop(op string, expected CallID) {
	top := s.Current()
	if len(s.ids) == 0 || top != expected {
		panic(&InvariantViolationError{Op: op, Expected: expected, Actual: top})
	}
	s.ids = s.ids[:len(s.ids)-1]
}

type callStackKeyStruct struct{}

var callStackKey = callStackKeyStruct{} //nolint:gochecknoglobals

// WithCallStack attaches a new, empty CallStack to a context descending
// from parent. The stack belongs to the goroutine using the returned
// context.
func WithCallStack(parent context.Context) (context.Context, *CallStack) {
	s := NewCallStack()
	return context.WithValue(parent, callStackKey, s), s
}

// CallStackFromContext returns the CallStack attached to ctx, or nil.
func CallStackFromContext(ctx context.Context) *CallStack {
	s, _ := ctx.Value(callStackKey).(*CallStack)
	return s
}

// CurrentCall returns the current CallID of the stack in ctx.
func CurrentCall(ctx context.Context) CallID { return CallStackFromContext(ctx).Current() }
