package activity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallStack_balanced(t *testing.T) {
	s := NewCallStack()
	a, b := NewCallID(), NewCallID()
	assert.NotEqual(t, a, b)

	var suspended, resumed []CallID
	s.OnSuspended(func(id CallID) { suspended = append(suspended, id) })
	s.OnResumed(func(id CallID) { resumed = append(resumed, id) })

	s.Enter(a)
	s.Enter(b)
	assert.Equal(t, b, s.Current())
	s.Suspend(b)
	assert.Equal(t, a, s.Current())
	s.Resume(b)
	s.Exit(b)
	s.Exit(a)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, NullCallID, s.Current())
	assert.Equal(t, []CallID{b}, suspended)
	assert.Equal(t, []CallID{b}, resumed)
}

func TestCallStack_mismatch(t *testing.T) {
	s := NewCallStack()
	a, b := NewCallID(), NewCallID()
	s.Enter(a)

	defer func() {
		r := recover()
		err, ok := r.(error)
		assert.True(t, ok)
		assert.True(t, IsInvariantViolation(err))
		assert.Equal(t, &InvariantViolationError{Op: "exit", Expected: b, Actual: a}, err)
	}()
	s.Exit(b)
	t.Fatal("Exit did not panic")
}

func TestCallStack_emptyPop(t *testing.T) {
	s := NewCallStack()
	assert.PanicsWithError(t, (&InvariantViolationError{Op: "suspend", Expected: 7}).Error(), func() {
		s.Suspend(7)
	})
}

func TestCallStackFromContext(t *testing.T) {
	assert.Nil(t, CallStackFromContext(context.Background()))
	assert.Equal(t, NullCallID, CurrentCall(context.Background()))

	ctx, s := WithCallStack(context.Background())
	assert.Same(t, s, CallStackFromContext(ctx))
	id := NewCallID()
	s.Enter(id)
	assert.Equal(t, id, CurrentCall(ctx))
}
