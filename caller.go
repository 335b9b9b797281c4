package activity

import (
	"path/filepath"
	"runtime"
)

// CallerInfo is an opaque capture of an invocation site. The core only
// checks whether it is absent and whether the site is asynchronous; the
// remaining fields are for backends.
type CallerInfo struct {
	File     string
	Line     int
	Function string
	// Attributes holds boundary-defined flags, see CallerAsync.
	Attributes CallerAttributes
}

// CallerAttributes are flags supplied by the instrumentation boundary.
type CallerAttributes uint8

const (
	// CallerAsync marks a call site whose work continues across suspension
	// points, e.g. in other goroutines.
	CallerAsync CallerAttributes = 1 << iota
)

// NullCaller is the absent CallerInfo.
var NullCaller = CallerInfo{} //nolint:gochecknoglobals

// IsNull tells whether c carries no information.
func (c CallerInfo) IsNull() bool { return c == NullCaller }

// IsAsync tells whether the boundary flagged the call site as asynchronous.
func (c CallerInfo) IsAsync() bool { return c.Attributes&CallerAsync != 0 }

// Async returns a copy of c flagged as asynchronous.
func (c CallerInfo) Async() CallerInfo {
	c.Attributes |= CallerAsync
	return c
}

// ShortFile is the base name of File.
func (c CallerInfo) ShortFile() string { return filepath.Base(c.File) }

// Caller captures the call site skip frames above the caller of Caller.
// It returns NullCaller if the frame cannot be resolved.
func Caller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return NullCaller
	}
	var fnName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		fnName = fn.Name()
	}
	return CallerInfo{File: file, Line: line, Function: fnName}
}
