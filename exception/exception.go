// Package exception provides the error type shared by the hpp packages.
//
// An Exception carries a message and the source location where it was
// raised. Exceptions are tagged with a Kind so callers can select the ones
// they handle with errors.Is:
//
//	var ErrPlanning = exception.NewKind("PlanningError")
//
//	if err := plan(); errors.Is(err, ErrPlanning) {
//		e, _ := exception.As(err)
//		e.Print(os.Stderr)
//	}
package exception

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
)

// Kind identifies a family of exceptions. Two kinds are equal only if they
// were returned by the same NewKind call.
type Kind struct {
	name string
}

// NewKind mints a new exception kind.
func NewKind(name string) *Kind {
	return &Kind{name: name}
}

// Name returns the name given to NewKind.
func (k *Kind) Name() string {
	if k == nil {
		return Generic.name
	}
	return k.name
}

// Error makes a Kind usable as an errors.Is target.
func (k *Kind) Error() string {
	return k.Name()
}

func (k *Kind) String() string {
	return k.Name()
}

// Generic is the kind of exceptions raised without a more specific kind.
var Generic = NewKind("Exception")

// Exception is an error raised at a known source location.
type Exception struct {
	kind    *Kind
	message string
	file    string
	line    uint
	cause   error
}

// New returns an exception of the given kind located at the caller.
func New(kind *Kind, message string) *Exception {
	file, line := caller(2)
	return NewAt(kind, message, file, line)
}

// Newf is New with a formatted message.
func Newf(kind *Kind, format string, args ...any) *Exception {
	file, line := caller(2)
	return NewAt(kind, fmt.Sprintf(format, args...), file, line)
}

// NewAt returns an exception with an explicit location.
func NewAt(kind *Kind, message, file string, line uint) *Exception {
	if kind == nil {
		kind = Generic
	}
	return &Exception{kind: kind, message: message, file: file, line: line}
}

// Wrap returns an exception located at the caller whose cause is err.
func Wrap(kind *Kind, err error, message string) *Exception {
	file, line := caller(2)
	e := NewAt(kind, message, file, line)
	e.cause = err
	return e
}

// Kind returns the exception's kind.
func (e *Exception) Kind() *Kind { return e.kind }

// Message returns the message without location.
func (e *Exception) Message() string { return e.message }

// File returns the source file where the exception was raised.
func (e *Exception) File() string { return e.file }

// Line returns the source line where the exception was raised.
func (e *Exception) Line() uint { return e.line }

// Error returns the message. Use String or Print to include the location.
func (e *Exception) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the wrapped cause, if any.
func (e *Exception) Unwrap() error {
	return e.cause
}

// Is reports whether target is the exception's kind, or an exception of
// the same kind with the same message.
func (e *Exception) Is(target error) bool {
	switch t := target.(type) {
	case *Kind:
		return t == e.kind
	case *Exception:
		return t.kind == e.kind && t.message == e.message
	}
	return false
}

// Print writes "<file>:<line>: <message>" to w.
func (e *Exception) Print(w io.Writer) (int, error) {
	return io.WriteString(w, e.String())
}

func (e *Exception) String() string {
	return fmt.Sprintf("%s:%d: %s", e.file, e.line, e.Error())
}

// Format implements fmt.Formatter; %v and %s include the location,
// %q quotes the message only.
func (e *Exception) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", e.Error())
	default:
		_, _ = io.WriteString(f, e.String())
	}
}

// As returns the first Exception in err's chain.
func As(err error) (*Exception, bool) {
	var e *Exception
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func caller(skip int) (string, uint) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0
	}
	return filepath.Base(file), uint(line)
}
