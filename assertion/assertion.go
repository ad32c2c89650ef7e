// Package assertion implements contract checks: assertions, preconditions
// and postconditions.
//
// Checks are compiled in only when building with the hppdebug or hppassert
// tag. Otherwise every check is a no-op and the condition closure is never
// called, so conditions must not carry side effects the program relies on.
//
// A failed check panics with an *exception.Exception of kind AssertionError:
//
//	func plus(a, b int) (res int) {
//		assertion.Precondition("a >= 0", func() bool { return a >= 0 })
//		defer assertion.Postcondition("res == a + b", func() bool { return res == a+b })()
//		...
//	}
package assertion

import (
	"errors"
	"path/filepath"
	"runtime"

	"github.com/laas/hpp-util/exception"
)

// AssertionError is the kind of exceptions raised by failed checks.
var AssertionError = exception.NewKind("AssertionError")

const failureSuffix = " evaluates to false"

// Assert panics if cond returns false.
func Assert(expr string, cond func() bool) {
	if !Enabled {
		return
	}
	if err := check(expr, cond, 2); err != nil {
		panic(err)
	}
}

// Precondition checks a requirement on entry to a function.
func Precondition(expr string, cond func() bool) {
	if !Enabled {
		return
	}
	if err := check(expr, cond, 2); err != nil {
		panic(err)
	}
}

// Postcondition returns a check to be deferred. The condition is evaluated
// when the deferred call runs, on every exit path including a panic, and
// sees the current values of the variables its closure captured. The failure
// is reported at the line of the Postcondition call.
func Postcondition(expr string, cond func() bool) func() {
	if !Enabled {
		return noop
	}
	return postcondition(expr, cond, 2)
}

// Check is the non-panicking form of Assert. It returns nil when checks are
// disabled.
func Check(expr string, cond func() bool) error {
	if !Enabled {
		return nil
	}
	if err := check(expr, cond, 2); err != nil {
		return err
	}
	return nil
}

// Recover converts a contract violation panic into an error stored in errp.
// Other panics are propagated. It must be called directly by defer.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok && errors.Is(err, AssertionError) {
		if errp != nil {
			*errp = err
		}
		return
	}
	panic(r)
}

func noop() {}

func postcondition(expr string, cond func() bool, skip int) func() {
	file, line := location(skip + 1)
	return func() {
		if !cond() {
			panic(failure(expr, file, line))
		}
	}
}

// check returns nil, or an *exception.Exception located skip frames above
// check itself.
func check(expr string, cond func() bool, skip int) *exception.Exception {
	if cond() {
		return nil
	}
	file, line := location(skip + 1)
	return failure(expr, file, line)
}

func failure(expr, file string, line uint) *exception.Exception {
	return exception.NewAt(AssertionError, expr+failureSuffix, file, line)
}

func location(skip int) (string, uint) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0
	}
	return filepath.Base(file), uint(line)
}
