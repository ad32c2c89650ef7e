package exception

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPlanning = NewKind("PlanningError")

func TestPrintFormat(t *testing.T) {
	e := NewAt(nil, "put your error here", "filename", 0)

	var buf bytes.Buffer
	_, err := e.Print(&buf)
	require.NoError(t, err)
	assert.Equal(t, "filename:0: put your error here", buf.String())
	assert.Equal(t, "put your error here", e.Error())
	assert.Equal(t, "filename:0: put your error here", fmt.Sprint(e))
	assert.Equal(t, `"put your error here"`, fmt.Sprintf("%q", e))
	assert.Same(t, Generic, e.Kind())
}

func TestNewCapturesCallerLocation(t *testing.T) {
	e := New(errPlanning, "this error should be caught")
	_, _, line, _ := runtime.Caller(0)

	assert.Equal(t, "exception_test.go", e.File())
	assert.Equal(t, uint(line-1), e.Line())
	assert.Equal(t, "this error should be caught", e.Message())
}

func TestKindsAreDistinct(t *testing.T) {
	other := NewKind("PlanningError")
	e := Newf(errPlanning, "no path after %d iterations", 10)

	assert.True(t, errors.Is(e, errPlanning))
	assert.False(t, errors.Is(e, other), "kinds with the same name stay distinct")
	assert.False(t, errors.Is(e, Generic))
	assert.Equal(t, "no path after 10 iterations", e.Error())
	assert.Equal(t, "PlanningError", errPlanning.Name())
	assert.Equal(t, "PlanningError", errPlanning.Error())
}

func TestSelectiveHandlingThroughWrapping(t *testing.T) {
	raised := func() error {
		return fmt.Errorf("solve: %w", New(errPlanning, "unreachable goal"))
	}

	err := raised()
	require.Error(t, err)

	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "unreachable goal", e.Message())
	assert.True(t, errors.Is(err, errPlanning))

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsMatchesKindAndMessage(t *testing.T) {
	a := NewAt(errPlanning, "same", "a.go", 1)
	b := NewAt(errPlanning, "same", "b.go", 2)
	c := NewAt(errPlanning, "different", "a.go", 1)

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestWrapKeepsCause(t *testing.T) {
	e := Wrap(Generic, io.ErrUnexpectedEOF, "reading model")

	assert.True(t, errors.Is(e, io.ErrUnexpectedEOF))
	assert.True(t, errors.Is(e, Generic))
	assert.Equal(t, "reading model: unexpected EOF", e.Error())
	assert.Contains(t, e.String(), "exception_test.go:")
}

func TestExceptionValueIsCopyable(t *testing.T) {
	e := NewAt(errPlanning, "copied", "f.go", 7)
	cp := *e

	assert.Equal(t, e.String(), cp.String())
	assert.True(t, errors.Is(&cp, errPlanning))
}
