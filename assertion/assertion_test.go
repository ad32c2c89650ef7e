package assertion

import (
	"errors"
	"testing"

	"github.com/laas/hpp-util/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plus adds two non-negative numbers the slow way.
func plus(a, b int) (res int) {
	precondition("a >= 0", func() bool { return a >= 0 })
	precondition("b >= 0", func() bool { return b >= 0 })
	a0, b0 := a, b
	defer postcondition("res == a + b", func() bool { return res == a0+b0 }, 1)()

	res = b
	for a > 0 {
		a--
		res++
	}
	return res
}

func brokenPlus(a, b int) (res int) {
	precondition("a >= 0", func() bool { return a >= 0 })
	defer postcondition("res == a + b", func() bool { return res == a+b }, 1)()

	res = b
	return res
}

// precondition always checks, whatever the build tags.
func precondition(expr string, cond func() bool) {
	if err := check(expr, cond, 2); err != nil {
		panic(err)
	}
}

func catch(fn func()) (err error) {
	defer Recover(&err)
	fn()
	return nil
}

func TestContractsHold(t *testing.T) {
	assert.Equal(t, 9, plus(4, 5))
	assert.Equal(t, 16, plus(7, 9))
}

func TestPreconditionFailure(t *testing.T) {
	err := catch(func() { plus(-2, 5) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, AssertionError))

	e, ok := exception.As(err)
	require.True(t, ok)
	assert.Equal(t, "a >= 0 evaluates to false", e.Message())
	assert.Equal(t, "assertion_test.go", e.File())
	assert.NotZero(t, e.Line())
}

func TestPostconditionFailure(t *testing.T) {
	err := catch(func() { brokenPlus(3, 5) })
	require.Error(t, err)

	e, ok := exception.As(err)
	require.True(t, ok)
	assert.Equal(t, "res == a + b evaluates to false", e.Message())
}

func TestPostconditionRunsOnEveryExitPath(t *testing.T) {
	var runs int
	counted := func() bool { runs++; return true }

	early := func(stop bool) int {
		defer postcondition("true", counted, 1)()
		if stop {
			return 1
		}
		return 2
	}
	early(true)
	early(false)
	assert.Equal(t, 2, runs)

	unwinding := func() {
		defer postcondition("true", counted, 1)()
		panic("boom")
	}
	assert.PanicsWithValue(t, "boom", unwinding)
	assert.Equal(t, 3, runs)
}

func TestPostconditionSeesFinalValues(t *testing.T) {
	var seen int
	fn := func() (res int) {
		defer postcondition("res > 0", func() bool { seen = res; return res > 0 }, 1)()
		res = 42
		return res
	}
	fn()
	assert.Equal(t, 42, seen)
}

func TestRecoverPropagatesForeignPanics(t *testing.T) {
	assert.PanicsWithValue(t, "not a contract", func() {
		_ = catch(func() { panic("not a contract") })
	})

	other := errors.New("other error")
	assert.PanicsWithError(t, "other error", func() {
		_ = catch(func() { panic(other) })
	})
}

func TestPublicChecksFollowBuildFlag(t *testing.T) {
	evaluated := false
	falseCond := func() bool { evaluated = true; return false }

	if !Enabled {
		assert.NotPanics(t, func() { Assert("i < 3", falseCond) })
		assert.NotPanics(t, func() { Precondition("i < 3", falseCond) })
		assert.NotPanics(t, func() {
			defer Postcondition("i < 3", falseCond)()
		})
		assert.NoError(t, Check("i < 3", falseCond))
		assert.False(t, evaluated, "disabled checks never evaluate their condition")
		return
	}

	err := catch(func() { Assert("i < 3", falseCond) })
	require.Error(t, err)
	assert.Equal(t, "i < 3 evaluates to false", err.Error())
	assert.True(t, evaluated)

	err = catch(func() { Precondition("i < 3", falseCond) })
	require.Error(t, err)

	err = catch(func() {
		defer Postcondition("i < 3", falseCond)()
	})
	require.Error(t, err)

	err = Check("i < 3", falseCond)
	require.Error(t, err)
	e, ok := exception.As(err)
	require.True(t, ok)
	assert.Equal(t, "assertion_test.go", e.File())

	assert.NoError(t, Check("i > 2", func() bool { return true }))
}
