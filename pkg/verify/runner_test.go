package verify

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThat(t *testing.T) {
	assert.NoError(t, That(5, Greater(4), Less(6)))

	err := That(5, Less(4))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5 is not less than 4")
}

func TestThatRunsEveryCheck(t *testing.T) {
	err := That(5, Less(4), Greater(6), Equal(5))
	require.Error(t, err)

	assert.Contains(t, err.Error(), "5 is not less than 4")
	assert.Contains(t, err.Error(), "5 is not greater than 6")
	assert.NotContains(t, err.Error(), "5 is not equal to 5")
}

func TestThatAcceptsPredicateFuncs(t *testing.T) {
	positive := func(v any) bool {
		n, ok := v.(int)
		return ok && n > 0
	}

	assert.NoError(t, That(5, positive, Less(6)))
	assert.Error(t, That(-5, positive))
}

func TestThatRejectsNonChecks(t *testing.T) {
	err := That(5, "not a check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a check or predicate")
}

func TestExpectChaining(t *testing.T) {
	e := Expect(5).Truthy().Greater(4).Less(6)

	assert.True(t, e.OK())
	assert.NoError(t, e.Err())
	assert.Equal(t, 5, e.Value())
}

func TestExpectImmediateChecks(t *testing.T) {
	assert.NoError(t, Expect(5, Greater(4), Less(6)).Err())
	assert.Error(t, Expect(5, Less(4)).Err())
}

func TestExpectFirstFailureSticks(t *testing.T) {
	e := Expect(5).Less(4).Greater(100)

	require.Error(t, e.Err())
	assert.Contains(t, e.Err().Error(), "5 is not less than 4")
	assert.NotContains(t, e.Err().Error(), "100")
}

func TestExpectTo(t *testing.T) {
	e := Expect(5).
		To("to_be_greater", 4).
		To("between", WithMin(4), WithMax(6))

	assert.NoError(t, e.Err())

	err := Expect(5).To("to_be_less", 4).Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "5 is not less than 4")
}

func TestExpectToUnknownName(t *testing.T) {
	err := Expect(5).To("to_be_imaginary").Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCheck))
}

func TestExpectToRejectsEntryPoints(t *testing.T) {
	for _, name := range []string{
		"expect", "Expect", "ensure", "Ensure",
		"that", "That", "run_all", "RunAll",
	} {
		err := Expect(5).To(name).Err()
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "entry point", name)
	}
}

func TestExpectShould(t *testing.T) {
	assert.NoError(
		t, Expect(5).Should("to_be_greater", 4).Err(),
	)
}

func TestRunnerAliases(t *testing.T) {
	assert.Equal(
		t,
		reflect.ValueOf(That).Pointer(),
		reflect.ValueOf(RunAll).Pointer(),
	)
	assert.Equal(
		t,
		reflect.ValueOf(Expect).Pointer(),
		reflect.ValueOf(Ensure).Pointer(),
	)

	assert.NoError(t, RunAll(5, Greater(4)))
	assert.NoError(t, Ensure(5).Greater(4).Err())
}
