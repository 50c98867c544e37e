package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInAndContains(t *testing.T) {
	assert.NoError(t, In([]any{1, 2, 3}).Verify(2))
	assert.Error(t, In([]any{1, 2, 3}).Verify(4))
	assert.NoError(t, In("hello").Verify("ell"))
	assert.NoError(t, In(map[string]int{"a": 1}).Verify("a"))

	assert.NoError(t, Contains(2).Verify([]int{1, 2, 3}))
	assert.Error(t, Contains(4).Verify([]int{1, 2, 3}))
	assert.NoError(t, Contains("ell").Verify("hello"))
}

func TestContainmentNeverPanics(t *testing.T) {
	// Non-containers on either side fail as ordinary check
	// failures.
	assert.NotPanics(t, func() {
		assert.Error(t, In(42).Verify(1))
		assert.Error(t, Contains(1).Verify(42))
		assert.Error(t, In(nil).Verify(1))
		assert.Error(t, Contains(nil).Verify(nil))
		assert.Error(t, ContainsOnly([]any{1}).Verify(42))
		assert.Error(t, Unique().Verify(42))
		assert.Error(t, Length(nil, WithMin(1)).Verify(42))
	})
}

func TestContainsOnlyCheck(t *testing.T) {
	allowed := []any{1, 2}

	assert.NoError(
		t, ContainsOnly(allowed).Verify([]int{1, 1, 2}),
	)
	assert.Error(
		t, ContainsOnly(allowed).Verify([]int{1, 3}),
	)
	assert.NoError(
		t, NotContainsOnly(allowed).Verify([]int{1, 3}),
	)
}

func TestSubsetAndSuperset(t *testing.T) {
	big := map[string]any{"a": 1, "b": map[string]any{"c": 2}}
	small := map[string]any{"b": map[string]any{"c": 2}}

	assert.NoError(t, Subset(big).Verify(small))
	assert.Error(t, Subset(small).Verify(big))

	assert.NoError(t, Superset(small).Verify(big))
	assert.Error(t, Superset(big).Verify(small))

	assert.NoError(t, NotSubset(small).Verify(big))
	assert.NoError(t, NotSuperset(big).Verify(small))
}

func TestUniqueCheck(t *testing.T) {
	assert.NoError(t, Unique().Verify([]int{1, 2, 3}))
	assert.Error(t, Unique().Verify([]int{1, 2, 1}))

	// Maps deduplicate over their values.
	assert.Error(
		t,
		Unique().Verify(map[string]int{"one": 1, "uno": 1}),
	)
	assert.NoError(
		t,
		Unique().Verify(map[string]int{"one": 1, "two": 2}),
	)

	assert.NoError(t, NotUnique().Verify([]int{1, 1}))
}

func TestLengthCheck(t *testing.T) {
	tests := []struct {
		name  string
		chk   *Check
		value any
		want  bool
	}{
		{
			"within bounds",
			Length(nil, WithMin(2), WithMax(4)),
			"abc",
			true,
		},
		{
			"at lower bound",
			Length(nil, WithMin(3), WithMax(4)),
			"abc",
			true,
		},
		{
			"below bounds",
			Length(nil, WithMin(2), WithMax(4)),
			"a",
			false,
		},
		{
			"above bounds",
			Length(nil, WithMin(0), WithMax(2)),
			[]int{1, 2, 3},
			false,
		},
		{
			"pair operand",
			Length([]any{1, 3}),
			"ab",
			true,
		},
		{
			"scalar operand bounds above",
			Length(2),
			"abc",
			false,
		},
		{
			"unbounded minimum",
			Length(nil, WithMax(5)),
			"",
			true,
		},
		{
			"unmeasurable value",
			Length(nil, WithMin(0)),
			42,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.chk.Verify(tt.value)
			if tt.want {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestNotLengthCheck(t *testing.T) {
	assert.NoError(
		t,
		NotLength(nil, WithMin(5), WithMax(9)).Verify("abc"),
	)
	assert.Error(
		t,
		NotLength(nil, WithMin(1), WithMax(9)).Verify("abc"),
	)
}
