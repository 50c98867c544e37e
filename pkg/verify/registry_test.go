package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSpellings(t *testing.T) {
	tests := []struct {
		name     string
		spelling string
		want     string
	}{
		{"canonical", "Greater", "Greater"},
		{"snake case", "greater", "Greater"},
		{"to_be prefix", "to_be_greater", "Greater"},
		{"is prefix", "is_greater", "Greater"},
		{"alias", "GreaterThan", "Greater"},
		{"negated is prefix", "is_not_equal", "NotEqual"},
		{"negated to prefix", "to_not_be_equal", "NotEqual"},
		{"multi word", "strictly_increasing", "StrictlyIncreasing"},
		{
			"prefixed multi word",
			"to_be_strictly_increasing",
			"StrictlyIncreasing",
		},
		{"has prefix", "has_length", "Length"},
		{"does_not_have prefix", "does_not_have_length", "NotLength"},
		{"irregular does", "does", "Predicate"},
		{"irregular does_not", "does_not", "Not"},
		{"irregular to_be", "to_be", "Is"},
		{"irregular is", "is", "Is"},
		{"contains alias", "to_contain", "Contains"},
		{
			"negated contains alias",
			"does_not_contain",
			"NotContains",
		},
		{"matches alias", "matches", "Match"},
		{"instance alias", "InstanceOf", "Type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := Resolve(tt.spelling)
			require.NoError(t, err)
			assert.Equal(t, tt.want, reg.Name)
		})
	}
}

func TestResolveAliasIdentity(t *testing.T) {
	canonical, err := Resolve("Greater")
	require.NoError(t, err)

	for _, spelling := range []string{
		"greater", "to_be_greater", "is_greater", "GreaterThan",
	} {
		reg, err := Resolve(spelling)
		require.NoError(t, err)
		assert.Same(t, canonical, reg, spelling)
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("to_be_imaginary")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCheck))
	assert.Contains(t, err.Error(), "not a valid assertion")

	var re *ResolveError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "to_be_imaginary", re.Name)
}

func TestRegisterCheckDuplicate(t *testing.T) {
	err := RegisterCheck(&Registration{
		Name:    "Equal",
		Factory: unary("Equal", Equal),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	err = RegisterCheck(&Registration{
		Name:    "Brand_New",
		Aliases: []string{"matches"},
		Factory: unary("Brand_New", Equal),
	})
	require.Error(t, err)
}

func TestRegisterCheckExtension(t *testing.T) {
	err := RegisterCheck(&Registration{
		Name: "AnswerToEverything",
		Factory: nullary(
			"AnswerToEverything",
			func(opts ...Option) *Check {
				return Equal(42, opts...)
			},
		),
	})
	require.NoError(t, err)

	assert.NoError(
		t, Expect(42).To("answer_to_everything").Err(),
	)
	assert.Error(
		t, Expect(41).To("to_be_answer_to_everything").Err(),
	)
}

func TestFactoryArity(t *testing.T) {
	reg, err := Resolve("Truthy")
	require.NoError(t, err)

	_, err = reg.Factory([]any{1}, nil)
	assert.Error(t, err)

	reg, err = Resolve("Greater")
	require.NoError(t, err)

	_, err = reg.Factory(nil, nil)
	assert.Error(t, err)

	_, err = reg.Factory([]any{1, 2}, nil)
	assert.Error(t, err)

	reg, err = Resolve("Between")
	require.NoError(t, err)

	_, err = reg.Factory(nil, []Option{WithMax(6)})
	assert.NoError(t, err)

	_, err = reg.Factory([]any{[]any{4, 6}}, nil)
	assert.NoError(t, err)
}
