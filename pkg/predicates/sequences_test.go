package predicates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMonotone(t *testing.T) {
	divides := func(a, b any) bool {
		ai, aok := toWhole(a)
		bi, bok := toWhole(b)
		return aok && bok && ai != 0 && bi%ai == 0
	}

	assert.True(t, IsMonotone([]int{2, 4, 12}, divides))
	assert.False(t, IsMonotone([]int{2, 5}, divides))
	assert.True(t, IsMonotone([]int{7}, divides))
	assert.True(t, IsMonotone([]int{}, divides))
	assert.False(t, IsMonotone(5, divides))
	assert.False(t, IsMonotone([]int{1, 2}, nil))
}

func TestOrderedSequences(t *testing.T) {
	tests := []struct {
		name   string
		v      any
		inc    bool
		strict bool
		dec    bool
		sdec   bool
	}{
		{
			"strictly increasing",
			[]int{1, 2, 3},
			true, true, false, false,
		},
		{
			"plateau",
			[]int{1, 1, 2},
			true, false, false, false,
		},
		{
			"strictly decreasing",
			[]int{3, 2, 1},
			false, false, true, true,
		},
		{
			"constant",
			[]int{2, 2},
			true, false, true, false,
		},
		{
			"unordered",
			[]int{1, 3, 2},
			false, false, false, false,
		},
		{
			"strings",
			[]string{"a", "b", "c"},
			true, true, false, false,
		},
		{
			"single element",
			[]int{9},
			true, true, true, true,
		},
		{
			"mixed unorderable",
			[]any{1, "a"},
			false, false, false, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inc, IsIncreasing(tt.v))
			assert.Equal(
				t, tt.strict, IsStrictlyIncreasing(tt.v),
			)
			assert.Equal(t, tt.dec, IsDecreasing(tt.v))
			assert.Equal(
				t, tt.sdec, IsStrictlyDecreasing(tt.v),
			)
		})
	}
}
