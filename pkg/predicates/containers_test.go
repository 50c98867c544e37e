package predicates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIn(t *testing.T) {
	tests := []struct {
		name      string
		needle    any
		container any
		want      bool
	}{
		{"substring", "ell", "hello", true},
		{"missing substring", "xyz", "hello", false},
		{"non-string needle in string", 1, "hello", false},
		{"slice member", 2, []int{1, 2, 3}, true},
		{"slice member loose", 2.0, []int{1, 2, 3}, true},
		{"missing slice member", 4, []int{1, 2, 3}, false},
		{"map key", "a", map[string]int{"a": 1}, true},
		{"missing map key", "b", map[string]int{"a": 1}, false},
		{"non-container", 1, 42, false},
		{"nil container", 1, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(
				t, tt.want, In(tt.needle, tt.container),
			)
		})
	}
}

func TestContainsOnly(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		allowed any
		want    bool
	}{
		{"all allowed", []int{1, 1, 2}, []int{1, 2}, true},
		{"extra element", []int{1, 3}, []int{1, 2}, false},
		{"empty value", []int{}, []int{1}, true},
		{"string characters", "aab", "ab", true},
		{"string stray character", "abc", "ab", false},
		{"non-iterable value", 5, []int{5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(
				t, tt.want,
				ContainsOnly(tt.value, tt.allowed),
			)
		})
	}
}

func TestIsSubsetOf(t *testing.T) {
	tests := []struct {
		name       string
		value      any
		comparable any
		want       bool
	}{
		{
			"map subset",
			map[string]any{"a": 1},
			map[string]any{"a": 1, "b": 2},
			true,
		},
		{
			"map value mismatch",
			map[string]any{"a": 2},
			map[string]any{"a": 1, "b": 2},
			false,
		},
		{
			"nested map subset",
			map[string]any{"a": map[string]any{"x": 1}},
			map[string]any{
				"a": map[string]any{"x": 1, "y": 2},
				"b": 3,
			},
			true,
		},
		{
			"slice prefix",
			[]any{1, 2},
			[]any{1, 2, 3},
			true,
		},
		{
			"slice too long",
			[]any{1, 2, 3, 4},
			[]any{1, 2, 3},
			false,
		},
		{"leaf equality", 1, 1.0, true},
		{"leaf mismatch", 1, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(
				t, tt.want,
				IsSubsetOf(tt.value, tt.comparable),
			)
		})
	}
}

func TestIsSupersetOf(t *testing.T) {
	big := map[string]any{"a": 1, "b": 2}
	small := map[string]any{"a": 1}

	assert.True(t, IsSupersetOf(big, small))
	assert.False(t, IsSupersetOf(small, big))
	assert.True(t, IsSupersetOf([]any{1, 2, 3}, []any{1, 2}))
}

func TestIsUnique(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"unique slice", []int{1, 2, 3}, true},
		{"duplicate slice", []int{1, 2, 1}, false},
		{"loose duplicate", []any{1, 1.0}, false},
		{"unique string", "abc", true},
		{"duplicate string", "aba", false},
		{
			"map duplicate values",
			map[string]int{"one": 1, "uno": 1},
			false,
		},
		{
			"map unique values",
			map[string]int{"one": 1, "two": 2},
			true,
		},
		{"empty slice", []int{}, true},
		{"non-iterable", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnique(tt.v))
		})
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		name   string
		v      any
		want   int
		wantOK bool
	}{
		{"string", "abc", 3, true},
		{"slice", []int{1, 2}, 2, true},
		{"array", [4]int{}, 4, true},
		{"map", map[string]int{"a": 1}, 1, true},
		{"number", 5, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Length(tt.v)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
