package verify

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypeCheck(t *testing.T) {
	assert.NoError(t, Type("").Verify("hello"))
	assert.NoError(t, Type(0).Verify(42))
	assert.Error(t, Type(0).Verify("42"))

	assert.NoError(
		t, Type(reflect.TypeOf(int64(0))).Verify(int64(1)),
	)
	assert.Error(
		t, Type(reflect.TypeOf(int64(0))).Verify(1),
	)

	assert.NoError(t, NotType("").Verify(42))
	assert.Error(t, NotType("").Verify("x"))
}

func TestKindChecks(t *testing.T) {
	tests := []struct {
		name  string
		chk   *Check
		pass  []any
		fail  []any
	}{
		{
			"boolean",
			Boolean(),
			[]any{true, false},
			[]any{1, "true", nil},
		},
		{
			"string",
			String(),
			[]any{"", "x"},
			[]any{1, []byte("x"), nil},
		},
		{
			"map",
			Map(),
			[]any{map[string]int{}, map[int]int{1: 2}},
			[]any{[]int{}, "x", nil},
		},
		{
			"slice",
			Slice(),
			[]any{[]int{}, [3]int{}, []string{"a"}},
			[]any{"abc", map[string]int{}, nil},
		},
		{
			"int",
			Int(),
			[]any{1, int64(2), uint8(3)},
			[]any{1.0, true, "1", nil},
		},
		{
			"float",
			Float(),
			[]any{1.5, float32(2)},
			[]any{1, "1.5", nil},
		},
		{
			"number",
			Number(),
			[]any{1, 1.5, uint(2)},
			[]any{true, "1", nil, []int{1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.pass {
				assert.NoError(t, tt.chk.Verify(v), "%v", v)
			}
			for _, v := range tt.fail {
				assert.Error(t, tt.chk.Verify(v), "%v", v)
			}
		})
	}
}

func TestDateChecks(t *testing.T) {
	now := time.Now()

	assert.NoError(t, Date().Verify(now))
	assert.NoError(t, Date().Verify(&now))
	assert.Error(t, Date().Verify("2020-01-01"))
	assert.NoError(t, NotDate().Verify("2020-01-01"))

	layout := "2006-01-02"
	assert.NoError(
		t, DateString(layout).Verify("2020-02-29"),
	)
	assert.Error(
		t, DateString(layout).Verify("2020-13-01"),
	)
	assert.Error(t, DateString(layout).Verify(20200101))
	assert.NoError(
		t, NotDateString(layout).Verify("not a date"),
	)
}

func TestChainedStringCheck(t *testing.T) {
	// The chained method shares its name with the check, not
	// with fmt.Stringer.
	assert.NoError(t, Expect("x").String().Err())
	assert.Error(t, Expect(1).String().Err())
	assert.NoError(t, Expect(1).NotString().Err())
}

func TestTypeChainSpellings(t *testing.T) {
	assert.NoError(t, Expect("x").To("is_string").Err())
	assert.NoError(t, Expect(1).To("to_be_int").Err())
	assert.NoError(
		t, Expect(1).To("is_not_string").Err(),
	)
	assert.NoError(
		t, Expect("x").To("instance_of", "").Err(),
	)
}
