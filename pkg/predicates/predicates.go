// Package predicates provides pure yes/no classification and
// comparison helpers over arbitrary values. It is the leaf layer
// the verify package builds its checks on; nothing here raises,
// mutates, or allocates beyond transient reflection.
package predicates

import (
	"reflect"
	"regexp"
	"strings"
	"time"
)

// Truthy reports whether a value is truthy. The falsy set is
// deliberately wide: nil, false, zero numbers, empty strings,
// and empty slices, arrays, or maps. Everything else is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}

	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != ""
	}

	if f, ok := toFloat(v); ok {
		return f != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}

	return true
}

// IsNil reports whether a value is nil, including typed nil
// pointers, slices, maps, channels, and functions.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}

	return false
}

// IsBool reports whether a value is a bool.
func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsString reports whether a value is a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsInt reports whether a value has an integer kind (signed or
// unsigned). Booleans are not integers.
func IsInt(v any) bool {
	if v == nil {
		return false
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64:
		return true
	}

	return false
}

// IsFloat reports whether a value has a float kind.
func IsFloat(v any) bool {
	if v == nil {
		return false
	}

	k := reflect.TypeOf(v).Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

// IsNumber reports whether a value is an integer or a float.
func IsNumber(v any) bool {
	return IsInt(v) || IsFloat(v)
}

// IsMap reports whether a value has a map kind.
func IsMap(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}

// IsSlice reports whether a value has a slice or array kind.
func IsSlice(v any) bool {
	if v == nil {
		return false
	}

	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsDate reports whether a value is a time.Time or *time.Time.
func IsDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}

	return false
}

// IsDateString reports whether a string value parses with the
// given time layout. Non-string values never parse.
func IsDateString(v any, layout string) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}

	_, err := time.Parse(layout, s)
	return err == nil
}

// Equal reports loose equality between two values. Numeric
// values compare across widths, and booleans compare as the
// numbers 1 and 0, so Equal(1, true) holds. Everything else
// falls back to deep equality.
func Equal(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)

	if aok && bok {
		return af == bf
	}
	if aok != bok {
		return false
	}

	return reflect.DeepEqual(a, b)
}

// Same reports strict equality: identical dynamic types and
// deeply equal values. Same(1, true) and Same(1, 1.0) are both
// false even though Equal accepts them.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	return reflect.DeepEqual(a, b)
}

// Compare orders two values. It returns a negative, zero, or
// positive result like strings.Compare, and false when the
// values have no common ordering. Numbers (booleans counting as
// 1 and 0), strings, and time.Time values are orderable.
func Compare(a, b any) (int, bool) {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		if !ok {
			return 0, false
		}

		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}

	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}
		return strings.Compare(as, bs), true
	}

	if at, ok := asTime(a); ok {
		bt, ok := asTime(b)
		if !ok {
			return 0, false
		}
		return at.Compare(bt), true
	}

	return 0, false
}

// IsPositive reports whether a value is a number greater than
// zero.
func IsPositive(v any) bool {
	f, ok := toFloat(v)
	return ok && !IsBool(v) && f > 0
}

// IsNegative reports whether a value is a number less than zero.
func IsNegative(v any) bool {
	f, ok := toFloat(v)
	return ok && !IsBool(v) && f < 0
}

// IsEven reports whether a value is an even whole number. Floats
// qualify only when they carry no fractional part.
func IsEven(v any) bool {
	n, ok := toWhole(v)
	return ok && n%2 == 0
}

// IsOdd reports whether a value is an odd whole number.
func IsOdd(v any) bool {
	n, ok := toWhole(v)
	if !ok {
		return false
	}

	if n < 0 {
		n = -n
	}
	return n%2 == 1
}

// Matches reports whether a string value matches a regular
// expression. The pattern may be a *regexp.Regexp or a pattern
// string; a string pattern is compiled at call time with the
// given inline flags (e.g., "i" for case-insensitive). Pattern
// compilation errors and non-string values report false.
func Matches(v, pattern any, flags string) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}

	re, ok := pattern.(*regexp.Regexp)
	if !ok {
		src, isStr := pattern.(string)
		if !isStr {
			return false
		}

		if flags != "" {
			src = "(?" + flags + ")" + src
		}

		var err error
		re, err = regexp.Compile(src)
		if err != nil {
			return false
		}
	}

	return re.MatchString(s)
}

// toFloat converts any numeric value, including booleans as 1
// and 0, to a float64.
func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}

	if b, ok := v.(bool); ok {
		if b {
			return 1, true
		}
		return 0, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}

	return 0, false
}

// toWhole converts a value to an int64 when it is a whole
// number. Booleans do not qualify.
func toWhole(v any) (int64, bool) {
	if IsBool(v) {
		return 0, false
	}

	f, ok := toFloat(v)
	if !ok || f != float64(int64(f)) {
		return 0, false
	}

	return int64(f), true
}

// asTime extracts a time.Time from a value.
func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	}

	return time.Time{}, false
}
