package verify

import "reflect"

// Truthy asserts that the value is truthy. The falsy set follows
// predicates.Truthy: false, nil, zero numbers, and empty
// strings, slices, and maps.
func Truthy(opts ...Option) *Check {
	return newCheck(
		"Truthy", "{value} is not truthy", opTruthy, opts,
	)
}

// Falsy asserts that the value is falsy.
func Falsy(opts ...Option) *Check {
	return newCheck(
		"Falsy", "{value} is not falsy", opFalsy, opts,
	)
}

// All asserts that the value satisfies every predicate in the
// comparable list. Entries may be *Check values or predicate
// functions.
func All(comparable any, opts ...Option) *Check {
	return newComparator(
		"All",
		"{value} is not true for all {comparable}",
		comparable,
		opAll,
		opts,
	)
}

// NotAll asserts that the value fails at least one predicate in
// the comparable list.
func NotAll(comparable any, opts ...Option) *Check {
	return negated(
		"NotAll",
		"{value} is true for all {comparable}",
		All(comparable),
		opts,
	)
}

// Any asserts that the value satisfies at least one predicate in
// the comparable list.
func Any(comparable any, opts ...Option) *Check {
	return newComparator(
		"Any",
		"{value} is not true for any {comparable}",
		comparable,
		opAny,
		opts,
	)
}

// NotAny asserts that the value satisfies none of the predicates
// in the comparable list.
func NotAny(comparable any, opts ...Option) *Check {
	return negated(
		"NotAny",
		"{value} is true for some {comparable}",
		Any(comparable),
		opts,
	)
}

func opTruthy(value any, _ *Check) bool {
	return truthy(value)
}

func opFalsy(value any, _ *Check) bool {
	return !truthy(value)
}

func opAll(value any, chk *Check) bool {
	for _, p := range listOf(chk.comparable) {
		inner, err := coerceCheck(p)
		if err != nil || !inner.test(value) {
			return false
		}
	}

	return true
}

func opAny(value any, chk *Check) bool {
	for _, p := range listOf(chk.comparable) {
		inner, err := coerceCheck(p)
		if err == nil && inner.test(value) {
			return true
		}
	}

	return false
}

// listOf flattens a comparable into a predicate list. A single
// non-slice entry counts as a one-element list.
func listOf(v any) []any {
	if v == nil {
		return nil
	}

	if items, ok := v.([]any); ok {
		return items
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}

	return []any{v}
}

func init() {
	mustRegister("Truthy", nullary("Truthy", Truthy))
	mustRegister("Falsy", nullary("Falsy", Falsy))
	mustRegister("Not", unary("Not", Not))
	mustRegister("Predicate", unary("Predicate", Predicate))
	mustRegister("All", unary("All", All))
	mustRegister("NotAll", unary("NotAll", NotAll))
	mustRegister("Any", unary("Any", Any))
	mustRegister("NotAny", unary("NotAny", NotAny))
}
