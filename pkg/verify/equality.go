package verify

import "digital.vasic.verify/pkg/predicates"

// Equal asserts loose equality between the value and the
// comparable. Numbers compare across widths and booleans count
// as the numbers 1 and 0, so Equal(true) accepts 1.
func Equal(comparable any, opts ...Option) *Check {
	return newComparator(
		"Equal",
		"{value} is not equal to {comparable}",
		comparable,
		opEqual,
		opts,
	)
}

// NotEqual asserts that the value and the comparable are not
// loosely equal.
func NotEqual(comparable any, opts ...Option) *Check {
	return negated(
		"NotEqual",
		"{value} is equal to {comparable}",
		Equal(comparable),
		opts,
	)
}

// Is asserts strict equality: the value must have the identical
// dynamic type as the comparable and be deeply equal to it, so
// Is(true) rejects 1 even though Equal(true) accepts it.
func Is(comparable any, opts ...Option) *Check {
	return newComparator(
		"Is",
		"{value} is not {comparable}",
		comparable,
		opIs,
		opts,
	)
}

// IsNot asserts that the value is not strictly equal to the
// comparable.
func IsNot(comparable any, opts ...Option) *Check {
	return negated(
		"IsNot",
		"{value} is {comparable}",
		Is(comparable),
		opts,
	)
}

// Match asserts that the value matches a regular expression. The
// comparable may be a *regexp.Regexp or a pattern string; a
// string pattern is compiled at evaluation time with the inline
// flags from WithFlags. Non-string values fail rather than
// error.
func Match(comparable any, opts ...Option) *Check {
	return newComparator(
		"Match",
		"{value} does not match the regular expression "+
			"{comparable}",
		comparable,
		opMatch,
		opts,
	)
}

// NotMatch asserts that the value does not match a regular
// expression.
func NotMatch(comparable any, opts ...Option) *Check {
	inner := Match(comparable, opts...)

	return negated(
		"NotMatch",
		"{value} matches the regular expression {comparable}",
		inner,
		opts,
	)
}

// IsTrue asserts that the value is the boolean true.
func IsTrue(opts ...Option) *Check {
	return newCheck(
		"IsTrue", "{value} is not true", opIsTrue, opts,
	)
}

// IsNotTrue asserts that the value is anything but the boolean
// true.
func IsNotTrue(opts ...Option) *Check {
	return negated(
		"IsNotTrue", "{value} is true", IsTrue(), opts,
	)
}

// IsFalse asserts that the value is the boolean false.
func IsFalse(opts ...Option) *Check {
	return newCheck(
		"IsFalse", "{value} is not false", opIsFalse, opts,
	)
}

// IsNotFalse asserts that the value is anything but the boolean
// false.
func IsNotFalse(opts ...Option) *Check {
	return negated(
		"IsNotFalse", "{value} is false", IsFalse(), opts,
	)
}

// Nil asserts that the value is nil, including typed nil
// pointers, slices, maps, channels, and functions.
func Nil(opts ...Option) *Check {
	return newCheck("Nil", "{value} is not nil", opNil, opts)
}

// NotNil asserts that the value is not nil.
func NotNil(opts ...Option) *Check {
	return negated("NotNil", "{value} is nil", Nil(), opts)
}

func opEqual(value any, chk *Check) bool {
	return predicates.Equal(value, chk.comparable)
}

func opIs(value any, chk *Check) bool {
	return predicates.Same(value, chk.comparable)
}

func opMatch(value any, chk *Check) bool {
	return predicates.Matches(
		value, chk.comparable, chk.opts.Flags,
	)
}

func opIsTrue(value any, _ *Check) bool {
	b, ok := value.(bool)
	return ok && b
}

func opIsFalse(value any, _ *Check) bool {
	b, ok := value.(bool)
	return ok && !b
}

func opNil(value any, _ *Check) bool {
	return predicates.IsNil(value)
}

func init() {
	mustRegister("Equal", unary("Equal", Equal))
	mustRegister("NotEqual", unary("NotEqual", NotEqual))
	mustRegister("Is", unary("Is", Is))
	mustRegister("IsNot", unary("IsNot", IsNot))
	mustRegister(
		"Match", unary("Match", Match), "matches",
	)
	mustRegister(
		"NotMatch", unary("NotMatch", NotMatch),
		"not_matches", "does_not_match",
	)
	mustRegister("IsTrue", nullary("IsTrue", IsTrue))
	mustRegister("IsNotTrue", nullary("IsNotTrue", IsNotTrue))
	mustRegister("IsFalse", nullary("IsFalse", IsFalse))
	mustRegister(
		"IsNotFalse", nullary("IsNotFalse", IsNotFalse),
	)
	mustRegister("Nil", nullary("Nil", Nil))
	mustRegister("NotNil", nullary("NotNil", NotNil))
}
