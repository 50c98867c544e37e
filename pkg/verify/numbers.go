package verify

import "digital.vasic.verify/pkg/predicates"

// Greater asserts that the value orders after the comparable.
// Numbers, strings, and time values are orderable; anything
// else fails.
func Greater(comparable any, opts ...Option) *Check {
	return newComparator(
		"Greater",
		"{value} is not greater than {comparable}",
		comparable,
		opGreater,
		opts,
	)
}

// GreaterEqual asserts that the value orders after or equal to
// the comparable.
func GreaterEqual(comparable any, opts ...Option) *Check {
	return newComparator(
		"GreaterEqual",
		"{value} is not greater than or equal to {comparable}",
		comparable,
		opGreaterEqual,
		opts,
	)
}

// Less asserts that the value orders before the comparable.
func Less(comparable any, opts ...Option) *Check {
	return newComparator(
		"Less",
		"{value} is not less than {comparable}",
		comparable,
		opLess,
		opts,
	)
}

// LessEqual asserts that the value orders before or equal to the
// comparable.
func LessEqual(comparable any, opts ...Option) *Check {
	return newComparator(
		"LessEqual",
		"{value} is not less than or equal to {comparable}",
		comparable,
		opLessEqual,
		opts,
	)
}

// Between asserts that the value falls between the configured
// bounds, inclusively on both ends. Bounds come from WithMin and
// WithMax or from the bounds operand: a two-element pair sets
// both bounds, a single scalar sets the upper bound only, and a
// missing bound means unbounded on that side:
//
//	verify.Between(nil, verify.WithMin(4), verify.WithMax(6))
//	verify.Between([]any{4, 6})
//	verify.Between(6) // upper bound only
func Between(bounds any, opts ...Option) *Check {
	c := newCheck(
		"Between",
		"{value} is not between {min} and {max}",
		opBetween,
		opts,
	)
	applyBounds(c, bounds)

	return c
}

// NotBetween asserts that the value falls outside the configured
// bounds.
func NotBetween(bounds any, opts ...Option) *Check {
	return negated(
		"NotBetween",
		"{value} is between {min} and {max}",
		Between(bounds, opts...),
		opts,
	)
}

// Positive asserts that the value is a number greater than zero.
func Positive(opts ...Option) *Check {
	return newCheck(
		"Positive",
		"{value} is not a positive number",
		opPositive,
		opts,
	)
}

// Negative asserts that the value is a number less than zero.
func Negative(opts ...Option) *Check {
	return newCheck(
		"Negative",
		"{value} is not a negative number",
		opNegative,
		opts,
	)
}

// Even asserts that the value is an even whole number.
func Even(opts ...Option) *Check {
	return newCheck(
		"Even", "{value} is not an even number", opEven, opts,
	)
}

// Odd asserts that the value is an odd whole number.
func Odd(opts ...Option) *Check {
	return newCheck(
		"Odd", "{value} is not an odd number", opOdd, opts,
	)
}

// Monotone asserts that the value is a sequence whose adjacent
// pairs all satisfy the comparable ordering function:
//
//	verify.Monotone(func(a, b any) bool { ... })
func Monotone(comparable any, opts ...Option) *Check {
	return newComparator(
		"Monotone",
		"{value} is not monotonic as evaluated by {comparable}",
		comparable,
		opMonotone,
		opts,
	)
}

// Increasing asserts that the value is a monotonically
// non-decreasing sequence.
func Increasing(opts ...Option) *Check {
	return newCheck(
		"Increasing",
		"{value} is not monotonically increasing",
		opIncreasing,
		opts,
	)
}

// StrictlyIncreasing asserts that the value is a strictly
// increasing sequence.
func StrictlyIncreasing(opts ...Option) *Check {
	return newCheck(
		"StrictlyIncreasing",
		"{value} is not strictly increasing",
		opStrictlyIncreasing,
		opts,
	)
}

// Decreasing asserts that the value is a monotonically
// non-increasing sequence.
func Decreasing(opts ...Option) *Check {
	return newCheck(
		"Decreasing",
		"{value} is not monotonically decreasing",
		opDecreasing,
		opts,
	)
}

// StrictlyDecreasing asserts that the value is a strictly
// decreasing sequence.
func StrictlyDecreasing(opts ...Option) *Check {
	return newCheck(
		"StrictlyDecreasing",
		"{value} is not strictly decreasing",
		opStrictlyDecreasing,
		opts,
	)
}

func opGreater(value any, chk *Check) bool {
	c, ok := predicates.Compare(value, chk.comparable)
	return ok && c > 0
}

func opGreaterEqual(value any, chk *Check) bool {
	c, ok := predicates.Compare(value, chk.comparable)
	return ok && c >= 0
}

func opLess(value any, chk *Check) bool {
	c, ok := predicates.Compare(value, chk.comparable)
	return ok && c < 0
}

func opLessEqual(value any, chk *Check) bool {
	c, ok := predicates.Compare(value, chk.comparable)
	return ok && c <= 0
}

func opBetween(value any, chk *Check) bool {
	return inBounds(value, chk)
}

func opPositive(value any, _ *Check) bool {
	return predicates.IsPositive(value)
}

func opNegative(value any, _ *Check) bool {
	return predicates.IsNegative(value)
}

func opEven(value any, _ *Check) bool {
	return predicates.IsEven(value)
}

func opOdd(value any, _ *Check) bool {
	return predicates.IsOdd(value)
}

func opMonotone(value any, chk *Check) bool {
	cmp, ok := chk.comparable.(func(a, b any) bool)
	return ok && predicates.IsMonotone(value, cmp)
}

func opIncreasing(value any, _ *Check) bool {
	return predicates.IsIncreasing(value)
}

func opStrictlyIncreasing(value any, _ *Check) bool {
	return predicates.IsStrictlyIncreasing(value)
}

func opDecreasing(value any, _ *Check) bool {
	return predicates.IsDecreasing(value)
}

func opStrictlyDecreasing(value any, _ *Check) bool {
	return predicates.IsStrictlyDecreasing(value)
}

// applyBounds folds a bounds operand into the check's Min/Max
// options. Explicit WithMin/WithMax options win over the
// operand.
func applyBounds(c *Check, bounds any) {
	if bounds == nil {
		return
	}

	if predicates.IsSlice(bounds) {
		pair := listOf(bounds)
		if len(pair) != 2 {
			return
		}
		if c.opts.Min == nil {
			c.opts.Min = pair[0]
		}
		if c.opts.Max == nil {
			c.opts.Max = pair[1]
		}
		return
	}

	// A lone scalar bounds the range from above only.
	if c.opts.Max == nil {
		c.opts.Max = bounds
	}
}

// inBounds reports whether a value sits inside the check's
// inclusive Min/Max bounds. A nil bound is unbounded on that
// side; an unorderable pairing fails.
func inBounds(value any, chk *Check) bool {
	if chk.opts.Min != nil {
		c, ok := predicates.Compare(value, chk.opts.Min)
		if !ok || c < 0 {
			return false
		}
	}

	if chk.opts.Max != nil {
		c, ok := predicates.Compare(value, chk.opts.Max)
		if !ok || c > 0 {
			return false
		}
	}

	return true
}

func init() {
	mustRegister(
		"Greater", unary("Greater", Greater), "GreaterThan",
	)
	mustRegister(
		"GreaterEqual",
		unary("GreaterEqual", GreaterEqual),
		"GreaterOrEqual",
	)
	mustRegister("Less", unary("Less", Less), "LessThan")
	mustRegister(
		"LessEqual", unary("LessEqual", LessEqual),
		"LessOrEqual",
	)
	mustRegister("Between", bounded("Between", Between))
	mustRegister(
		"NotBetween", bounded("NotBetween", NotBetween),
	)
	mustRegister("Positive", nullary("Positive", Positive))
	mustRegister("Negative", nullary("Negative", Negative))
	mustRegister("Even", nullary("Even", Even))
	mustRegister("Odd", nullary("Odd", Odd))
	mustRegister("Monotone", unary("Monotone", Monotone))
	mustRegister(
		"Increasing", nullary("Increasing", Increasing),
	)
	mustRegister(
		"StrictlyIncreasing",
		nullary("StrictlyIncreasing", StrictlyIncreasing),
	)
	mustRegister(
		"Decreasing", nullary("Decreasing", Decreasing),
	)
	mustRegister(
		"StrictlyDecreasing",
		nullary("StrictlyDecreasing", StrictlyDecreasing),
	)
}
