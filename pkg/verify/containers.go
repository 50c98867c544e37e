package verify

import "digital.vasic.verify/pkg/predicates"

// In asserts that the value is a member of the comparable
// container. Strings test substring containment, slices test
// element membership, and maps test key membership. A
// non-container comparable fails the check rather than raising
// anything else.
func In(comparable any, opts ...Option) *Check {
	return newComparator(
		"In",
		"{value} is not in {comparable}",
		comparable,
		opIn,
		opts,
	)
}

// NotIn asserts that the value is not a member of the comparable
// container.
func NotIn(comparable any, opts ...Option) *Check {
	return negated(
		"NotIn",
		"{value} is in {comparable}",
		In(comparable),
		opts,
	)
}

// Contains asserts that the value is a container holding the
// comparable. Non-container values fail.
func Contains(comparable any, opts ...Option) *Check {
	return newComparator(
		"Contains",
		"{value} does not contain {comparable}",
		comparable,
		opContains,
		opts,
	)
}

// NotContains asserts that the value does not contain the
// comparable.
func NotContains(comparable any, opts ...Option) *Check {
	return negated(
		"NotContains",
		"{value} contains {comparable}",
		Contains(comparable),
		opts,
	)
}

// ContainsOnly asserts that every element of the value is a
// member of the comparable container.
func ContainsOnly(comparable any, opts ...Option) *Check {
	return newComparator(
		"ContainsOnly",
		"{value} does not only contain values in {comparable}",
		comparable,
		opContainsOnly,
		opts,
	)
}

// NotContainsOnly asserts that the value holds at least one
// element outside the comparable container.
func NotContainsOnly(comparable any, opts ...Option) *Check {
	return negated(
		"NotContainsOnly",
		"{value} contains only {comparable}",
		ContainsOnly(comparable),
		opts,
	)
}

// Subset asserts that the value is structurally contained in the
// comparable: every key or index present in the value matches
// the same key or index in the comparable, recursing through
// nested maps and slices.
func Subset(comparable any, opts ...Option) *Check {
	return newComparator(
		"Subset",
		"{value} is not a subset of {comparable}",
		comparable,
		opSubset,
		opts,
	)
}

// NotSubset asserts that the value is not structurally contained
// in the comparable.
func NotSubset(comparable any, opts ...Option) *Check {
	return negated(
		"NotSubset",
		"{value} is a subset of {comparable}",
		Subset(comparable),
		opts,
	)
}

// Superset asserts the mirror of Subset: every key or index
// present in the comparable matches in the value.
func Superset(comparable any, opts ...Option) *Check {
	return newComparator(
		"Superset",
		"{value} is not a superset of {comparable}",
		comparable,
		opSuperset,
		opts,
	)
}

// NotSuperset asserts that the value is not a structural
// superset of the comparable.
func NotSuperset(comparable any, opts ...Option) *Check {
	return negated(
		"NotSuperset",
		"{value} is a superset of {comparable}",
		Superset(comparable),
		opts,
	)
}

// Unique asserts that the value contains no duplicate elements
// under loose equality. A map is checked over its values, not
// its keys.
func Unique(opts ...Option) *Check {
	return newCheck(
		"Unique",
		"{value} contains duplicate items",
		opUnique,
		opts,
	)
}

// NotUnique asserts that the value contains at least one
// duplicate element.
func NotUnique(opts ...Option) *Check {
	return negated(
		"NotUnique", "{value} is unique", Unique(), opts,
	)
}

// Length asserts that the value's length falls between the
// configured bounds, inclusively. Bounds come from WithMin and
// WithMax or from the bounds operand: a two-element pair sets
// both bounds, a single scalar sets the upper bound only, and a
// missing bound means unbounded on that side. Unmeasurable
// values fail.
func Length(bounds any, opts ...Option) *Check {
	c := newCheck(
		"Length",
		"{value} does not have length between {min} and {max}",
		opLength,
		opts,
	)
	applyBounds(c, bounds)

	return c
}

// NotLength asserts that the value's length falls outside the
// configured bounds.
func NotLength(bounds any, opts ...Option) *Check {
	return negated(
		"NotLength",
		"{value} has length between {min} and {max}",
		Length(bounds, opts...),
		opts,
	)
}

func opIn(value any, chk *Check) bool {
	return predicates.In(value, chk.comparable)
}

func opContains(value any, chk *Check) bool {
	return predicates.In(chk.comparable, value)
}

func opContainsOnly(value any, chk *Check) bool {
	return predicates.ContainsOnly(value, chk.comparable)
}

func opSubset(value any, chk *Check) bool {
	return predicates.IsSubsetOf(value, chk.comparable)
}

func opSuperset(value any, chk *Check) bool {
	return predicates.IsSupersetOf(value, chk.comparable)
}

func opUnique(value any, _ *Check) bool {
	return predicates.IsUnique(value)
}

func opLength(value any, chk *Check) bool {
	n, ok := predicates.Length(value)
	return ok && inBounds(n, chk)
}

func init() {
	mustRegister("In", unary("In", In))
	mustRegister("NotIn", unary("NotIn", NotIn))
	mustRegister(
		"Contains", unary("Contains", Contains),
		"contains", "to_contain",
	)
	mustRegister(
		"NotContains", unary("NotContains", NotContains),
		"does_not_contain", "to_not_contain",
	)
	mustRegister(
		"ContainsOnly",
		unary("ContainsOnly", ContainsOnly),
		"contains_only", "to_contain_only",
	)
	mustRegister(
		"NotContainsOnly",
		unary("NotContainsOnly", NotContainsOnly),
		"does_not_contain_only", "to_not_contain_only",
	)
	mustRegister("Subset", unary("Subset", Subset))
	mustRegister("NotSubset", unary("NotSubset", NotSubset))
	mustRegister("Superset", unary("Superset", Superset))
	mustRegister(
		"NotSuperset", unary("NotSuperset", NotSuperset),
	)
	mustRegister("Unique", nullary("Unique", Unique))
	mustRegister("NotUnique", nullary("NotUnique", NotUnique))
	mustRegister("Length", bounded("Length", Length))
	mustRegister("NotLength", bounded("NotLength", NotLength))
}
