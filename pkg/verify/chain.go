package verify

// Chained forms of every built-in check. Each method applies the
// correspondingly named check to the session's held value and
// returns the session for further chaining; the registry-driven
// To method covers the same ground by name.

// Truthy chains the Truthy check.
func (e *Expectation) Truthy(opts ...Option) *Expectation {
	return e.apply(Truthy(opts...))
}

// Falsy chains the Falsy check.
func (e *Expectation) Falsy(opts ...Option) *Expectation {
	return e.apply(Falsy(opts...))
}

// Not chains a negated check or predicate.
func (e *Expectation) Not(
	target any, opts ...Option,
) *Expectation {
	return e.apply(Not(target, opts...))
}

// Predicate chains an ad hoc predicate function.
func (e *Expectation) Predicate(
	fn any, opts ...Option,
) *Expectation {
	return e.apply(Predicate(fn, opts...))
}

// All chains the All composite check.
func (e *Expectation) All(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(All(comparable, opts...))
}

// NotAll chains the NotAll composite check.
func (e *Expectation) NotAll(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(NotAll(comparable, opts...))
}

// Any chains the Any composite check.
func (e *Expectation) Any(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(Any(comparable, opts...))
}

// NotAny chains the NotAny composite check.
func (e *Expectation) NotAny(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(NotAny(comparable, opts...))
}

// Equal chains the Equal check.
func (e *Expectation) Equal(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(Equal(comparable, opts...))
}

// NotEqual chains the NotEqual check.
func (e *Expectation) NotEqual(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(NotEqual(comparable, opts...))
}

// Is chains the Is check.
func (e *Expectation) Is(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(Is(comparable, opts...))
}

// IsNot chains the IsNot check.
func (e *Expectation) IsNot(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(IsNot(comparable, opts...))
}

// Match chains the Match check.
func (e *Expectation) Match(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(Match(comparable, opts...))
}

// NotMatch chains the NotMatch check.
func (e *Expectation) NotMatch(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(NotMatch(comparable, opts...))
}

// IsTrue chains the IsTrue check.
func (e *Expectation) IsTrue(opts ...Option) *Expectation {
	return e.apply(IsTrue(opts...))
}

// IsNotTrue chains the IsNotTrue check.
func (e *Expectation) IsNotTrue(opts ...Option) *Expectation {
	return e.apply(IsNotTrue(opts...))
}

// IsFalse chains the IsFalse check.
func (e *Expectation) IsFalse(opts ...Option) *Expectation {
	return e.apply(IsFalse(opts...))
}

// IsNotFalse chains the IsNotFalse check.
func (e *Expectation) IsNotFalse(opts ...Option) *Expectation {
	return e.apply(IsNotFalse(opts...))
}

// Nil chains the Nil check.
func (e *Expectation) Nil(opts ...Option) *Expectation {
	return e.apply(Nil(opts...))
}

// NotNil chains the NotNil check.
func (e *Expectation) NotNil(opts ...Option) *Expectation {
	return e.apply(NotNil(opts...))
}

// Type chains the Type check.
func (e *Expectation) Type(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(Type(comparable, opts...))
}

// NotType chains the NotType check.
func (e *Expectation) NotType(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(NotType(comparable, opts...))
}

// Boolean chains the Boolean check.
func (e *Expectation) Boolean(opts ...Option) *Expectation {
	return e.apply(Boolean(opts...))
}

// NotBoolean chains the NotBoolean check.
func (e *Expectation) NotBoolean(opts ...Option) *Expectation {
	return e.apply(NotBoolean(opts...))
}

// String chains the String check. The name mirrors the check it
// applies, so Expectation is intentionally not a fmt.Stringer;
// the session prints through its fields instead.
func (e *Expectation) String(opts ...Option) *Expectation {
	return e.apply(String(opts...))
}

// NotString chains the NotString check.
func (e *Expectation) NotString(opts ...Option) *Expectation {
	return e.apply(NotString(opts...))
}

// Map chains the Map check.
func (e *Expectation) Map(opts ...Option) *Expectation {
	return e.apply(Map(opts...))
}

// NotMap chains the NotMap check.
func (e *Expectation) NotMap(opts ...Option) *Expectation {
	return e.apply(NotMap(opts...))
}

// Slice chains the Slice check.
func (e *Expectation) Slice(opts ...Option) *Expectation {
	return e.apply(Slice(opts...))
}

// NotSlice chains the NotSlice check.
func (e *Expectation) NotSlice(opts ...Option) *Expectation {
	return e.apply(NotSlice(opts...))
}

// Date chains the Date check.
func (e *Expectation) Date(opts ...Option) *Expectation {
	return e.apply(Date(opts...))
}

// NotDate chains the NotDate check.
func (e *Expectation) NotDate(opts ...Option) *Expectation {
	return e.apply(NotDate(opts...))
}

// DateString chains the DateString check.
func (e *Expectation) DateString(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(DateString(comparable, opts...))
}

// NotDateString chains the NotDateString check.
func (e *Expectation) NotDateString(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(NotDateString(comparable, opts...))
}

// Int chains the Int check.
func (e *Expectation) Int(opts ...Option) *Expectation {
	return e.apply(Int(opts...))
}

// NotInt chains the NotInt check.
func (e *Expectation) NotInt(opts ...Option) *Expectation {
	return e.apply(NotInt(opts...))
}

// Float chains the Float check.
func (e *Expectation) Float(opts ...Option) *Expectation {
	return e.apply(Float(opts...))
}

// NotFloat chains the NotFloat check.
func (e *Expectation) NotFloat(opts ...Option) *Expectation {
	return e.apply(NotFloat(opts...))
}

// Number chains the Number check.
func (e *Expectation) Number(opts ...Option) *Expectation {
	return e.apply(Number(opts...))
}

// NotNumber chains the NotNumber check.
func (e *Expectation) NotNumber(opts ...Option) *Expectation {
	return e.apply(NotNumber(opts...))
}

// In chains the In check.
func (e *Expectation) In(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(In(comparable, opts...))
}

// NotIn chains the NotIn check.
func (e *Expectation) NotIn(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(NotIn(comparable, opts...))
}

// Contains chains the Contains check.
func (e *Expectation) Contains(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(Contains(comparable, opts...))
}

// NotContains chains the NotContains check.
func (e *Expectation) NotContains(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(NotContains(comparable, opts...))
}

// ContainsOnly chains the ContainsOnly check.
func (e *Expectation) ContainsOnly(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(ContainsOnly(comparable, opts...))
}

// NotContainsOnly chains the NotContainsOnly check.
func (e *Expectation) NotContainsOnly(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(NotContainsOnly(comparable, opts...))
}

// Subset chains the Subset check.
func (e *Expectation) Subset(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(Subset(comparable, opts...))
}

// NotSubset chains the NotSubset check.
func (e *Expectation) NotSubset(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(NotSubset(comparable, opts...))
}

// Superset chains the Superset check.
func (e *Expectation) Superset(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(Superset(comparable, opts...))
}

// NotSuperset chains the NotSuperset check.
func (e *Expectation) NotSuperset(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(NotSuperset(comparable, opts...))
}

// Unique chains the Unique check.
func (e *Expectation) Unique(opts ...Option) *Expectation {
	return e.apply(Unique(opts...))
}

// NotUnique chains the NotUnique check.
func (e *Expectation) NotUnique(opts ...Option) *Expectation {
	return e.apply(NotUnique(opts...))
}

// Length chains the Length check, configured through WithMin
// and WithMax.
func (e *Expectation) Length(opts ...Option) *Expectation {
	return e.apply(Length(nil, opts...))
}

// NotLength chains the NotLength check.
func (e *Expectation) NotLength(opts ...Option) *Expectation {
	return e.apply(NotLength(nil, opts...))
}

// Greater chains the Greater check.
func (e *Expectation) Greater(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(Greater(comparable, opts...))
}

// GreaterEqual chains the GreaterEqual check.
func (e *Expectation) GreaterEqual(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(GreaterEqual(comparable, opts...))
}

// Less chains the Less check.
func (e *Expectation) Less(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(Less(comparable, opts...))
}

// LessEqual chains the LessEqual check.
func (e *Expectation) LessEqual(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(LessEqual(comparable, opts...))
}

// Between chains the Between check, configured through WithMin
// and WithMax.
func (e *Expectation) Between(opts ...Option) *Expectation {
	return e.apply(Between(nil, opts...))
}

// NotBetween chains the NotBetween check.
func (e *Expectation) NotBetween(opts ...Option) *Expectation {
	return e.apply(NotBetween(nil, opts...))
}

// Positive chains the Positive check.
func (e *Expectation) Positive(opts ...Option) *Expectation {
	return e.apply(Positive(opts...))
}

// Negative chains the Negative check.
func (e *Expectation) Negative(opts ...Option) *Expectation {
	return e.apply(Negative(opts...))
}

// Even chains the Even check.
func (e *Expectation) Even(opts ...Option) *Expectation {
	return e.apply(Even(opts...))
}

// Odd chains the Odd check.
func (e *Expectation) Odd(opts ...Option) *Expectation {
	return e.apply(Odd(opts...))
}

// Monotone chains the Monotone check.
func (e *Expectation) Monotone(
	comparable any, opts ...Option,
) *Expectation {
	return e.apply(Monotone(comparable, opts...))
}

// Increasing chains the Increasing check.
func (e *Expectation) Increasing(opts ...Option) *Expectation {
	return e.apply(Increasing(opts...))
}

// StrictlyIncreasing chains the StrictlyIncreasing check.
func (e *Expectation) StrictlyIncreasing(
	opts ...Option,
) *Expectation {
	return e.apply(StrictlyIncreasing(opts...))
}

// Decreasing chains the Decreasing check.
func (e *Expectation) Decreasing(opts ...Option) *Expectation {
	return e.apply(Decreasing(opts...))
}

// StrictlyDecreasing chains the StrictlyDecreasing check.
func (e *Expectation) StrictlyDecreasing(
	opts ...Option,
) *Expectation {
	return e.apply(StrictlyDecreasing(opts...))
}
