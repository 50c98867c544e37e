package verify

// Not asserts that a wrapped check or predicate fails for the
// subject value. The wrapped check's own failure is consumed as
// a boolean signal and never propagates; its success makes the
// Not check fail. Not accepts anything Predicate accepts, plus
// configured *Check values:
//
//	verify.Not(verify.In([]any{1, 2, 3}))
//	verify.Not(func(v any) bool { return v == nil })
func Not(target any, opts ...Option) *Check {
	inner, err := coerceCheck(target)

	op := func(value any, _ *Check) bool {
		return err == nil && !inner.test(value)
	}

	return newComparator(
		"Not",
		"the negation of {comparable} should not be true "+
			"when evaluated with {value}",
		target,
		op,
		opts,
	)
}

// negated builds a named Not* variant of an inner check. The
// inner check's operand and options carry over so the positive
// framing of the reason template still renders, and the inner
// failure signal is inverted rather than propagated.
func negated(
	name, reason string,
	inner *Check,
	opts []Option,
) *Check {
	c := &Check{
		name:   name,
		reason: reason,
		op: func(value any, _ *Check) bool {
			return !inner.test(value)
		},
		comparable:    inner.comparable,
		hasComparable: inner.hasComparable,
		opts:          inner.opts,
	}

	for _, opt := range opts {
		opt(&c.opts)
	}

	return c
}
