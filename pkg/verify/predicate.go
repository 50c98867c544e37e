package verify

import "fmt"

// Predicate asserts that a subject value satisfies an arbitrary
// predicate function, letting external functions participate in
// batches and chains alongside built-in checks. Supported
// shapes:
//
//	func(any) bool            true means pass
//	func(any) error           nil means pass
//	func(any) (bool, string)  explanation is ignored here
//	func(any)                 returning normally means pass;
//	                          a panic counts as failure
//
// A predicate that panics never propagates the panic; it simply
// fails.
func Predicate(fn any, opts ...Option) *Check {
	return newComparator(
		"Predicate",
		"the evaluation of {value} using {comparable} is false",
		fn,
		opPredicate,
		opts,
	)
}

func opPredicate(value any, chk *Check) bool {
	return callPredicate(chk.comparable, value)
}

// callPredicate invokes a wrapped predicate against a value.
// Panics escape to Check.test, which converts them to failure.
func callPredicate(fn, value any) bool {
	switch f := fn.(type) {
	case *Check:
		return f.test(value)
	case func(any) bool:
		return f(value)
	case func(any) error:
		return f(value) == nil
	case func(any) (bool, string):
		ok, _ := f(value)
		return ok
	case func(any):
		f(value)
		return true
	}

	return false
}

// coerceCheck adapts a batch or composite entry into a *Check,
// wrapping bare predicate functions so ad hoc predicates get the
// same failure handling as built-in checks.
func coerceCheck(v any) (*Check, error) {
	if chk, ok := v.(*Check); ok {
		return chk, nil
	}

	if isPredicateFunc(v) {
		return Predicate(v), nil
	}

	return nil, fmt.Errorf(
		"%s is not a check or predicate", formatValue(v),
	)
}

func isPredicateFunc(v any) bool {
	switch v.(type) {
	case func(any) bool,
		func(any) error,
		func(any) (bool, string),
		func(any):
		return true
	}

	return false
}
