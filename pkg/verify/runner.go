package verify

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// That applies every check to one subject value. Checks may be
// configured *Check values or bare predicate functions, which
// are wrapped through Predicate for consistent handling. All
// checks run; there is no short-circuit, so each failure keeps
// its own message, and the combined error aggregates every
// failure. A nil return means every check passed.
func That(value any, checks ...any) error {
	var result *multierror.Error

	for _, entry := range checks {
		chk, err := coerceCheck(entry)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		if err := chk.Verify(value); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// RunAll is an alias of That.
var RunAll = That

// Expectation is a chained-check session holding one subject
// value. Each chained call applies a check to the held value and
// returns the same session; the first failure sticks, and later
// calls become no-ops, so the chain can be written in one
// expression and inspected once through Err.
type Expectation struct {
	value any
	err   error
}

// Expect starts a chained-check session for a value. Any checks
// passed alongside the value run immediately, exactly as if
// given to That.
func Expect(value any, checks ...any) *Expectation {
	e := &Expectation{value: value}

	if len(checks) > 0 {
		e.err = That(value, checks...)
	}

	return e
}

// Ensure is an alias of Expect.
var Ensure = Expect

// Value returns the subject value held by the session.
func (e *Expectation) Value() any {
	return e.value
}

// Err returns the first failure recorded by the chain, or nil
// when every chained check passed.
func (e *Expectation) Err() error {
	return e.err
}

// OK reports whether the chain has recorded no failure.
func (e *Expectation) OK() bool {
	return e.err == nil
}

// To resolves a check by name through the registry and applies
// it to the held value. Positional operands and functional
// options may be mixed in args:
//
//	verify.Expect(5).
//		To("to_be_greater", 4).
//		To("between", verify.WithMin(4), verify.WithMax(6))
//
// Runner entry-point names cannot be chained.
func (e *Expectation) To(
	name string,
	args ...any,
) *Expectation {
	if e.err != nil {
		return e
	}

	if isEntryPoint(name) {
		e.err = fmt.Errorf(
			"%q is a runner entry point and cannot be "+
				"chained", name,
		)
		return e
	}

	chk, err := buildCheck(name, args)
	if err != nil {
		e.err = err
		return e
	}

	return e.apply(chk)
}

// Should is an alias of To.
func (e *Expectation) Should(
	name string,
	args ...any,
) *Expectation {
	return e.To(name, args...)
}

// apply runs one configured check against the held value.
func (e *Expectation) apply(chk *Check) *Expectation {
	if e.err != nil {
		return e
	}

	e.err = chk.Verify(e.value)

	return e
}

// isEntryPoint reports whether a name refers to one of the
// runner's own entry points rather than a check.
func isEntryPoint(name string) bool {
	switch name {
	case "expect", "Expect", "ensure", "Ensure",
		"that", "That", "run_all", "RunAll":
		return true
	}

	return false
}
