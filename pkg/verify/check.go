// Package verify provides composable value checks: small named
// validation rules that evaluate a subject value, or a subject
// against a comparable operand, and report failure through a
// structured error.
//
// Checks are configured first and applied later:
//
//	chk := verify.Greater(4)
//	if err := chk.Verify(5); err != nil { ... }
//
// or applied in a batch against one value:
//
//	err := verify.That(5, verify.Greater(4), verify.Less(6))
//
// or chained fluently:
//
//	err := verify.Expect(5).Truthy().Greater(4).Err()
//
// Every check is reachable under its canonical name and under
// method-style spellings ("is_greater", "to_be_greater") through
// the registry used by Expectation.To.
package verify

import (
	"fmt"
	"reflect"
	"strings"

	"digital.vasic.verify/pkg/predicates"
)

// Op is the comparison function of a check. It receives the
// subject value and the configured check, and reports whether
// the check holds. Implementations return false for
// type-incompatible input instead of panicking; a panic that
// does escape is converted into ordinary failure.
type Op func(value any, chk *Check) bool

// Options carries the per-check configuration shared by all
// checks.
type Options struct {
	// Msg overrides the rendered failure message outright.
	Msg string

	// Min is the lower bound for range-style checks. A nil
	// bound means unbounded on that side.
	Min any

	// Max is the upper bound for range-style checks.
	Max any

	// Flags holds inline regular-expression flags (e.g., "i")
	// applied when a pattern string is compiled.
	Flags string
}

// Option configures a check at construction time.
type Option func(*Options)

// WithMsg overrides the failure message with an exact string.
func WithMsg(msg string) Option {
	return func(o *Options) {
		o.Msg = msg
	}
}

// WithMin sets the lower bound of a range-style check.
func WithMin(min any) Option {
	return func(o *Options) {
		o.Min = min
	}
}

// WithMax sets the upper bound of a range-style check.
func WithMax(max any) Option {
	return func(o *Options) {
		o.Max = max
	}
}

// WithFlags sets inline regular-expression flags for Match.
func WithFlags(flags string) Option {
	return func(o *Options) {
		o.Flags = flags
	}
}

// Check is one configured validation rule. A Check is immutable
// after construction and holds no state about the values it has
// seen, so one configured instance can be applied to any number
// of subject values, including concurrently.
type Check struct {
	name          string
	reason        string
	op            Op
	comparable    any
	hasComparable bool
	opts          Options
}

// newCheck builds a single-operand check.
func newCheck(
	name, reason string,
	op Op,
	opts []Option,
) *Check {
	c := &Check{name: name, reason: reason, op: op}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// newComparator builds a two-operand check with a fixed
// comparable.
func newComparator(
	name, reason string,
	comparable any,
	op Op,
	opts []Option,
) *Check {
	c := newCheck(name, reason, op, opts)
	c.comparable = comparable
	c.hasComparable = true
	return c
}

// Name returns the canonical name of the check.
func (c *Check) Name() string {
	return c.name
}

// Comparable returns the configured operand and whether the
// check has one.
func (c *Check) Comparable() (any, bool) {
	return c.comparable, c.hasComparable
}

// Verify applies the check to a subject value. It returns nil
// on success and an *Error carrying the rendered message on
// failure.
func (c *Check) Verify(value any) error {
	if c.test(value) {
		return nil
	}

	return &Error{
		Check:      c.name,
		Message:    c.message(value),
		Value:      value,
		Comparable: c.comparable,
	}
}

// test evaluates the operation as a plain boolean. A panic from
// the operation (e.g., reflection over type-incompatible input)
// counts as failure, never as a different error kind.
func (c *Check) test(value any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	return c.op(value, c)
}

// message renders the failure message for a subject value. The
// stored template may reference {value}, {comparable} (or its
// synonym {pattern}), {min}, {max}, and {flags}; a configured
// Msg option wins outright.
func (c *Check) message(value any) string {
	if c.opts.Msg != "" {
		return c.opts.Msg
	}

	r := strings.NewReplacer(
		"{value}", formatValue(value),
		"{comparable}", formatValue(c.comparable),
		"{pattern}", formatValue(c.comparable),
		"{min}", formatValue(c.opts.Min),
		"{max}", formatValue(c.opts.Max),
		"{flags}", c.opts.Flags,
	)

	return r.Replace(c.reason)
}

// String describes the configured check.
func (c *Check) String() string {
	if c.hasComparable {
		return fmt.Sprintf(
			"%s(%s)", c.name, formatValue(c.comparable),
		)
	}

	return c.name + "()"
}

// formatValue renders a value for failure messages. Functions
// print as their type rather than a pointer, and nil prints as
// "nil".
func formatValue(v any) string {
	if v == nil {
		return "nil"
	}

	if chk, ok := v.(*Check); ok {
		return chk.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		return rv.Type().String()
	}

	return fmt.Sprintf("%v", v)
}

// truthy is shorthand used by several operations.
func truthy(v any) bool {
	return predicates.Truthy(v)
}
