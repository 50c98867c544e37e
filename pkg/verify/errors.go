package verify

import (
	"errors"
	"fmt"
)

// ErrCheckFailed is the sentinel error every failed check
// unwraps to.
var ErrCheckFailed = errors.New("check failed")

// ErrUnknownCheck is the sentinel error for chained-call names
// that resolve to no registered check.
var ErrUnknownCheck = errors.New("not a valid assertion")

// Error represents a single failed check. Its Error text is the
// rendered failure message, so a custom message set through
// WithMsg surfaces verbatim.
type Error struct {
	// Check is the canonical name of the failed check.
	Check string

	// Message is the rendered failure message.
	Message string

	// Value is the subject value that was checked.
	Value any

	// Comparable is the configured operand, when the check
	// had one.
	Comparable any
}

// Error returns the rendered failure message.
func (e *Error) Error() string {
	if e == nil {
		return ErrCheckFailed.Error()
	}

	return e.Message
}

// Unwrap returns the sentinel check-failure error so callers
// can match with errors.Is.
func (e *Error) Unwrap() error {
	return ErrCheckFailed
}

// ResolveError reports a chained-call name that could not be
// mapped to a registered check.
type ResolveError struct {
	// Name is the spelling that failed to resolve.
	Name string
}

// Error returns the resolution failure message.
func (e *ResolveError) Error() string {
	return fmt.Sprintf("%q is not a valid assertion", e.Name)
}

// Unwrap returns the sentinel unknown-check error.
func (e *ResolveError) Unwrap() error {
	return ErrUnknownCheck
}
