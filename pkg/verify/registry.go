package verify

import (
	"fmt"
	"strings"
	"sync"
)

// Factory builds a configured check from chained-call arguments.
// args holds the positional operands (zero or one for most
// checks) and opts the functional options separated out of the
// call.
type Factory func(args []any, opts []Option) (*Check, error)

// Registration ties a canonical check name and its alias
// spellings to the factory that builds the check. Every alias
// resolves to the identical Registration, which is the identity
// contract alias tests verify.
type Registration struct {
	// Name is the canonical, class-style name (e.g. "Greater").
	Name string

	// Aliases are irregular spellings that the generic
	// name-transform rules cannot derive (e.g. "matches",
	// "does_not_contain"). Regular method-style spellings like
	// "is_greater" or "to_be_greater" resolve through the
	// transform rules and need no entry here.
	Aliases []string

	// Factory builds the configured check.
	Factory Factory
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Registration)
)

// RegisterCheck adds a check registration under its canonical
// name and all alias spellings. It returns an error if any
// spelling is already taken, so extensions cannot silently
// shadow built-ins.
func RegisterCheck(reg *Registration) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	names := append([]string{reg.Name}, reg.Aliases...)
	for _, n := range names {
		if _, exists := registry[n]; exists {
			return fmt.Errorf(
				"check already registered: %s", n,
			)
		}
	}

	for _, n := range names {
		registry[n] = reg
	}

	return nil
}

// mustRegister registers a built-in check at package init.
func mustRegister(
	name string,
	factory Factory,
	aliases ...string,
) {
	err := RegisterCheck(&Registration{
		Name:    name,
		Aliases: aliases,
		Factory: factory,
	})
	if err != nil {
		panic(err)
	}
}

// Resolve maps a name to a check registration. Resolution tries,
// in order: the exact spelling (canonical or alias), the
// snake_case spelling converted to the canonical PascalCase
// form, the same conversion after stripping a recognized prefix
// ("to_be_", "is_", and friends, with "not" infixes mapping to
// the Not* variant), and finally a small table of irregular
// names. An unresolvable name yields a *ResolveError wrapping
// ErrUnknownCheck.
func Resolve(name string) (*Registration, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if reg, ok := registry[name]; ok {
		return reg, nil
	}

	if reg, ok := registry[pascalCase(name)]; ok {
		return reg, nil
	}

	if canon, ok := stripChainPrefix(name); ok {
		if reg, ok := registry[canon]; ok {
			return reg, nil
		}
	}

	if canon, ok := irregularNames[name]; ok {
		if reg, ok := registry[canon]; ok {
			return reg, nil
		}
	}

	return nil, &ResolveError{Name: name}
}

// irregularNames maps fixed method-style spellings that follow
// no transform rule.
var irregularNames = map[string]string{
	"does":     "Predicate",
	"does_not": "Not",
	"to_be":    "Is",
	"is":       "Is",
}

// chainPrefixes lists recognized method-style prefixes in
// longest-first order. Prefixes carrying a "not" map the
// remainder to its Not* variant.
var chainPrefixes = []struct {
	prefix string
	negate bool
}{
	{"to_not_be_", true},
	{"to_be_not_", true},
	{"is_not_", true},
	{"does_not_have_", true},
	{"does_not_", true},
	{"to_not_have_", true},
	{"to_not_", true},
	{"to_be_", false},
	{"to_have_", false},
	{"is_", false},
	{"has_", false},
	{"to_", false},
}

// stripChainPrefix removes a recognized prefix and returns the
// canonical candidate name for the remainder.
func stripChainPrefix(name string) (string, bool) {
	for _, p := range chainPrefixes {
		rest, ok := strings.CutPrefix(name, p.prefix)
		if !ok || rest == "" {
			continue
		}

		canon := pascalCase(rest)
		if p.negate {
			canon = "Not" + canon
		}

		return canon, true
	}

	return "", false
}

// pascalCase converts a lower_case_with_underscores name to the
// library's PascalCase canonical style.
func pascalCase(name string) string {
	words := strings.Split(name, "_")
	var sb strings.Builder

	for _, w := range words {
		if w == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(w[:1]))
		sb.WriteString(w[1:])
	}

	return sb.String()
}

// buildCheck resolves a name and instantiates the check with the
// given arguments, separating functional options from positional
// operands.
func buildCheck(name string, args []any) (*Check, error) {
	reg, err := Resolve(name)
	if err != nil {
		return nil, err
	}

	plain, opts := splitArgs(args)

	return reg.Factory(plain, opts)
}

// splitArgs separates Option values from positional operands.
func splitArgs(args []any) ([]any, []Option) {
	var (
		plain []any
		opts  []Option
	)

	for _, a := range args {
		if opt, ok := a.(Option); ok {
			opts = append(opts, opt)
			continue
		}
		plain = append(plain, a)
	}

	return plain, opts
}

// nullary adapts a zero-operand constructor into a Factory.
func nullary(name string, ctor func(...Option) *Check) Factory {
	return func(args []any, opts []Option) (*Check, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf(
				"%s takes no arguments, got %d",
				name, len(args),
			)
		}

		return ctor(opts...), nil
	}
}

// unary adapts a one-operand constructor into a Factory.
func unary(
	name string,
	ctor func(any, ...Option) *Check,
) Factory {
	return func(args []any, opts []Option) (*Check, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf(
				"%s takes exactly one argument, got %d",
				name, len(args),
			)
		}

		return ctor(args[0], opts...), nil
	}
}

// bounded adapts a range-style constructor that accepts an
// optional bounds operand alongside WithMin/WithMax options.
func bounded(
	name string,
	ctor func(any, ...Option) *Check,
) Factory {
	return func(args []any, opts []Option) (*Check, error) {
		switch len(args) {
		case 0:
			return ctor(nil, opts...), nil
		case 1:
			return ctor(args[0], opts...), nil
		default:
			return nil, fmt.Errorf(
				"%s takes at most one argument, got %d",
				name, len(args),
			)
		}
	}
}
