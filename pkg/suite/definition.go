// Package suite runs declarative check suites: collections of
// named cases, each binding a subject value to a list of checks,
// loaded from YAML or JSON files and evaluated through the
// verify registry.
package suite

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suite describes a set of check cases declaratively. It
// captures everything needed to evaluate the cases without
// requiring Go code.
type Suite struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Values are named subject values cases can reference
	// through their Target field.
	Values map[string]any `json:"values,omitempty" yaml:"values,omitempty"`

	Cases []Case `json:"cases" yaml:"cases"`
}

// Case binds one subject value to the checks it must satisfy.
// The subject is either the inline Value or, when Target is set,
// the named entry in the suite's Values map.
type Case struct {
	Name string `json:"name" yaml:"name"`

	// Target names a suite value to check. A target that does
	// not exist in the suite fails the case.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Value is the inline subject, used when Target is empty.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	Checks []CheckDef `json:"checks" yaml:"checks"`
}

// CheckDef defines a single check to evaluate against a case's
// subject. In suite files it may be written as a mapping or as a
// compact "name:operand" string:
//
//	checks:
//	  - greater:4
//	  - name: between
//	    min: 4
//	    max: 6
//	  - expr: "value % 2 == 1"
type CheckDef struct {
	// Name resolves through the verify registry; method-style
	// spellings like "to_be_greater" work.
	Name string `json:"name" yaml:"name"`

	// Value is the comparable operand for two-operand checks.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// Expr is an expression evaluated against the subject bound
	// as "value"; a true result passes. Set instead of Name.
	Expr string `json:"expr,omitempty" yaml:"expr,omitempty"`

	// Msg overrides the failure message.
	Msg string `json:"msg,omitempty" yaml:"msg,omitempty"`

	// Min and Max configure range-style checks.
	Min any `json:"min,omitempty" yaml:"min,omitempty"`
	Max any `json:"max,omitempty" yaml:"max,omitempty"`

	// Flags holds inline regular-expression flags for match
	// checks.
	Flags string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// checkDefAlias avoids unmarshal recursion.
type checkDefAlias CheckDef

// UnmarshalYAML accepts either a mapping or a compact
// "name:operand" scalar string.
func (d *CheckDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}

		*d = ParseCheckString(s)

		return nil
	}

	var a checkDefAlias
	if err := node.Decode(&a); err != nil {
		return err
	}

	*d = CheckDef(a)

	return d.validate()
}

// UnmarshalJSON accepts either an object or a compact
// "name:operand" string.
func (d *CheckDef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*d = ParseCheckString(s)

		return nil
	}

	var a checkDefAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	*d = CheckDef(a)

	return d.validate()
}

// validate rejects definitions that name neither a check nor an
// expression, or both.
func (d *CheckDef) validate() error {
	switch {
	case d.Name == "" && d.Expr == "":
		return fmt.Errorf(
			"check definition needs a name or an expr",
		)
	case d.Name != "" && d.Expr != "":
		return fmt.Errorf(
			"check definition %q cannot also carry an expr",
			d.Name,
		)
	}

	return nil
}

// ParseCheckString parses a compact check string into its name
// and optional operand. Operands take their natural scalar type,
// so numeric ones compare numerically:
//
//	"greater:4"   -> ("greater", 4)
//	"truthy"      -> ("truthy", nil)
//	"match:^ab+$" -> ("match", "^ab+$")
func ParseCheckString(s string) CheckDef {
	parts := strings.SplitN(s, ":", 2)

	def := CheckDef{Name: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		def.Value = coerceOperand(parts[1])
	}

	return def
}

// coerceOperand types a compact operand the way a YAML scalar
// would be typed: integer, float, or boolean when it parses as
// one, the raw string otherwise.
func coerceOperand(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	switch s {
	case "true":
		return true
	case "false":
		return false
	}

	return s
}
