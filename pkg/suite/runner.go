package suite

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"digital.vasic.verify/pkg/verify"
)

// Runner evaluates suites against the verify registry.
type Runner struct {
	logger *zap.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used by the runner.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a suite runner. Without WithLogger it runs
// silently.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Result aggregates the outcome of one suite run.
type Result struct {
	Suite    string        `json:"suite"`
	Cases    []CaseResult  `json:"cases"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}

// OK reports whether every case passed.
func (r *Result) OK() bool {
	return r.Failed == 0
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Err      error         `json:"-"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Run evaluates every case of a suite. All cases run; failures
// are collected per case rather than aborting the suite.
func (r *Runner) Run(s *Suite) *Result {
	start := time.Now()
	res := &Result{
		Suite: s.Name,
		Cases: make([]CaseResult, 0, len(s.Cases)),
	}

	r.logger.Info("running suite",
		zap.String("suite", s.Name),
		zap.Int("cases", len(s.Cases)),
	)

	for i := range s.Cases {
		cr := r.runCase(s, &s.Cases[i])
		res.Cases = append(res.Cases, cr)

		if cr.Passed {
			res.Passed++
		} else {
			res.Failed++
		}
	}

	res.Duration = time.Since(start)

	r.logger.Info("suite finished",
		zap.String("suite", s.Name),
		zap.Int("passed", res.Passed),
		zap.Int("failed", res.Failed),
		zap.Duration("duration", res.Duration),
	)

	return res
}

// runCase evaluates one case: resolves its subject, builds its
// checks, and applies them all to the subject.
func (r *Runner) runCase(s *Suite, c *Case) CaseResult {
	start := time.Now()
	cr := CaseResult{Name: c.Name}

	subject, err := resolveSubject(s, c)
	if err == nil {
		err = r.checkSubject(subject, c.Checks)
	}

	cr.Duration = time.Since(start)

	if err != nil {
		cr.Err = err
		cr.Message = err.Error()

		r.logger.Warn("case failed",
			zap.String("suite", s.Name),
			zap.String("case", c.Name),
			zap.Error(err),
		)

		return cr
	}

	cr.Passed = true

	r.logger.Debug("case passed",
		zap.String("suite", s.Name),
		zap.String("case", c.Name),
	)

	return cr
}

// checkSubject builds every check definition and applies them
// all, aggregating failures.
func (r *Runner) checkSubject(
	subject any,
	defs []CheckDef,
) error {
	var result *multierror.Error

	var checks []any
	for i := range defs {
		chk, err := buildDefined(&defs[i])
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		checks = append(checks, chk)
	}

	if err := verify.That(subject, checks...); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// resolveSubject picks the case's subject value. A named target
// that is missing from the suite fails the case.
func resolveSubject(s *Suite, c *Case) (any, error) {
	if c.Target == "" {
		return c.Value, nil
	}

	v, ok := s.Values[c.Target]
	if !ok {
		return nil, fmt.Errorf(
			"case %s: no suite value named %q",
			c.Name, c.Target,
		)
	}

	return v, nil
}

// buildDefined instantiates a check from its definition, either
// through the registry or by compiling an expression.
func buildDefined(def *CheckDef) (*verify.Check, error) {
	if def.Expr != "" {
		return buildExprCheck(def)
	}

	reg, err := verify.Resolve(def.Name)
	if err != nil {
		return nil, err
	}

	var args []any
	if def.Value != nil {
		args = append(args, def.Value)
	}

	return reg.Factory(args, defOptions(def))
}

// buildExprCheck compiles the definition's expression and wraps
// it as a predicate check. The subject binds as "value".
func buildExprCheck(def *CheckDef) (*verify.Check, error) {
	program, err := expr.Compile(
		def.Expr,
		expr.Env(map[string]any{"value": nil}),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to compile expr %q: %w", def.Expr, err,
		)
	}

	stmt := def.Expr
	fn := func(v any) (bool, string) {
		out, err := expr.Run(
			program, map[string]any{"value": v},
		)
		if err != nil {
			return false, fmt.Sprintf(
				"expr %q: %v", stmt, err,
			)
		}

		ok, _ := out.(bool)

		return ok, fmt.Sprintf("expr %q is false", stmt)
	}

	return verify.Predicate(fn, defOptions(def)...), nil
}

// defOptions converts a definition's inline configuration into
// check options.
func defOptions(def *CheckDef) []verify.Option {
	var opts []verify.Option

	if def.Msg != "" {
		opts = append(opts, verify.WithMsg(def.Msg))
	}
	if def.Min != nil {
		opts = append(opts, verify.WithMin(def.Min))
	}
	if def.Max != nil {
		opts = append(opts, verify.WithMax(def.Max))
	}
	if def.Flags != "" {
		opts = append(opts, verify.WithFlags(def.Flags))
	}

	return opts
}
