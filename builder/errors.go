// SPDX-License-Identifier: MIT
// Package: fakegen/builder
//
// errors.go - sentinel errors and structured error types for the builder package.
//
// Error policy (explicit and strict):
//   - Sentinels are package-level variables; callers branch with errors.Is.
//   - Configuration mistakes surface synchronously as *ConfigurationError at
//     the call that introduced them (errors.Is(err, ErrConfiguration) and
//     errors.Is(err, <detail sentinel>) both hold).
//   - Validation findings are accumulated, then surfaced once as a
//     *ValidationError listing every missing and forbidden field.
//   - ErrInvariant marks internal inconsistencies; it is never swallowed.
//   - Runtime code never panics; panics are confined to option constructors.

package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration classifies every error returned by a rule-registering call.
var ErrConfiguration = errors.New("builder: invalid configuration")

// ErrUnknownField indicates a rule names a field absent from the field map.
var ErrUnknownField = errors.New("builder: unknown field")

// ErrTypeMismatch indicates a rule value cannot be assigned to the field's type.
var ErrTypeMismatch = errors.New("builder: value type mismatch")

// ErrNestedRuleSet indicates RuleSet was called from inside another RuleSet.
var ErrNestedRuleSet = errors.New("builder: nested rule set")

// ErrInvalidRuleSet indicates an empty rule-set name or one containing a comma.
var ErrInvalidRuleSet = errors.New("builder: invalid rule set name")

// ErrDuplicateField indicates a field map declares the same name twice.
var ErrDuplicateField = errors.New("builder: duplicate field")

// ErrNilRule indicates a nil closure was passed where one is required.
var ErrNilRule = errors.New("builder: nil rule")

// ErrInvalidField indicates an empty field name or one starting with '#'.
var ErrInvalidField = errors.New("builder: invalid field name")

// ErrNilSetter indicates a field was declared without an assignment function.
var ErrNilSetter = errors.New("builder: nil field setter")

// ErrValidation classifies *ValidationError.
var ErrValidation = errors.New("builder: validation failed")

// ErrInvariant indicates internal state disagreed with a validated configuration.
var ErrInvariant = errors.New("builder: invariant violated")

// ErrBadCount indicates a negative instance count.
var ErrBadCount = errors.New("builder: invalid count")

// ErrNilInstance indicates Populate received a nil target.
var ErrNilInstance = errors.New("builder: nil instance")

// ConfigurationError reports a rejected registration.
//
//	var ce *builder.ConfigurationError
//	if errors.As(err, &ce) { log.Println(ce.Op, ce.Field) }
type ConfigurationError struct {
	Op    string // registering method, e.g. MethodRuleFor
	Set   string // rule set the call targeted
	Field string // field name, empty when not applicable
	Err   error  // detail sentinel (ErrUnknownField, ErrTypeMismatch, ...)
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Set != "" {
		fmt.Fprintf(&b, " [%s]", e.Set)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field %q", e.Field)
	}
	fmt.Fprintf(&b, ": %v", e.Err)

	return b.String()
}

// Unwrap exposes both ErrConfiguration and the detail error to errors.Is.
func (e *ConfigurationError) Unwrap() []error {
	return []error{ErrConfiguration, e.Err}
}

// ValidationError carries the full report of a failed validation.
type ValidationError struct {
	Type     string // target type name, e.g. "sample.Person"
	RuleSets []string
	Result   ValidationResult
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "validation failed for %s [rule sets: %s]", e.Type, strings.Join(e.RuleSets, ","))
	if len(e.Result.Missing) > 0 {
		fmt.Fprintf(&b, "; missing rules: %s", strings.Join(e.Result.Missing, ", "))
	}
	if len(e.Result.Forbidden) > 0 {
		fmt.Fprintf(&b, "; forbidden rules: %s", strings.Join(e.Result.Forbidden, ", "))
	}
	for _, m := range e.Result.Messages {
		b.WriteString("; ")
		b.WriteString(m)
	}

	return b.String()
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// configErr builds a *ConfigurationError.
func configErr(op, set, field string, err error) error {
	return &ConfigurationError{Op: op, Set: set, Field: field, Err: err}
}

// builderErrorf prefixes a wrapped error with the method name:
// "<Method>: <formatted message>".
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}
