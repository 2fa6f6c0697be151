// SPDX-License-Identifier: MIT
// Package: fakegen/builder
//
// validators.go - rule coverage checks.
//
// Per rule set, in selection order:
//   (a) every Forced field needs a non-Ignore rule, whatever the strict flag;
//   (b) every Forbidden field must have no non-Ignore rule, whatever the flag;
//   (c) with strict off, stop;
//   (d) with strict on, every Default field needs a rule (Ignore counts) and
//       every Rules block is itself a violation, since its coverage is unknowable.
//
// Findings from all sets are merged; Valid is true only when none was found.
// Rules blocks never satisfy a Forced field, and neither does Ignore.

package builder

import (
	"fmt"
	"slices"
)

// ValidationResult is the merged report for one rule-set selection.
type ValidationResult struct {
	Valid     bool     `json:"valid" yaml:"valid"`
	Missing   []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Forbidden []string `json:"forbidden,omitempty" yaml:"forbidden,omitempty"`
	Messages  []string `json:"messages,omitempty" yaml:"messages,omitempty"`
}

// validateRuleSets computes the report for selected. The caller holds the
// state read lock. Complexity: O(|selected| * (|fields| + |entries|)).
func validateRuleSets[T any](fm *FieldMap[T], sets map[string]*ruleSet[T], selected []string, strictDefault bool) ValidationResult {
	res := ValidationResult{Valid: true}
	missing := make(map[string]struct{})
	forbidden := make(map[string]struct{})

	for _, name := range selected {
		rs := sets[name] // nil for a set nothing was registered under

		for i := range fm.fields {
			f := &fm.fields[i]
			e, has := rs.lookup(f.Name)
			resolving := has && e.resolving()

			switch f.Category {
			case Forced:
				if !resolving {
					missing[f.Name] = struct{}{}
					res.Messages = append(res.Messages,
						fmt.Sprintf("%s: forced field %q has no rule", name, f.Name))
				}
			case Forbidden:
				if resolving {
					forbidden[f.Name] = struct{}{}
					res.Messages = append(res.Messages,
						fmt.Sprintf("%s: forbidden field %q has a rule", name, f.Name))
				}
			}
		}

		if !strictFor(rs, strictDefault) {
			continue
		}

		for i := range fm.fields {
			f := &fm.fields[i]
			if f.Category != Default {
				continue
			}
			if _, has := rs.lookup(f.Name); !has {
				missing[f.Name] = struct{}{}
			}
		}
		if rs != nil && rs.bulks > 0 {
			res.Messages = append(res.Messages, fmt.Sprintf(
				"%s: %d Rules block(s) cannot be verified in strict mode; use RuleFor per field or disable strict mode",
				name, rs.bulks))
			res.Valid = false
		}
	}

	res.Missing = sortedKeys(missing)
	res.Forbidden = sortedKeys(forbidden)
	if len(res.Missing) > 0 || len(res.Forbidden) > 0 {
		res.Valid = false
	}

	return res
}

// strictFor resolves the strict flag of rs.
func strictFor[T any](rs *ruleSet[T], strictDefault bool) bool {
	if rs == nil || rs.strict == nil {
		return strictDefault
	}

	return *rs.strict
}

func sortedKeys(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}
