// Package builder turns a field map and a set of named rule sets into a
// deterministic generator of populated instances.
//
// A target type T describes itself once with a FieldMap: an ordered list of
// named, typed setters (see Bind) plus a constructor. A Builder[T] then
// collects rules against those names and produces instances on demand.
//
// The package offers the following key components:
//
//   - Field capability map:
//     – Field, Bind:        one named, typed, categorised setter.
//     – Category:           Default, Forced, Ignored, Forbidden.
//     – FieldMap:           immutable, shareable across Builders.
//   - Rule registration (each call returns a *ConfigurationError on misuse):
//     – RuleFor, RuleForValue, Rule, RuleForType, RuleForIndex.
//     – Rules:              bulk block, lenient mode only.
//     – Ignore:             deliberate no-op for a field.
//     – CustomInstantiator, FinishWith: per rule set hooks.
//     – RuleSet:            scoped registration under a named set.
//   - Generation:
//     – Generate, GenerateN, GenerateSeq, Stream, Populate, GenerateIn, GenerateNIn.
//   - Validation:
//     – Validate, ValidationFor, AssertValid, Revalidate, StrictMode.
//   - Index label schemes (IDFn):
//     – DecimalID, LetterID, Base36ID, HexID, ExcelColumnID, PrefixedID.
//
// Rule sets:
//
//   - Registration outside RuleSet targets "default". Names are trimmed and
//     lowercased; "a,b" style selections are split on commas.
//   - A selection applies its sets left to right; a later set's rule for the
//     same field overwrites the earlier value.
//   - Nested RuleSet calls are rejected with ErrNestedRuleSet.
//
// Guarantees:
//
//   - Same seed, same registrations and same call sequence give identical
//     instances.
//   - Builders never panic at runtime; only option constructors and
//     MustFieldMap do.
//   - Validation results are cached per selection; Revalidate drops them.
//   - Builders are safe for concurrent use. Builders sharing one source take
//     turns per instance; nested builds go through GenerateIn or GenerateNIn.
package builder
