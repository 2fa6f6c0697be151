// SPDX-License-Identifier: MIT
// Package: fakegen/builder
//
// generate.go - the generation pipeline and validation entry points.
//
// Pipeline per instance:
//  1. advance the hub's counters (NewContext);
//  2. pick the first custom instantiator among the selected sets, else the
//     field map's constructor;
//  3. construct;
//  4. validate through the cache and fail before any field is touched;
//  5. apply each selected set's rules in registration order (Ignore is a no-op);
//  6. run finalizers in selection order;
//  7. return.
//
// Concurrency:
//   - Steps 1-6 run inside the facade source's Exclusive section, so two
//     Builders sharing a source never interleave whole builds.
//   - A rule that builds nested objects must call GenerateIn or GenerateNIn
//     with its own hub; Generate, GenerateN, GenerateSeq or Stream on a
//     Builder sharing the caller's source would wait on the section the
//     caller already holds.
//
// Determinism:
//   - Same seed, same rules, same call sequence ⇒ identical instances.

package builder

import (
	"iter"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/katalvlaran/fakegen/faker"
	"github.com/katalvlaran/fakegen/randomizer"
)

// Generate builds one instance from the selected rule sets ("default" when none).
// Inside a rule use GenerateIn instead.
// Errors: *ValidationError, rule/instantiator/finalizer errors wrapped with
// context, ErrTypeMismatch from assignments, ErrInvariant.
func (b *Builder[T]) Generate(ruleSets ...string) (*T, error) {
	return b.generate(parseRuleSets(ruleSets...))
}

// GenerateIn builds one instance from inside a rule of another Builder. When f
// draws from the same source as b the caller's critical section is reused;
// otherwise b's own section is taken.
func (b *Builder[T]) GenerateIn(f *faker.Faker, ruleSets ...string) (*T, error) {
	sets := parseRuleSets(ruleSets...)
	if f != nil && f.Random().Source() == b.source() {
		return b.build(MethodGenerate, sets)
	}

	return b.generate(sets)
}

// GenerateNIn builds count instances from inside a rule of another Builder,
// reusing the caller's critical section when f shares b's source.
// Errors: ErrBadCount for count < 0, otherwise as Generate.
func (b *Builder[T]) GenerateNIn(f *faker.Faker, count int, ruleSets ...string) ([]*T, error) {
	if f == nil || f.Random().Source() != b.source() {
		return b.GenerateN(count, ruleSets...)
	}
	if count < 0 {
		return nil, builderErrorf(MethodGenerateN, "count %d: %w", count, ErrBadCount)
	}

	sets := parseRuleSets(ruleSets...)
	out := make([]*T, 0, count)
	for i := 0; i < count; i++ {
		obj, err := b.build(MethodGenerateN, sets)
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}

	return out, nil
}

// GenerateN builds count instances eagerly. The first error aborts the batch.
// Inside a rule use GenerateNIn instead.
// Errors: ErrBadCount for count < 0, otherwise as Generate.
func (b *Builder[T]) GenerateN(count int, ruleSets ...string) ([]*T, error) {
	if count < 0 {
		return nil, builderErrorf(MethodGenerateN, "count %d: %w", count, ErrBadCount)
	}

	out := make([]*T, 0, count)
	for obj, err := range b.GenerateSeq(count, ruleSets...) {
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}

	return out, nil
}

// GenerateSeq yields count instances lazily; each is built when requested.
// After the first error the sequence yields that error and stops.
func (b *Builder[T]) GenerateSeq(count int, ruleSets ...string) iter.Seq2[*T, error] {
	sets := parseRuleSets(ruleSets...)

	return func(yield func(*T, error) bool) {
		if count < 0 {
			yield(nil, builderErrorf(MethodGenerateN, "count %d: %w", count, ErrBadCount))
			return
		}
		for i := 0; i < count; i++ {
			obj, err := b.generate(sets)
			if !yield(obj, err) || err != nil {
				return
			}
		}
	}
}

// Stream yields instances until the consumer stops or an error occurs.
func (b *Builder[T]) Stream(ruleSets ...string) iter.Seq2[*T, error] {
	sets := parseRuleSets(ruleSets...)

	return func(yield func(*T, error) bool) {
		for {
			obj, err := b.generate(sets)
			if !yield(obj, err) || err != nil {
				return
			}
		}
	}
}

// Populate applies the selected rule sets to an existing instance. The
// instantiator is skipped and the counters advance only if no instance was
// built before.
// Errors: ErrNilInstance, otherwise as Generate.
func (b *Builder[T]) Populate(obj *T, ruleSets ...string) error {
	if obj == nil {
		return builderErrorf(MethodPopulate, "%w", ErrNilInstance)
	}
	sets := parseRuleSets(ruleSets...)

	var err error
	b.source().Exclusive(func() {
		if !b.st.hub.HasContext() {
			b.st.hub.NewContext()
		}
		err = b.populate(MethodPopulate, obj, sets)
	})

	return err
}

// Validate reports whether the selection passes validation. With no
// selection every registered rule set is checked.
func (b *Builder[T]) Validate(ruleSets ...string) bool {
	return b.ValidationFor(ruleSets...).Valid
}

// ValidationFor computes a fresh report (refreshing the cached one) for the
// selection; with no selection every registered rule set is checked.
func (b *Builder[T]) ValidationFor(ruleSets ...string) ValidationResult {
	sets := b.validationSelection(ruleSets)
	res := b.computeValidation(sets)
	b.st.cache.Set(cacheKey(sets), res, gocache.NoExpiration)

	return res.clone()
}

// AssertValid is ValidationFor that returns a *ValidationError on failure.
func (b *Builder[T]) AssertValid(ruleSets ...string) error {
	sets := b.validationSelection(ruleSets)
	res := b.ValidationFor(ruleSets...)
	if res.Valid {
		return nil
	}

	return &ValidationError{Type: b.st.typeName, RuleSets: sets, Result: res}
}

// Revalidate drops every cached validation result so the next build
// re-checks the current rules.
func (b *Builder[T]) Revalidate() {
	b.st.cache.Flush()
	b.st.logger.Debug("validation cache flushed")
}

func (b *Builder[T]) source() *randomizer.Source { return b.st.hub.Random().Source() }

// generate builds one instance inside the source's critical section.
func (b *Builder[T]) generate(sets []string) (*T, error) {
	var (
		obj *T
		err error
	)
	b.source().Exclusive(func() {
		obj, err = b.build(MethodGenerate, sets)
	})

	return obj, err
}

// build runs the pipeline. The caller holds the build section.
func (b *Builder[T]) build(op string, sets []string) (*T, error) {
	st := b.st
	st.hub.NewContext()

	st.mu.RLock()
	create := func(*faker.Faker) (*T, error) { return st.fields.New(), nil }
	for _, name := range sets {
		if rs := st.sets[name]; rs != nil && rs.create != nil {
			create = rs.create
			break
		}
	}
	st.mu.RUnlock()

	obj, err := create(st.hub)
	if err != nil {
		return nil, builderErrorf(op, "instantiate: %w", err)
	}
	if obj == nil {
		return nil, builderErrorf(op, "instantiator returned nil: %w", ErrInvariant)
	}
	if err := b.populate(op, obj, sets); err != nil {
		return nil, err
	}

	return obj, nil
}

// populate runs validation, rules and finalizers. The caller holds the build section.
func (b *Builder[T]) populate(op string, obj *T, sets []string) error {
	st := b.st
	if res := b.cachedValidation(sets); !res.Valid {
		return &ValidationError{Type: st.typeName, RuleSets: sets, Result: res.clone()}
	}

	st.mu.RLock()
	plans := make([][]*entry[T], len(sets))
	finishers := make([]func(*faker.Faker, *T) error, len(sets))
	for i, name := range sets {
		rs := st.sets[name]
		plans[i] = rs.snapshot()
		if rs != nil {
			finishers[i] = rs.finish
		}
	}
	st.mu.RUnlock()

	for i, plan := range plans {
		for _, e := range plan {
			if err := b.apply(op, sets[i], obj, e); err != nil {
				return err
			}
		}
	}
	for i, fin := range finishers {
		if fin == nil {
			continue
		}
		if err := fin(st.hub, obj); err != nil {
			return builderErrorf(op, "%s: finalizer: %w", sets[i], err)
		}
	}

	return nil
}

// apply evaluates one entry and assigns its value.
func (b *Builder[T]) apply(op, set string, obj *T, e *entry[T]) error {
	hub := b.st.hub
	if e.bulkBlock() {
		if err := e.bulk(hub, obj); err != nil {
			return builderErrorf(op, "%s: rules block: %w", set, err)
		}
		return nil
	}
	if e.fn == nil {
		return nil
	}

	f, ok := b.st.fields.at(e.field)
	if !ok || f.Name != e.key {
		return builderErrorf(op, "%s: field %q not in field map: %w", set, e.key, ErrInvariant)
	}
	v, err := e.fn(hub, obj)
	if err != nil {
		return builderErrorf(op, "%s: rule %q: %w", set, e.key, err)
	}
	if err := f.Set(obj, v); err != nil {
		return builderErrorf(op, "%s: %w", set, err)
	}

	return nil
}

// cachedValidation returns the cached report for sets, computing it once.
func (b *Builder[T]) cachedValidation(sets []string) ValidationResult {
	key := cacheKey(sets)
	if v, ok := b.st.cache.Get(key); ok {
		if res, ok := v.(ValidationResult); ok {
			return res
		}
	}

	res := b.computeValidation(sets)
	b.st.cache.Set(key, res, gocache.NoExpiration)

	return res
}

func (b *Builder[T]) computeValidation(sets []string) ValidationResult {
	st := b.st
	st.mu.RLock()
	res := validateRuleSets(st.fields, st.sets, sets, st.cfg.strictDefault)
	st.mu.RUnlock()

	st.logger.Debug("validated rule sets",
		"rulesets", cacheKey(sets),
		"valid", res.Valid,
		"missing", len(res.Missing),
		"forbidden", len(res.Forbidden),
	)

	return res
}

// validationSelection resolves the sets checked by Validate and friends.
func (b *Builder[T]) validationSelection(ruleSets []string) []string {
	if hasNonBlank(ruleSets) {
		return parseRuleSets(ruleSets...)
	}
	if all := b.RuleSets(); len(all) > 0 {
		return all
	}

	return []string{DefaultRuleSet}
}

func hasNonBlank(ss []string) bool {
	for _, s := range ss {
		if strings.Trim(s, " \t"+ruleSetSeparator) != "" {
			return true
		}
	}

	return false
}

func cacheKey(sets []string) string { return strings.Join(sets, ruleSetSeparator) }

// clone copies the slices so callers cannot mutate cached reports.
func (r ValidationResult) clone() ValidationResult {
	r.Missing = append([]string(nil), r.Missing...)
	r.Forbidden = append([]string(nil), r.Forbidden...)
	r.Messages = append([]string(nil), r.Messages...)

	return r
}
