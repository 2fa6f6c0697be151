// SPDX-License-Identifier: MIT
// Package: fakegen/builder
//
// api.go - Builder construction and rule registration.
//
// Design contract (strict):
//   - A Builder is a view over shared state plus the rule set its calls
//     target. New returns the top-level view (rule set "default"); RuleSet
//     hands a scoped view to its callback.
//   - Every rule-registering call validates synchronously and returns a
//     *ConfigurationError; nothing is deferred to generation time except
//     coverage checks, which belong to the validator.
//   - Rule content is expected to stay fixed once generation begins. Rules
//     added later are picked up by population but not re-validated until
//     Validate, AssertValid or Revalidate runs.
//   - Safety: never panic; registration after a failed call is still allowed.

package builder

import (
	"log/slog"
	"reflect"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/katalvlaran/fakegen/faker"
	"github.com/katalvlaran/fakegen/randomizer"
)

// state is shared by every view of one Builder.
type state[T any] struct {
	mu       sync.RWMutex
	fields   *FieldMap[T]
	sets     map[string]*ruleSet[T]
	setOrder []string
	cfg      builderConfig
	hub      *faker.Faker
	cache    *gocache.Cache
	logger   *slog.Logger
	typeName string
}

// Builder generates instances of T from registered rules.
type Builder[T any] struct {
	st     *state[T]
	set    string
	scoped bool
}

// New creates a Builder over fields.
//
//	b, err := builder.New(personFields, builder.WithSeed(42))
//	err = errors.Join(
//		builder.Rule(b, "first", func(f *faker.Faker, _ *Person) string { return f.Name.FirstName() }),
//		b.RuleForValue("age", 30),
//	)
//	p, err := b.Generate()
//
// Errors: ErrConfiguration when fields is nil.
func New[T any](fields *FieldMap[T], opts ...BuilderOption) (*Builder[T], error) {
	if fields == nil {
		return nil, builderErrorf(MethodNew, "nil field map: %w", ErrConfiguration)
	}
	cfg := newBuilderConfig(opts...)

	st := &state[T]{
		fields:   fields,
		sets:     make(map[string]*ruleSet[T]),
		cfg:      cfg,
		hub:      cfg.newHub(),
		cache:    gocache.New(gocache.NoExpiration, 0),
		logger:   cfg.logger.With("builder", reflect.TypeFor[T]().String()),
		typeName: reflect.TypeFor[T]().String(),
	}

	return &Builder[T]{st: st, set: DefaultRuleSet}, nil
}

// Fields returns the field map the Builder populates.
func (b *Builder[T]) Fields() *FieldMap[T] { return b.st.fields }

// Faker returns the hub handed to rules. Its data sets may be used directly,
// but reseeding should go through UseSeed so clones can reproduce it.
func (b *Builder[T]) Faker() *faker.Faker { return b.st.hub }

// RuleSetName returns the rule set this view registers into.
func (b *Builder[T]) RuleSetName() string { return b.set }

// ruleSetLocked returns (creating on demand) the set this view targets.
// Caller holds st.mu for writing.
func (b *Builder[T]) ruleSetLocked() *ruleSet[T] {
	rs, ok := b.st.sets[b.set]
	if !ok {
		rs = newRuleSet[T](b.set)
		b.st.sets[b.set] = rs
		b.st.setOrder = append(b.st.setOrder, b.set)
	}

	return rs
}

// resolveField maps a public field name to its index.
func (b *Builder[T]) resolveField(op, name string) (int, *Field[T], error) {
	idx, ok := b.st.fields.index[name]
	if !ok {
		return -1, nil, configErr(op, b.set, name, ErrUnknownField)
	}

	return idx, &b.st.fields.fields[idx], nil
}

func (b *Builder[T]) putRule(op, field string, fn RuleFunc[T]) error {
	idx, _, err := b.resolveField(op, field)
	if err != nil {
		return err
	}

	b.st.mu.Lock()
	b.ruleSetLocked().put(&entry[T]{key: field, field: idx, fn: fn})
	b.st.mu.Unlock()

	return nil
}

// RuleFor registers fn as the rule for field in this view's rule set.
// The returned value is type-checked when it is assigned.
// Errors: ErrNilRule, ErrUnknownField.
func (b *Builder[T]) RuleFor(field string, fn RuleFunc[T]) error {
	if fn == nil {
		return configErr(MethodRuleFor, b.set, field, ErrNilRule)
	}

	return b.putRule(MethodRuleFor, field, fn)
}

// RuleForValue registers a constant for field.
// Errors: ErrUnknownField, ErrTypeMismatch.
func (b *Builder[T]) RuleForValue(field string, v any) error {
	_, f, err := b.resolveField(MethodRuleForValue, field)
	if err != nil {
		return err
	}
	if !assignable(v, f.Type) {
		return configErr(MethodRuleForValue, b.set, field, ErrTypeMismatch)
	}

	return b.putRule(MethodRuleForValue, field, func(*faker.Faker, *T) (any, error) { return v, nil })
}

// Rule registers a typed rule; the value type is checked against the field now.
// Errors: ErrNilRule, ErrUnknownField, ErrTypeMismatch.
func Rule[T, V any](b *Builder[T], field string, fn func(f *faker.Faker, obj *T) V) error {
	if fn == nil {
		return configErr(MethodRule, b.set, field, ErrNilRule)
	}
	_, f, err := b.resolveField(MethodRule, field)
	if err != nil {
		return err
	}
	if !reflect.TypeFor[V]().AssignableTo(f.Type) {
		return configErr(MethodRule, b.set, field, ErrTypeMismatch)
	}

	return b.putRule(MethodRule, field, func(fk *faker.Faker, obj *T) (any, error) {
		return fn(fk, obj), nil
	})
}

// RuleForType registers fn for every non-Forbidden field whose type is exactly V.
// It returns the number of fields it bound.
// Errors: ErrNilRule.
func RuleForType[T, V any](b *Builder[T], fn func(f *faker.Faker) V) (int, error) {
	if fn == nil {
		return 0, configErr(MethodRuleForType, b.set, "", ErrNilRule)
	}
	typ := reflect.TypeFor[V]()
	rule := func(fk *faker.Faker, _ *T) (any, error) { return fn(fk), nil }

	bound := 0
	b.st.mu.Lock()
	rs := b.ruleSetLocked()
	for i := range b.st.fields.fields {
		f := &b.st.fields.fields[i]
		if f.Type != typ || f.Category == Forbidden {
			continue
		}
		rs.put(&entry[T]{key: f.Name, field: i, fn: rule})
		bound++
	}
	b.st.mu.Unlock()

	b.st.logger.Debug("rule for type", "ruleset", b.set, "type", typ.String(), "fields", bound)

	return bound, nil
}

// Rules registers a bulk block that may set any number of fields. Blocks run
// in registration order among the set's rules. They are never accepted in
// strict mode and never satisfy a Forced field.
// Errors: ErrNilRule.
func (b *Builder[T]) Rules(fn func(f *faker.Faker, obj *T) error) error {
	if fn == nil {
		return configErr(MethodRules, b.set, "", ErrNilRule)
	}

	b.st.mu.Lock()
	b.ruleSetLocked().addBulk(fn)
	b.st.mu.Unlock()

	return nil
}

// Ignore declares that field is deliberately left alone. It satisfies strict
// coverage for Default fields but not the requirement of a Forced field.
// Errors: ErrUnknownField.
func (b *Builder[T]) Ignore(field string) error {
	idx, _, err := b.resolveField(MethodIgnore, field)
	if err != nil {
		return err
	}

	b.st.mu.Lock()
	b.ruleSetLocked().put(&entry[T]{key: field, field: idx})
	b.st.mu.Unlock()

	return nil
}

// CustomInstantiator replaces the field map's constructor for this rule set.
// Errors: ErrNilRule.
func (b *Builder[T]) CustomInstantiator(fn func(f *faker.Faker) (*T, error)) error {
	if fn == nil {
		return configErr(MethodCustomInstantiator, b.set, "", ErrNilRule)
	}

	b.st.mu.Lock()
	b.ruleSetLocked().create = fn
	b.st.mu.Unlock()

	return nil
}

// FinishWith registers a finalizer run after every selected set's field rules.
// Errors: ErrNilRule.
func (b *Builder[T]) FinishWith(fn func(f *faker.Faker, obj *T) error) error {
	if fn == nil {
		return configErr(MethodFinishWith, b.set, "", ErrNilRule)
	}

	b.st.mu.Lock()
	b.ruleSetLocked().finish = fn
	b.st.mu.Unlock()

	return nil
}

// StrictMode sets the strict flag of this view's rule set.
func (b *Builder[T]) StrictMode(strict bool) {
	b.st.mu.Lock()
	rs := b.ruleSetLocked()
	rs.strict = &strict
	b.st.mu.Unlock()
}

// RuleSet runs fn with a view whose registrations go to the rule set name.
// Registrations made before fn fails are kept.
// Errors: ErrNestedRuleSet, ErrInvalidRuleSet, ErrNilRule, or fn's error.
func (b *Builder[T]) RuleSet(name string, fn func(rs *Builder[T]) error) error {
	if b.scoped {
		return configErr(MethodRuleSet, b.set, "", ErrNestedRuleSet)
	}
	n := normalizeRuleSet(name)
	if n == "" || strings.Contains(n, ruleSetSeparator) {
		return configErr(MethodRuleSet, name, "", ErrInvalidRuleSet)
	}
	if fn == nil {
		return configErr(MethodRuleSet, n, "", ErrNilRule)
	}

	b.st.mu.Lock()
	(&Builder[T]{st: b.st, set: n}).ruleSetLocked()
	b.st.mu.Unlock()

	if err := fn(&Builder[T]{st: b.st, set: n, scoped: true}); err != nil {
		return builderErrorf(MethodRuleSet, "%q: %w", n, err)
	}

	return nil
}

// UseSeed switches the Builder to a private source seeded with seed and
// remembers it for Clone.
func (b *Builder[T]) UseSeed(seed int64) {
	b.st.mu.Lock()
	b.st.cfg.seed = &seed
	b.st.mu.Unlock()

	b.st.hub.SetRandomizer(randomizer.NewSeeded(seed))
}

// Seed returns the local seed and whether one is set.
func (b *Builder[T]) Seed() (int64, bool) {
	b.st.mu.RLock()
	defer b.st.mu.RUnlock()
	if b.st.cfg.seed == nil {
		return 0, false
	}

	return *b.st.cfg.seed, true
}

// UseTimeReference anchors the hub's Date helpers on t.
func (b *Builder[T]) UseTimeReference(t time.Time) {
	b.st.mu.Lock()
	b.st.cfg.timeRef = &t
	b.st.mu.Unlock()

	b.st.hub.SetTimeReference(t)
}

// ClearTimeReference removes the Date anchor.
func (b *Builder[T]) ClearTimeReference() {
	b.st.mu.Lock()
	b.st.cfg.timeRef = nil
	b.st.mu.Unlock()

	b.st.hub.ClearTimeReference()
}

// RuleSets lists registered rule-set names in registration order.
func (b *Builder[T]) RuleSets() []string {
	b.st.mu.RLock()
	defer b.st.mu.RUnlock()

	out := make([]string, len(b.st.setOrder))
	copy(out, b.st.setOrder)

	return out
}

// Clone returns an independent Builder with the same rules, strict flags,
// instantiators, finalizers, local seed and time reference. Maps, the
// validation cache and the hub are never shared. A clone with a local seed
// restarts that seed's stream, and so does a clone of a Builder bound to a
// private source; one on the process-wide source keeps drawing from it.
func (b *Builder[T]) Clone() *Builder[T] {
	b.st.mu.RLock()
	defer b.st.mu.RUnlock()

	cfg := b.st.cfg
	if cfg.seed != nil {
		s := *cfg.seed
		cfg.seed = &s
	} else if src := b.st.hub.Random().Source(); src == randomizer.Default() {
		cfg.rnd = b.st.hub.Random()
	} else {
		cfg.rnd = randomizer.NewSeeded(src.Seed())
	}
	if cfg.timeRef != nil {
		t := *cfg.timeRef
		cfg.timeRef = &t
	}

	st := &state[T]{
		fields:   b.st.fields,
		sets:     make(map[string]*ruleSet[T], len(b.st.sets)),
		setOrder: append([]string(nil), b.st.setOrder...),
		cfg:      cfg,
		hub:      cfg.newHub(),
		cache:    gocache.New(gocache.NoExpiration, 0),
		logger:   b.st.logger,
		typeName: b.st.typeName,
	}
	for name, rs := range b.st.sets {
		st.sets[name] = rs.clone()
	}

	return &Builder[T]{st: st, set: DefaultRuleSet}
}
