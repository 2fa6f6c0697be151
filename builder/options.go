// SPDX-License-Identifier: MIT
// Package: fakegen/builder
//
// options.go - functional options for New.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves MUST NOT panic.
//   - Determinism is explicit: a reproducible stream needs WithSeed or
//     WithRandomizer over a seeded facade; otherwise the default source is used.

package builder

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/fakegen/dataset"
	"github.com/katalvlaran/fakegen/randomizer"
)

// BuilderOption customizes a Builder before any rule is registered.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithSeed gives the Builder a private seeded source (same as UseSeed).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.seed = &seed
	}
}

// WithRandomizer makes the Builder draw from r. Builders sharing r share one
// build-level critical section. Panics on nil.
func WithRandomizer(r *randomizer.Randomizer) BuilderOption {
	if r == nil {
		panic("builder: WithRandomizer(nil)")
	}

	return func(c *builderConfig) {
		c.rnd = r
	}
}

// WithStrictDefault sets the strict flag for rule sets that never call StrictMode.
func WithStrictDefault(strict bool) BuilderOption {
	return func(c *builderConfig) {
		c.strictDefault = strict
	}
}

// WithLogger routes the Builder's debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}

	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithTimeReference anchors the hub's Date helpers on t (same as UseTimeReference).
func WithTimeReference(t time.Time) BuilderOption {
	return func(c *builderConfig) {
		c.timeRef = &t
	}
}

// WithLocale builds the hub's data sets over loc. Panics on nil.
func WithLocale(loc *dataset.Locale) BuilderOption {
	if loc == nil {
		panic("builder: WithLocale(nil)")
	}

	return func(c *builderConfig) {
		c.locale = loc
	}
}
