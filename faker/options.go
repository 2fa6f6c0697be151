// SPDX-License-Identifier: MIT
// Package: fakegen/faker
//
// options.go - functional options for New.
//
// Option constructors panic on nonsense input (nil randomizer, nil locale);
// New itself never panics.

package faker

import (
	"time"

	"github.com/katalvlaran/fakegen/dataset"
	"github.com/katalvlaran/fakegen/randomizer"
)

// Option customizes a Faker at construction.
type Option func(*config)

type config struct {
	rnd     *randomizer.Randomizer
	locale  *dataset.Locale
	timeRef *time.Time
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rnd == nil {
		cfg.rnd = randomizer.New()
	}
	if cfg.locale == nil {
		cfg.locale = dataset.English()
	}

	return cfg
}

// WithSeed gives the hub a private, reproducible source.
func WithSeed(s int64) Option {
	return func(c *config) { c.rnd = randomizer.NewSeeded(s) }
}

// WithRandomizer makes the hub draw from r.
// Panics if r is nil.
func WithRandomizer(r *randomizer.Randomizer) Option {
	if r == nil {
		panic("faker: WithRandomizer(nil)")
	}

	return func(c *config) { c.rnd = r }
}

// WithLocale builds the data sets over loc.
// Panics if loc is nil.
func WithLocale(loc *dataset.Locale) Option {
	if loc == nil {
		panic("faker: WithLocale(nil)")
	}

	return func(c *config) { c.locale = loc }
}

// WithTimeReference anchors Date helpers on t.
func WithTimeReference(t time.Time) Option {
	return func(c *config) { c.timeRef = &t }
}
