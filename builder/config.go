// SPDX-License-Identifier: MIT
// Package: fakegen/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for construction knobs.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   - seed/rnd      = nil       (draw from randomizer.Default())
//   - strictDefault = false
//   - logger        = discard
//   - timeRef       = nil       (Date helpers return dataset.ErrNoTimeReference)
//   - locale        = dataset.English()

package builder

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/fakegen/dataset"
	"github.com/katalvlaran/fakegen/faker"
	"github.com/katalvlaran/fakegen/randomizer"
)

// builderConfig aggregates the knobs resolved by New.
type builderConfig struct {
	seed          *int64
	rnd           *randomizer.Randomizer
	strictDefault bool
	logger        *slog.Logger
	timeRef       *time.Time
	locale        *dataset.Locale
}

// newBuilderConfig constructs a config with defaults and applies opts in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	if cfg.locale == nil {
		cfg.locale = dataset.English()
	}

	return cfg
}

// resolveRandomizer picks the facade: seed wins over an explicit facade, which
// wins over the default source.
func (c builderConfig) resolveRandomizer() *randomizer.Randomizer {
	switch {
	case c.seed != nil:
		return randomizer.NewSeeded(*c.seed)
	case c.rnd != nil:
		return c.rnd
	default:
		return randomizer.New()
	}
}

// newHub builds the faker hub handed to rules.
func (c builderConfig) newHub() *faker.Faker {
	opts := []faker.Option{
		faker.WithRandomizer(c.resolveRandomizer()),
		faker.WithLocale(c.locale),
	}
	if c.timeRef != nil {
		opts = append(opts, faker.WithTimeReference(*c.timeRef))
	}

	return faker.New(opts...)
}
