// SPDX-License-Identifier: MIT
// Package: fakegen/internal/sample
//
// models.go - name-addressable generators for the command line.
//
// Contract:
//   - Open builds every builder of a model over ONE facade, so nested
//     builders share a critical section and a seeded run is reproducible.
//   - Results are returned as []any so callers can encode them without
//     knowing the concrete type.

package sample

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/katalvlaran/fakegen/builder"
	"github.com/katalvlaran/fakegen/randomizer"
)

// ErrUnknownModel is returned by Open for a name not in Models().
var ErrUnknownModel = errors.New("sample: unknown model")

// Options configures Open.
type Options struct {
	Seed    *int64
	Strict  bool
	TimeRef *time.Time
	Logger  *slog.Logger
}

// Model is a type-erased view of one Builder.
type Model interface {
	Name() string
	RuleSets() []string
	Generate(count int, ruleSets ...string) ([]any, error)
	Validate(ruleSets ...string) builder.ValidationResult
}

const (
	ModelPeople   = "people"
	ModelAccounts = "accounts"
)

// Models lists the names Open accepts.
func Models() []string { return []string{ModelAccounts, ModelPeople} }

// Open builds the named model.
// Errors: ErrUnknownModel, or any registration error from the model's builders.
func Open(name string, opts Options) (Model, error) {
	if !slices.Contains(Models(), name) {
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownModel, name, Models())
	}

	rnd := randomizer.New()
	if opts.Seed != nil {
		rnd = randomizer.NewSeeded(*opts.Seed)
	}
	bopts := []builder.BuilderOption{
		builder.WithRandomizer(rnd),
		builder.WithStrictDefault(opts.Strict),
	}
	if opts.TimeRef != nil {
		bopts = append(bopts, builder.WithTimeReference(*opts.TimeRef))
	}
	if opts.Logger != nil {
		bopts = append(bopts, builder.WithLogger(opts.Logger))
	}

	people, err := NewPersonBuilder(bopts...)
	if err != nil {
		return nil, err
	}
	if name == ModelPeople {
		return &model[Person]{name: name, b: people}, nil
	}

	accounts, err := NewAccountBuilder(people, bopts...)
	if err != nil {
		return nil, err
	}

	return &model[Account]{name: name, b: accounts}, nil
}

type model[T any] struct {
	name string
	b    *builder.Builder[T]
}

func (m *model[T]) Name() string { return m.name }

func (m *model[T]) RuleSets() []string { return m.b.RuleSets() }

func (m *model[T]) Generate(count int, ruleSets ...string) ([]any, error) {
	out := make([]any, 0, max(count, 0))
	for obj, err := range m.b.GenerateSeq(count, ruleSets...) {
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}

	return out, nil
}

func (m *model[T]) Validate(ruleSets ...string) builder.ValidationResult {
	return m.b.ValidationFor(ruleSets...)
}
