// SPDX-License-Identifier: MIT
// Package: fakegen/dataset
//
// base.go - shared randomizer plumbing embedded by every data set.

package dataset

import (
	"sync"

	"github.com/katalvlaran/fakegen/randomizer"
	"github.com/katalvlaran/fakegen/seed"
)

// Base implements seed.HasRandomizer for the data set that embeds it.
// Until SetRandomizer is called it draws from the process-wide default source.
type Base struct {
	mu       sync.RWMutex
	r        *randomizer.Randomizer
	notifier seed.Notifier
}

// Randomizer returns the facade in use, binding the default one lazily.
func (b *Base) Randomizer() *randomizer.Randomizer {
	b.mu.RLock()
	r := b.r
	b.mu.RUnlock()
	if r != nil {
		return r
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.r == nil {
		b.r = randomizer.New()
	}

	return b.r
}

// SetRandomizer adopts r and pushes it to every registered sub-generator.
func (b *Base) SetRandomizer(r *randomizer.Randomizer) {
	b.mu.Lock()
	b.r = r
	b.mu.Unlock()

	b.notifier.Notify(r)
}

// Notifier exposes the registry used to attach sub-generators.
func (b *Base) Notifier() *seed.Notifier { return &b.notifier }

// pick returns one element of a non-empty locale list.
// Locale tables are validated on load, so an empty list yields "".
func pick(r *randomizer.Randomizer, items []string) string {
	s, err := randomizer.ListItem(r, items)
	if err != nil {
		return ""
	}

	return s
}
