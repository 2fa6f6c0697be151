// SPDX-License-Identifier: MIT
// Package: fakegen/seed
//
// notifier.go - seed propagation registry.
//
// Contract (strict):
//   - Registration appends; entries are never removed for the owner's lifetime.
//   - Notify pushes one facade to every dependent in registration order.
//   - Registering the same dependent twice notifies it twice (caller's choice).
//
// Concurrency:
//   - mu guards the registry slice. Notify snapshots it and calls dependents
//     outside the lock, so a dependent may register further children while
//     being notified.

package seed

import (
	"sync"

	"github.com/katalvlaran/fakegen/randomizer"
)

// HasRandomizer is implemented by anything that draws from a Randomizer and
// can be told to switch to another one.
type HasRandomizer interface {
	// Randomizer returns the facade currently in use.
	Randomizer() *randomizer.Randomizer
	// SetRandomizer adopts r and propagates it to the implementer's own dependents.
	SetRandomizer(r *randomizer.Randomizer)
}

// Notifier remembers the dependents of one owner so a reseed of the owner
// reaches every sub-generator. The zero value is ready to use.
type Notifier struct {
	mu       sync.Mutex
	registry []HasRandomizer
}

// Register appends dep and returns it, so construction can be inlined:
//
//	i.name = n.Register(dataset.NewName(loc)).(*dataset.Name)
//
// Prefer the typed Flow helper, which avoids the assertion.
// Complexity: O(1) amortized.
func (n *Notifier) Register(dep HasRandomizer) HasRandomizer {
	n.mu.Lock()
	n.registry = append(n.registry, dep)
	n.mu.Unlock()

	return dep
}

// Flow registers dep with n and returns it with its concrete type.
func Flow[D HasRandomizer](n *Notifier, dep D) D {
	n.Register(dep)

	return dep
}

// Notify assigns r to every registered dependent, in registration order.
// Complexity: O(len(registry)) plus the dependents' own propagation.
func (n *Notifier) Notify(r *randomizer.Randomizer) {
	n.mu.Lock()
	deps := make([]HasRandomizer, len(n.registry))
	copy(deps, n.registry)
	n.mu.Unlock()

	for _, d := range deps {
		d.SetRandomizer(r)
	}
}

// Len reports how many registrations the notifier holds (duplicates included).
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.registry)
}
