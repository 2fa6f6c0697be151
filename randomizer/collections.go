// SPDX-License-Identifier: MIT
// Package: fakegen/randomizer
//
// collections.go - selection primitives over slices.
//
// Methods cannot carry type parameters in Go, so the sequence primitives are
// package functions taking the facade first: ListItem(r, items).
//
// Determinism:
//   - ListItems and Shuffle draw their whole permutation under one lock.
//   - WeightedItem consumes exactly one Double draw.

package randomizer

import (
	"fmt"
	"math/rand"
)

// ListItem returns one element of items chosen uniformly.
// Empty items -> ErrArgumentRange.
// Complexity: O(1).
func ListItem[T any](r *Randomizer, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%s: empty sequence: %w", methodListItem, ErrArgumentRange)
	}

	return items[r.Number(0, len(items)-1)], nil
}

// ListItems returns count distinct positions of items (no replacement) in
// random order. count < 0 or count > len(items) -> ErrArgumentRange.
// Complexity: O(len(items)) time and space.
func ListItems[T any](r *Randomizer, items []T, count int) ([]T, error) {
	if count < 0 || count > len(items) {
		return nil, fmt.Errorf("%s: count=%d not in [0,%d]: %w",
			methodListItems, count, len(items), ErrArgumentRange)
	}
	out := make([]T, len(items))
	copy(out, items)
	r.src.draw(func(rng *rand.Rand) {
		// Partial Fisher-Yates: only the first count slots need settling.
		for i := 0; i < count; i++ {
			j := i + rng.Intn(len(out)-i)
			out[i], out[j] = out[j], out[i]
		}
	})

	return out[:count], nil
}

// RandomSubset returns a subset of random size in [0, len(items)-1], the
// original "count omitted" behaviour of ListItems. Empty items yields nil.
func RandomSubset[T any](r *Randomizer, items []T) []T {
	if len(items) == 0 {
		return nil
	}
	out, _ := ListItems(r, items, r.Number(0, len(items)-1))

	return out
}

// Shuffle returns a shuffled copy of items; items itself is untouched.
// Complexity: O(n).
func Shuffle[T any](r *Randomizer, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	r.src.draw(func(rng *rand.Rand) {
		for i := len(out) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			out[i], out[j] = out[j], out[i]
		}
	})

	return out
}

// WeightedItem picks one of items with probability given by the parallel
// weights, which should sum to 1.0 (e.g. [0.25, 0.5, 0.25]). A draw past the
// cumulative total falls on the last item.
// len(items) != len(weights) or empty items -> ErrArgumentRange.
// Complexity: O(n).
func WeightedItem[T any](r *Randomizer, items []T, weights []float64) (T, error) {
	var item T
	if len(items) != len(weights) {
		return item, fmt.Errorf("%s: len(items)=%d != len(weights)=%d: %w",
			methodWeightedItem, len(items), len(weights), ErrArgumentRange)
	}
	if len(items) == 0 {
		return item, fmt.Errorf("%s: empty sequence: %w", methodWeightedItem, ErrArgumentRange)
	}
	x := r.Double(0, 1)
	lo := 0.0
	for i, w := range weights {
		item = items[i]
		if x >= lo && x < lo+w {
			break
		}
		lo += w
	}

	return item, nil
}
