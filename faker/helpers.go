// SPDX-License-Identifier: MIT
// Package: fakegen/faker
//
// helpers.go - generic conveniences for rule bodies.

package faker

import "github.com/katalvlaran/fakegen/randomizer"

// PickRandom returns one of items. Empty input returns randomizer.ErrArgumentRange.
func PickRandom[T any](f *Faker, items ...T) (T, error) {
	return randomizer.ListItem(f.Random(), items)
}

// PickRandomN returns n distinct positions of items in random order.
func PickRandomN[T any](f *Faker, items []T, n int) ([]T, error) {
	return randomizer.ListItems(f.Random(), items, n)
}

// Make calls fn count times with a 1-based sequence number and collects the results.
func Make[T any](count int, fn func(n int) T) []T {
	if count <= 0 {
		return nil
	}
	out := make([]T, count)
	for k := range out {
		out[k] = fn(k + 1)
	}

	return out
}

// OrNull returns nil with probability nullWeight (clamped to [0, 1]),
// otherwise a pointer to v. One Double is drawn per call.
func OrNull[V any](f *Faker, v V, nullWeight float64) *V {
	if f.Random().Double(0, 1) < clampWeight(nullWeight) {
		return nil
	}

	return &v
}

// OrDefault returns def with probability defaultWeight (clamped to [0, 1]),
// otherwise v.
func OrDefault[V any](f *Faker, v V, defaultWeight float64, def V) V {
	if f.Random().Double(0, 1) < clampWeight(defaultWeight) {
		return def
	}

	return v
}

func clampWeight(w float64) float64 {
	switch {
	case w < 0:
		return 0
	case w > 1:
		return 1
	}

	return w
}
