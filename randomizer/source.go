// SPDX-License-Identifier: MIT
// Package: fakegen/randomizer
//
// source.go - pseudo-random bit sources shared by Randomizer facades.
//
// Design contract (strict):
//   - A Source owns exactly one *rand.Rand and the mutex guarding it.
//   - Default() is the single process-wide source; it is an explicit handle,
//     never a hidden global swapped behind callers' backs.
//   - Reseed replaces the generator in place: every Randomizer bound to the
//     Source observes the new stream from the next draw on (no replay).
//   - NewSource(seed) sources are private to their owner and never shared
//     implicitly.
//
// Concurrency:
//   - mu guards every advance of rng (one draw or one multi-step draw).
//   - build serializes whole object builds that share the Source (see Exclusive).

package randomizer

import (
	"math/rand"
	"sync"
	"time"
)

// Source is a lockable pseudo-random bit source.
type Source struct {
	mu    sync.Mutex // guards rng and seed
	build sync.Mutex // serializes Exclusive sections

	rng  *rand.Rand
	seed int64
}

// defaultSource backs every Randomizer created without an explicit seed.
// It starts from the wall clock; call Default().Reseed(n) for reproducible runs.
var defaultSource = NewSource(time.Now().UnixNano())

// NewSource returns a private Source seeded with seed.
// Two sources built from the same seed yield bit-identical streams.
// Complexity: O(1).
func NewSource(seed int64) *Source {
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Default returns the process-wide Source shared by all unseeded facades.
func Default() *Source {
	return defaultSource
}

// Reseed swaps the underlying generator for one seeded with seed.
// Facades bound to s continue from the new stream; nothing already drawn changes.
// Complexity: O(1).
func (s *Source) Reseed(seed int64) {
	s.mu.Lock()
	s.rng = rand.New(rand.NewSource(seed))
	s.seed = seed
	s.mu.Unlock()
}

// Seed reports the seed the current generator was created from.
func (s *Source) Seed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.seed
}

// Exclusive runs fn while holding the source's build lock. Builders wrap a
// whole validate-draw-assign cycle in it, so two builds sharing one source
// never interleave their draws. fn must not call Exclusive on the same source.
func (s *Source) Exclusive(fn func()) {
	s.build.Lock()
	defer s.build.Unlock()
	fn()
}

// draw runs fn with the generator under the draw lock.
// Every primitive that advances the stream goes through here exactly once.
func (s *Source) draw(fn func(rng *rand.Rand)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.rng)
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
// SplitMix64 finalizer: small input changes give well-spread outputs, so
// children derived from one parent do not share correlated streams.
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
