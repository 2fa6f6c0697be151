// SPDX-License-Identifier: MIT
// Package: fakegen/randomizer
//
// randomizer.go - the Randomizer facade and its numeric primitives.
//
// Contract:
//   - Every method that advances the stream locks the bound Source once.
//   - Numeric bounds are unordered: Number(9, 1) draws from [1, 9].
//   - Ranges that hold no admissible value return ErrArgumentRange.

package randomizer

import (
	"fmt"
	"math"
	"math/rand"
)

// Randomizer is the typed facade over a Source. The zero value is not usable;
// construct with New, NewSeeded or FromSource.
type Randomizer struct {
	src *Source
}

// New returns a Randomizer bound to the process-wide Default source.
func New() *Randomizer {
	return &Randomizer{src: Default()}
}

// NewSeeded returns a Randomizer with its own Source seeded with seed.
// It ignores the Default source entirely.
func NewSeeded(seed int64) *Randomizer {
	return &Randomizer{src: NewSource(seed)}
}

// FromSource binds a Randomizer to src; nil means Default().
func FromSource(src *Source) *Randomizer {
	if src == nil {
		src = Default()
	}

	return &Randomizer{src: src}
}

// Source returns the bit source this facade draws from.
func (r *Randomizer) Source() *Source {
	return r.src
}

// Number returns a uniform int in the inclusive range [min, max].
// Complexity: O(1) expected.
func (r *Randomizer) Number(min, max int) int {
	var v int64
	r.src.draw(func(rng *rand.Rand) {
		v = int64Between(rng, int64(min), int64(max))
	})

	return int(v)
}

// NumberMax returns a uniform int in [1, max].
func (r *Randomizer) NumberMax(max int) int {
	return r.Number(1, max)
}

// Int returns a uniform int in the inclusive range [min, max].
func (r *Randomizer) Int(min, max int) int {
	return r.Number(min, max)
}

// Int64 returns a uniform int64 in the inclusive range [min, max].
// The full int64 range is supported.
func (r *Randomizer) Int64(min, max int64) int64 {
	var v int64
	r.src.draw(func(rng *rand.Rand) {
		v = int64Between(rng, min, max)
	})

	return v
}

// Byte returns a uniform byte in [min, max].
func (r *Randomizer) Byte(min, max byte) byte {
	return byte(r.Number(int(min), int(max)))
}

// Bytes returns n random bytes drawn under a single lock, so the buffer is
// never interleaved with another caller's draws. n <= 0 yields an empty slice.
func (r *Randomizer) Bytes(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	buf := make([]byte, n)
	r.src.draw(func(rng *rand.Rand) {
		_, _ = rng.Read(buf)
	})

	return buf
}

// Read fills p with random bytes. It makes a Randomizer an io.Reader
// (used by UUID) and never returns an error.
func (r *Randomizer) Read(p []byte) (int, error) {
	r.src.draw(func(rng *rand.Rand) {
		_, _ = rng.Read(p)
	})

	return len(p), nil
}

// Double returns a uniform float64 in [min, max).
func (r *Randomizer) Double(min, max float64) float64 {
	var f float64
	r.src.draw(func(rng *rand.Rand) {
		f = rng.Float64()
	})
	if min == 0 && max == 1 {
		return f
	}

	return f*(max-min) + min
}

// Float returns a uniform float32 in [min, max).
func (r *Randomizer) Float(min, max float32) float32 {
	return float32(r.Double(float64(min), float64(max)))
}

// Bool returns true with probability 1/2.
func (r *Randomizer) Bool() bool {
	return r.BoolLikelihood(50)
}

// BoolLikelihood returns true with the given percentage likelihood (0..100).
func (r *Randomizer) BoolLikelihood(pct int) bool {
	return r.Double(0, 1)*100 < float64(pct)
}

// Digits returns count digits, each uniform in [minDigit, maxDigit].
// Both bounds must lie in 0..9.
func (r *Randomizer) Digits(count, minDigit, maxDigit int) ([]int, error) {
	if minDigit < 0 || minDigit > 9 || maxDigit < 0 || maxDigit > 9 {
		return nil, fmt.Errorf("%s: digit bounds [%d,%d] outside 0..9: %w",
			methodDigits, minDigit, maxDigit, ErrArgumentRange)
	}
	if count < 0 {
		return nil, fmt.Errorf("%s: count=%d < 0: %w", methodDigits, count, ErrArgumentRange)
	}
	out := make([]int, count)
	for i := range out {
		out[i] = r.Number(minDigit, maxDigit)
	}

	return out, nil
}

// Even returns a uniform even number in [min, max].
func (r *Randomizer) Even(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%s: min=%d > max=%d: %w", methodEven, min, max, ErrArgumentRange)
	}
	if min&1 == 1 && max-1 < min {
		return 0, fmt.Errorf("%s: [%d,%d] holds no even number: %w", methodEven, min, max, ErrArgumentRange)
	}
	// Widen to [even, odd] so evens and odds are equally represented,
	// then clear the low bit.
	lo := (min + 1) &^ 1
	hi := max | 1
	if lo > hi {
		return lo, nil
	}

	return r.Number(lo, hi) &^ 1, nil
}

// Odd returns a uniform odd number in [min, max].
func (r *Randomizer) Odd(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%s: min=%d > max=%d: %w", methodOdd, min, max, ErrArgumentRange)
	}
	if max&1 == 0 && min+1 > max {
		return 0, fmt.Errorf("%s: [%d,%d] holds no odd number: %w", methodOdd, min, max, ErrArgumentRange)
	}
	if max == math.MinInt {
		return math.MinInt | 1, nil
	}
	lo := min &^ 1
	hi := (max - 1) | 1
	if lo > hi {
		return lo | 1, nil
	}

	return r.Number(lo, hi) | 1, nil
}

// int64Between draws uniformly from [min, max] (unordered bounds) without
// modulo bias. Called with the draw lock held.
func int64Between(rng *rand.Rand, min, max int64) int64 {
	if min > max {
		min, max = max, min
	}
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int64(rng.Uint64())
	}
	span++
	if span <= math.MaxInt64 {
		return min + rng.Int63n(int64(span))
	}
	// span lies in (2^63, 2^64): plain rejection sampling, < 2 tries expected.
	for {
		v := rng.Uint64()
		if v < span {
			return int64(uint64(min) + v)
		}
	}
}
