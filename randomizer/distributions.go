// SPDX-License-Identifier: MIT
// Package: fakegen/randomizer
//
// distributions.go - non-uniform draws built on one Double each.

package randomizer

import (
	"fmt"
	"math"
)

// Exponential draws from Exp(rate) by inverting the CDF: -ln(1-u)/rate.
// Errors: ErrArgumentRange when rate <= 0 or is NaN.
func (r *Randomizer) Exponential(rate float64) (float64, error) {
	if !(rate > 0) {
		return 0, fmt.Errorf("Exponential: rate %g must be > 0: %w", rate, ErrArgumentRange)
	}
	u := r.Double(0, 1)

	return -math.Log1p(-u) / rate, nil
}

// Clamped draws a Gaussian value and clamps it into [lo, hi]; bounds may come in any order.
func (r *Randomizer) Clamped(mean, stddev, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	return math.Min(hi, math.Max(lo, r.Gaussian(mean, stddev)))
}
