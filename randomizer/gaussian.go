// Package randomizer - normally distributed draws.
//
// One Double draw is pushed through Acklam's rational approximation of the
// inverse normal CDF (P. J. Acklam, 2010), so a Gaussian sample costs exactly
// one primitive and stays reproducible without hidden state.
package randomizer

import "math"

var (
	acklamA = [6]float64{-39.696830, 220.946098, -275.928510, 138.357751, -30.664798, 2.506628}
	acklamB = [5]float64{-54.476098, 161.585836, -155.698979, 66.801311, -13.280681}
	acklamC = [6]float64{-0.007784894002, -0.32239645, -2.400758, -2.549732, 4.374664, 2.938163}
	acklamD = [4]float64{0.007784695709, 0.32246712, 2.445134, 3.754408}
)

const (
	acklamLow  = 0.02425
	acklamHigh = 1 - acklamLow
)

// inverseNormalCDF maps p in (0,1) to the standard normal quantile.
func inverseNormalCDF(p float64) float64 {
	switch {
	case p <= 0:
		// Float64 can return exactly 0; clamp to the smallest positive double.
		p = math.SmallestNonzeroFloat64
	case p >= 1:
		p = math.Nextafter(1, 0)
	}

	if p < acklamLow {
		q := math.Sqrt(-2 * math.Log(p))
		return (((((acklamC[0]*q+acklamC[1])*q+acklamC[2])*q+acklamC[3])*q+acklamC[4])*q + acklamC[5]) /
			((((acklamD[0]*q+acklamD[1])*q+acklamD[2])*q+acklamD[3])*q + 1)
	}
	if p > acklamHigh {
		q := math.Sqrt(-2 * math.Log(1-p))
		return -(((((acklamC[0]*q+acklamC[1])*q+acklamC[2])*q+acklamC[3])*q+acklamC[4])*q + acklamC[5]) /
			((((acklamD[0]*q+acklamD[1])*q+acklamD[2])*q+acklamD[3])*q + 1)
	}
	q := p - 0.5
	s := q * q

	return (((((acklamA[0]*s+acklamA[1])*s+acklamA[2])*s+acklamA[3])*s+acklamA[4])*s + acklamA[5]) * q /
		(((((acklamB[0]*s+acklamB[1])*s+acklamB[2])*s+acklamB[3])*s+acklamB[4])*s + 1)
}

// Gaussian returns a sample from N(mean, stddev).
// Example: Gaussian(69.1, 2.9) for adult heights in inches.
func (r *Randomizer) Gaussian(mean, stddev float64) float64 {
	return inverseNormalCDF(r.Double(0, 1))*stddev + mean
}

// GaussianInt returns Gaussian(mean, stddev) rounded half-to-even.
func (r *Randomizer) GaussianInt(mean, stddev float64) int {
	return int(math.RoundToEven(r.Gaussian(mean, stddev)))
}

// GaussianFloat returns Gaussian(mean, stddev) as float32.
func (r *Randomizer) GaussianFloat(mean, stddev float64) float32 {
	return float32(r.Gaussian(mean, stddev))
}
