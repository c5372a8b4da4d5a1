// Package signal holds the numeric routines shared by the analytics
// pipeline: smoothing, spectral estimation and simple recursive filters.
// Everything operates on plain float64 slices and never panics on
// degenerate input.
package signal

import (
	"math"
)

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance returns the sample variance (Bessel's correction). Fewer than 2
// values yield 0.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values)-1)
}

// CoefficientOfVariation returns stddev/mean, or 0 when the mean is 0.
func CoefficientOfVariation(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 0
	}
	return math.Sqrt(Variance(values)) / mean
}

// Max returns the largest value, or 0 for an empty slice.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// SavitzkyGolay smooths the sequence with a least-squares quadratic fit over
// a sliding odd-sized window. Unlike a plain moving average it preserves
// genuine peaks, which the kinematics stage relies on for ballistic and
// hesitation detection. Windows shorter than 3, even windows, or inputs
// shorter than the window are returned as a copy, unsmoothed.
func SavitzkyGolay(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	if window < 3 || window%2 == 0 || len(values) < window {
		return out
	}

	half := window / 2
	coeffs := savgolCoefficients(half)

	for i := half; i < len(values)-half; i++ {
		sum := 0.0
		for j := -half; j <= half; j++ {
			sum += coeffs[j+half] * values[i+j]
		}
		out[i] = sum
	}
	return out
}

// savgolCoefficients derives the center-point convolution weights for a
// quadratic Savitzky-Golay filter with the given half-window. For half=2
// these are the classic (-3, 12, 17, 12, -3)/35 weights.
func savgolCoefficients(half int) []float64 {
	n := 2*half + 1
	// Closed form for a quadratic fit evaluated at the window center:
	// w_j = (3*(3m^2 + 3m - 1) - 15*j^2) / (m*(2m-1)*(2m+3)) normalized,
	// expressed below via the standard S0/S2/S4 power sums.
	var s0, s2, s4 float64
	for j := -half; j <= half; j++ {
		fj := float64(j)
		s0++
		s2 += fj * fj
		s4 += fj * fj * fj * fj
	}
	den := s0*s4 - s2*s2
	coeffs := make([]float64, n)
	for j := -half; j <= half; j++ {
		fj := float64(j)
		coeffs[j+half] = (s4 - s2*fj*fj) / den
	}
	return coeffs
}

// GaussianSmooth convolves the sequence with a normalized Gaussian kernel of
// the given standard deviation (in samples). Sigma <= 0 returns a copy.
func GaussianSmooth(values []float64, sigma float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	if sigma <= 0 || len(values) == 0 {
		return out
	}

	radius := int(math.Ceil(3 * sigma))
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		k := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = k
		sum += k
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	for i := range values {
		acc := 0.0
		weight := 0.0
		for j := -radius; j <= radius; j++ {
			idx := i + j
			if idx < 0 || idx >= len(values) {
				continue
			}
			acc += kernel[j+radius] * values[idx]
			weight += kernel[j+radius]
		}
		if weight > 0 {
			out[i] = acc / weight
		}
	}
	return out
}

// PowerSpectrum holds a one-sided direct-DFT power spectral density.
type PowerSpectrum struct {
	Frequencies []float64 // Hz per bin
	Power       []float64 // power per bin
}

// PSD computes the one-sided power spectral density of the sequence with a
// direct discrete Fourier transform (the sequences here are short enough
// that an FFT buys nothing). sampleRate is in Hz. Fewer than 2 samples or a
// non-positive rate yield an empty spectrum.
func PSD(values []float64, sampleRate float64) PowerSpectrum {
	n := len(values)
	if n < 2 || sampleRate <= 0 {
		return PowerSpectrum{}
	}

	// Remove the mean so the DC component does not swamp the band of
	// interest.
	mean := Mean(values)
	bins := n / 2
	spectrum := PowerSpectrum{
		Frequencies: make([]float64, 0, bins),
		Power:       make([]float64, 0, bins),
	}

	for k := 1; k <= bins; k++ {
		var re, im float64
		for t := 0; t < n; t++ {
			angle := 2 * math.Pi * float64(k) * float64(t) / float64(n)
			v := values[t] - mean
			re += v * math.Cos(angle)
			im -= v * math.Sin(angle)
		}
		spectrum.Frequencies = append(spectrum.Frequencies, float64(k)*sampleRate/float64(n))
		spectrum.Power = append(spectrum.Power, (re*re+im*im)/float64(n))
	}
	return spectrum
}

// PeakInBand returns the frequency and power of the strongest bin whose
// frequency lies in [lo, hi]. ok is false when no bin falls in the band.
func (s PowerSpectrum) PeakInBand(lo, hi float64) (freq, power float64, ok bool) {
	for i, f := range s.Frequencies {
		if f < lo || f > hi {
			continue
		}
		if !ok || s.Power[i] > power {
			freq = f
			power = s.Power[i]
			ok = true
		}
	}
	return freq, power, ok
}

// LowPass applies a single-pole recursive low-pass filter with smoothing
// factor alpha in (0,1]. Alpha outside the range returns a copy.
func LowPass(values []float64, alpha float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	if alpha <= 0 || alpha > 1 || len(values) == 0 {
		return out
	}
	for i := 1; i < len(values); i++ {
		out[i] = out[i-1] + alpha*(values[i]-out[i-1])
	}
	return out
}

// HighPass returns the residual of the low-pass filter, isolating the
// high-frequency content of the sequence.
func HighPass(values []float64, alpha float64) []float64 {
	low := LowPass(values, alpha)
	out := make([]float64, len(values))
	for i := range values {
		out[i] = values[i] - low[i]
	}
	return out
}
