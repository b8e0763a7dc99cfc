// synth_filter.go - Second-order Butterworth low-pass filtering

package main

import "math"

// Normalized cutoff is clamped strictly inside (0,1) before the
// bilinear transform; tan() is singular at both ends.
const (
	minNormalizedCutoff = 1e-4
	maxNormalizedCutoff = 0.9999
)

// ApplyLowPass runs the waveform through a causal second-order
// Butterworth low-pass filter. Filter state starts at zero on every
// call; nothing carries across notes. The resonance parameter is
// accepted alongside the cutoff but does not enter the coefficient
// design - the Butterworth response fixes Q (see DESIGN.md).
func ApplyLowPass(wave WaveBuffer, cutoffHz, resonance float64) WaveBuffer {
	_ = resonance

	out := WaveBuffer{SampleRate: wave.SampleRate, Samples: make([]float64, len(wave.Samples))}
	if len(wave.Samples) == 0 {
		return out
	}

	norm := cutoffHz / (float64(wave.SampleRate) / 2)
	norm = clampFloat(norm, minNormalizedCutoff, maxNormalizedCutoff)
	b0, b1, b2, a1, a2 := butterworthLowPass(norm)

	var x1, x2, y1, y2 float64
	for i, x := range wave.Samples {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		out.Samples[i] = y
		x2, x1 = x1, x
		y2, y1 = y1, y
	}
	return out
}

// butterworthLowPass derives direct form I coefficients for a
// second-order low-pass with its corner at the given normalized cutoff
// (1.0 = Nyquist), via the bilinear transform with frequency
// prewarping. Unity gain at DC: b0+b1+b2 == 1+a1+a2.
func butterworthLowPass(normCutoff float64) (b0, b1, b2, a1, a2 float64) {
	k := math.Tan(math.Pi * normCutoff / 2)
	scale := 1 / (1 + math.Sqrt2*k + k*k)
	b0 = k * k * scale
	b1 = 2 * b0
	b2 = b0
	a1 = 2 * (k*k - 1) * scale
	a2 = (1 - math.Sqrt2*k + k*k) * scale
	return
}
