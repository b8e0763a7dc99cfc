// synth_morph.go - Weighted blend of the oscillator bank into one waveform

package main

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter marks a parameter combination the pipeline
// refuses to render.
var ErrInvalidParameter = errors.New("invalid parameter")

// MorphWaveforms blends the four oscillator buffers into a single
// waveform. Weights are normalized by their sum, so only their ratios
// matter. A zero weight sum cannot be normalized and fails with
// ErrInvalidParameter instead of propagating non-finite samples.
func MorphWaveforms(bank [NUM_OSCILLATORS]WaveBuffer, weights [NUM_OSCILLATORS]float64) (WaveBuffer, error) {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		return WaveBuffer{}, fmt.Errorf("%w: oscillator weight sum is zero", ErrInvalidParameter)
	}

	out := WaveBuffer{
		SampleRate: bank[0].SampleRate,
		Samples:    make([]float64, len(bank[0].Samples)),
	}
	for osc := 0; osc < NUM_OSCILLATORS; osc++ {
		w := weights[osc] / sum
		if w == 0 {
			continue
		}
		for i, s := range bank[osc].Samples {
			out.Samples[i] += w * s
		}
	}
	return out, nil
}
