// synth_envelope.go - Four-stage amplitude envelope shaping

package main

// ApplyEnvelope multiplies a waveform by a four-stage ADSR contour
// spanning the whole buffer:
//
//  1. attack: linear ramp 0 -> 1
//  2. decay: linear ramp 1 -> sustain level
//  3. sustain: constant sustain level for whatever remains
//  4. release: linear ramp sustain -> 0 over the final release span
//
// The release ramp is written last and overwrites any earlier segment
// it overlaps, so when attack+decay+release exceed the note length the
// tail is always a clean fade to zero. Callers depend on that last-wins
// ordering; do not reorder the writes.
func ApplyEnvelope(wave WaveBuffer, env EnvelopeParams) WaveBuffer {
	total := len(wave.Samples)
	rate := float64(wave.SampleRate)

	attackSamples := int(env.Attack * rate)
	decaySamples := int(env.Decay * rate)
	releaseSamples := int(env.Release * rate)
	sustainSamples := total - attackSamples - decaySamples - releaseSamples
	if sustainSamples < 0 {
		sustainSamples = 0
	}

	contour := make([]float64, total)
	linearRamp(clampSegment(contour, 0, attackSamples), 0, 1)
	linearRamp(clampSegment(contour, attackSamples, decaySamples), 1, env.Sustain)
	fillSegment(clampSegment(contour, attackSamples+decaySamples, sustainSamples), env.Sustain)

	releaseStart := total - releaseSamples
	if releaseStart < 0 {
		releaseStart = 0
	}
	linearRamp(contour[releaseStart:], env.Sustain, 0)

	out := WaveBuffer{SampleRate: wave.SampleRate, Samples: make([]float64, total)}
	for i, s := range wave.Samples {
		out.Samples[i] = s * contour[i]
	}
	return out
}

// clampSegment returns contour[start:start+length] truncated to the
// buffer bounds, so oversized stages simply run off the end.
func clampSegment(contour []float64, start, length int) []float64 {
	if start < 0 {
		start = 0
	}
	if start > len(contour) {
		start = len(contour)
	}
	end := start + length
	if end > len(contour) {
		end = len(contour)
	}
	return contour[start:end]
}

// linearRamp fills dst with evenly spaced values from `from` to `to`,
// both endpoints included.
func linearRamp(dst []float64, from, to float64) {
	n := len(dst)
	if n == 0 {
		return
	}
	if n == 1 {
		dst[0] = from
		return
	}
	step := (to - from) / float64(n-1)
	for i := range dst {
		dst[i] = from + step*float64(i)
	}
}

func fillSegment(dst []float64, value float64) {
	for i := range dst {
		dst[i] = value
	}
}
