// synth_oscillator.go - Note to frequency mapping and the four-waveform oscillator bank

package main

import "math"

// NoteToFrequency converts a MIDI note number to its fundamental
// frequency in Hz, equal temperament tuned to A4 (note 69) = 440Hz.
func NoteToFrequency(note int) float64 {
	return 440.0 * math.Pow(2.0, (float64(note)-69.0)/12.0)
}

// WaveBuffer is an ordered block of mono samples tagged with the rate
// it was rendered at. Pipeline stages produce new buffers rather than
// mutating their input.
type WaveBuffer struct {
	SampleRate int
	Samples    []float64
}

// NewWaveBuffer allocates a silent buffer of floor(rate*duration)
// samples. A zero duration yields an empty buffer, which every
// downstream stage tolerates.
func NewWaveBuffer(sampleRate int, duration float64) WaveBuffer {
	n := int(float64(sampleRate) * duration)
	if n < 0 {
		n = 0
	}
	return WaveBuffer{SampleRate: sampleRate, Samples: make([]float64, n)}
}

// GenerateOscillators renders the four basis waveforms for one note.
// Each oscillator runs at the base frequency plus its own detune offset
// (a raw Hz offset, not a pitch ratio).
func GenerateOscillators(freq float64, detune [NUM_OSCILLATORS]float64, sampleRate int, duration float64) [NUM_OSCILLATORS]WaveBuffer {
	var bank [NUM_OSCILLATORS]WaveBuffer
	for osc := 0; osc < NUM_OSCILLATORS; osc++ {
		bank[osc] = generateWaveform(osc, freq+detune[osc], sampleRate, duration)
	}
	return bank
}

func generateWaveform(waveType int, freq float64, sampleRate int, duration float64) WaveBuffer {
	buf := NewWaveBuffer(sampleRate, duration)
	for i := range buf.Samples {
		t := float64(i) / float64(sampleRate)
		buf.Samples[i] = oscillatorSample(waveType, freq*t)
	}
	return buf
}

// oscillatorSample evaluates one waveform at phase ft = frequency*time
// (whole periods at integer values). The naive shapes alias above
// Nyquist; that raw edge is the intended oscillator sound.
func oscillatorSample(waveType int, ft float64) float64 {
	switch waveType {
	case WAVE_SINE:
		return math.Sin(2 * math.Pi * ft)
	case WAVE_SAWTOOTH:
		return sawtooth(ft)
	case WAVE_TRIANGLE:
		return 2*math.Abs(sawtooth(ft)) - 1
	case WAVE_PULSE:
		// Fixed 0.5 duty cycle.
		if math.Mod(ft, 1.0) < 0.5 {
			return 1.0
		}
		return -1.0
	}
	return 0
}

// sawtooth ramps over [-1,1) once per period with a hard wrap at the
// period boundary.
func sawtooth(ft float64) float64 {
	return 2 * (ft - math.Floor(ft+0.5))
}
