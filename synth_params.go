// synth_params.go - Live-tunable synthesis parameter state and controller dispatch

package main

// EnvelopeParams holds the four ADSR stage settings. Attack, decay and
// release are durations in seconds; sustain is a level.
type EnvelopeParams struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// SynthParams is the full live-tunable parameter set. The control loop
// owns the one mutable instance and mutates it field by field from
// controller messages; every render receives a by-value snapshot, so an
// in-flight note never observes a later mutation.
type SynthParams struct {
	// Weights are the raw oscillator blend weights. They are normalized
	// by their sum at morph time, so only ratios matter.
	Weights [NUM_OSCILLATORS]float64

	Envelope EnvelopeParams

	// FilterCutoff is the low-pass corner in Hz, within
	// [MIN_CUTOFF_HZ, SAMPLE_RATE/2].
	FilterCutoff float64

	// FilterResonance is configured over [0,1] but does not enter the
	// Butterworth coefficient design (see DESIGN.md).
	FilterResonance float64

	// Detune is a per-oscillator frequency offset in Hz, range [-1,1],
	// added to the base frequency before waveform generation.
	Detune [NUM_OSCILLATORS]float64
}

func DefaultSynthParams() SynthParams {
	return SynthParams{
		Weights: [NUM_OSCILLATORS]float64{0.25, 0.25, 0.25, 0.25},
		Envelope: EnvelopeParams{
			Attack:  0.1,
			Decay:   0.1,
			Sustain: 0.8,
			Release: 0.1,
		},
		FilterCutoff:    1000.0,
		FilterResonance: 0.7,
	}
}

// ccAction applies one controller value, already normalized to [0,1],
// to a single parameter field.
type ccAction func(p *SynthParams, norm float64)

var ccActions = buildCCActions()

func buildCCActions() map[int]ccAction {
	actions := map[int]ccAction{
		CC_ATTACK:  func(p *SynthParams, v float64) { p.Envelope.Attack = v },
		CC_DECAY:   func(p *SynthParams, v float64) { p.Envelope.Decay = v },
		CC_SUSTAIN: func(p *SynthParams, v float64) { p.Envelope.Sustain = v },
		CC_RELEASE: func(p *SynthParams, v float64) { p.Envelope.Release = v },
		CC_CUTOFF: func(p *SynthParams, v float64) {
			p.FilterCutoff = clampFloat(v*SAMPLE_RATE/2, MIN_CUTOFF_HZ, SAMPLE_RATE/2)
		},
		CC_RESONANCE: func(p *SynthParams, v float64) { p.FilterResonance = v },
	}
	for i := 0; i < NUM_OSCILLATORS; i++ {
		osc := i
		actions[CC_WEIGHT_BASE+osc] = func(p *SynthParams, v float64) {
			p.Weights[osc] = v
		}
		actions[CC_DETUNE_BASE+osc] = func(p *SynthParams, v float64) {
			p.Detune[osc] = (v - 0.5) * 2
		}
	}
	return actions
}

// ApplyControlChange maps one controller message onto the parameter
// set. Unmapped controller numbers are not an error; the method reports
// whether the message had any effect. The raw value is pre-clamped to
// the 7-bit controller range, so scaled results cannot leave bounds.
func (p *SynthParams) ApplyControlChange(controller, value int) bool {
	action, ok := ccActions[controller]
	if !ok {
		return false
	}
	if value < 0 {
		value = 0
	} else if value > MIDI_VALUE_MAX {
		value = MIDI_VALUE_MAX
	}
	action(p, float64(value)/MIDI_VALUE_MAX)
	return true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
