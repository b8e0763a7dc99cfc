// synth_constants.go - Shared constants for the synthesis pipeline

package main

const SAMPLE_RATE = 44100

// NOTE_DURATION is the fixed render length per note-on, in seconds.
// Velocity and hold time do not change it.
const NOTE_DURATION = 1.0

const NUM_OSCILLATORS = 4

// Oscillator bank indices.
const (
	WAVE_SINE = iota
	WAVE_SAWTOOTH
	WAVE_TRIANGLE
	WAVE_PULSE
)

// MIDI status bytes. The channel nibble is masked off before comparison.
const (
	STATUS_NOTE_OFF       = 0x80
	STATUS_NOTE_ON        = 0x90
	STATUS_CONTROL_CHANGE = 0xB0
)

// Controller numbers accepted by the parameter dispatch table. Anything
// else is ignored.
const (
	CC_ATTACK      = 14
	CC_DECAY       = 15
	CC_SUSTAIN     = 16
	CC_RELEASE     = 17
	CC_WEIGHT_BASE = 18 // 18-21 map to oscillator weights 0-3
	CC_CUTOFF      = 22
	CC_RESONANCE   = 23
	CC_DETUNE_BASE = 26 // 26-29 map to oscillator detune 0-3
)

const (
	MIDI_EVENT_BATCH = 10 // events drained from the source per poll cycle
	MIDI_VALUE_MAX   = 127.0
)

// Filter cutoff bounds. The upper bound is the Nyquist frequency.
const MIN_CUTOFF_HZ = 20.0
