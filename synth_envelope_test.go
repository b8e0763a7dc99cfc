// synth_envelope_test.go - ADSR envelope shaping tests

package main

import (
	"math"
	"testing"
)

// onesBuffer gives a unity waveform so the output reads back the
// envelope contour directly.
func onesBuffer(rate, n int) WaveBuffer {
	buf := WaveBuffer{SampleRate: rate, Samples: make([]float64, n)}
	for i := range buf.Samples {
		buf.Samples[i] = 1
	}
	return buf
}

func TestEnvelope_StandardSegments(t *testing.T) {
	env := EnvelopeParams{Attack: 0.1, Decay: 0.1, Sustain: 0.8, Release: 0.1}
	out := ApplyEnvelope(onesBuffer(SAMPLE_RATE, SAMPLE_RATE), env)

	attackSamples := int(env.Attack * SAMPLE_RATE)
	decaySamples := int(env.Decay * SAMPLE_RATE)

	if out.Samples[0] != 0 {
		t.Fatalf("expected envelope start 0, got %v", out.Samples[0])
	}
	if got := out.Samples[attackSamples-1]; math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("expected attack peak 1.0, got %v", got)
	}
	if got := out.Samples[attackSamples]; math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("expected decay to start at peak, got %v", got)
	}
	if got := out.Samples[attackSamples+decaySamples]; math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("expected first sustain sample 0.8, got %v", got)
	}
	if got := out.Samples[len(out.Samples)-1]; math.Abs(got) > 1e-9 {
		t.Fatalf("expected envelope end 0, got %v", got)
	}
}

func TestEnvelope_ReleaseOverwritesShortNote(t *testing.T) {
	// 0.1s of audio but a 0.5s release: the release ramp owns the whole
	// buffer, clobbering the attack and decay segments written first.
	env := EnvelopeParams{Attack: 0.1, Decay: 0.1, Sustain: 0.8, Release: 0.5}
	out := ApplyEnvelope(onesBuffer(SAMPLE_RATE, SAMPLE_RATE/10), env)

	if got := out.Samples[0]; math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("expected sample 0 on the release ramp (0.8), got attack/decay residue %v", got)
	}
	for i := 1; i < len(out.Samples); i++ {
		if out.Samples[i] >= out.Samples[i-1] {
			t.Fatalf("expected strictly falling release ramp, rose at sample %d", i)
		}
	}
	if got := out.Samples[len(out.Samples)-1]; math.Abs(got) > 1e-9 {
		t.Fatalf("expected fade to 0, got %v", got)
	}
}

func TestEnvelope_ZeroReleaseLeavesSustainTail(t *testing.T) {
	env := EnvelopeParams{Attack: 0.1, Decay: 0.1, Sustain: 0.5, Release: 0}
	out := ApplyEnvelope(onesBuffer(SAMPLE_RATE, SAMPLE_RATE), env)

	if got := out.Samples[len(out.Samples)-1]; math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected sustain level tail 0.5, got %v", got)
	}
}

func TestEnvelope_ScalesWaveform(t *testing.T) {
	wave := WaveBuffer{SampleRate: SAMPLE_RATE, Samples: make([]float64, SAMPLE_RATE)}
	for i := range wave.Samples {
		wave.Samples[i] = -0.5
	}
	env := EnvelopeParams{Attack: 0, Decay: 0, Sustain: 1, Release: 0}
	out := ApplyEnvelope(wave, env)

	for i, s := range out.Samples {
		if math.Abs(s-(-0.5)) > 1e-12 {
			t.Fatalf("sample %d: expected -0.5 under unity envelope, got %v", i, s)
		}
	}
	if &out.Samples[0] == &wave.Samples[0] {
		t.Fatal("expected a new output buffer, input was aliased")
	}
}

func TestEnvelope_EmptyBufferTolerated(t *testing.T) {
	env := EnvelopeParams{Attack: 0.1, Decay: 0.1, Sustain: 0.8, Release: 0.1}
	out := ApplyEnvelope(WaveBuffer{SampleRate: SAMPLE_RATE}, env)
	if len(out.Samples) != 0 {
		t.Fatalf("expected empty output, got %d samples", len(out.Samples))
	}
}
