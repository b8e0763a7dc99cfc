// synth_voice_test.go - Render pipeline and voice state machine tests

package main

import (
	"errors"
	"math"
	"testing"
)

// stateRecordingSink captures the voice state observed at submission
// time along with every submitted buffer.
type stateRecordingSink struct {
	voice  *Voice
	states []int
	played []WaveBuffer
}

func (s *stateRecordingSink) Play(buf WaveBuffer) error {
	if s.voice != nil {
		s.states = append(s.states, s.voice.State())
	}
	s.played = append(s.played, buf)
	return nil
}

func (s *stateRecordingSink) Close() error { return nil }

func TestVoice_SubmitsWhilePlayingThenReturnsToIdle(t *testing.T) {
	sink := &stateRecordingSink{}
	voice := NewVoice(sink, SAMPLE_RATE)
	sink.voice = voice

	if voice.State() != VOICE_IDLE {
		t.Fatalf("expected new voice idle, got state %d", voice.State())
	}
	if err := voice.NoteOn(69, DefaultSynthParams()); err != nil {
		t.Fatalf("unexpected note-on error: %v", err)
	}
	if len(sink.played) != 1 {
		t.Fatalf("expected exactly one submitted buffer, got %d", len(sink.played))
	}
	if sink.states[0] != VOICE_PLAYING {
		t.Fatalf("expected submission in playing state, got state %d", sink.states[0])
	}
	if voice.State() != VOICE_IDLE {
		t.Fatalf("expected voice idle after playback, got state %d", voice.State())
	}
}

func TestVoice_RenderFailureSubmitsNothing(t *testing.T) {
	sink := &stateRecordingSink{}
	voice := NewVoice(sink, SAMPLE_RATE)

	params := DefaultSynthParams()
	params.Weights = [NUM_OSCILLATORS]float64{}
	err := voice.NoteOn(69, params)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if len(sink.played) != 0 {
		t.Fatalf("expected no submission on render failure, got %d buffers", len(sink.played))
	}
	if voice.State() != VOICE_IDLE {
		t.Fatalf("expected voice idle after aborted render, got state %d", voice.State())
	}
}

func TestRenderNote_DefaultsProduceOneFiniteSecond(t *testing.T) {
	buf, err := RenderNote(69, DefaultSynthParams(), SAMPLE_RATE, NOTE_DURATION)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if len(buf.Samples) != SAMPLE_RATE {
		t.Fatalf("expected %d samples, got %d", SAMPLE_RATE, len(buf.Samples))
	}
	if buf.SampleRate != SAMPLE_RATE {
		t.Fatalf("expected sample rate tag %d, got %d", SAMPLE_RATE, buf.SampleRate)
	}
	for i, s := range buf.Samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			t.Fatalf("non-finite sample %d: %v", i, s)
		}
	}
}

func TestRenderNote_StartsSilentAndEndsSilent(t *testing.T) {
	// Default envelope opens with an attack ramp from zero and closes
	// with a release ramp to zero.
	buf, err := RenderNote(69, DefaultSynthParams(), SAMPLE_RATE, NOTE_DURATION)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if got := buf.Samples[0]; got != 0 {
		t.Fatalf("expected silent first sample, got %v", got)
	}
	// The recursive low-pass carries two samples of memory past the end
	// of the release ramp, so the tail rings slightly above zero.
	if got := buf.Samples[len(buf.Samples)-1]; math.Abs(got) > 1e-2 {
		t.Fatalf("expected near-silent last sample, got %v", got)
	}
}

func TestRenderNote_ZeroDuration(t *testing.T) {
	buf, err := RenderNote(69, DefaultSynthParams(), SAMPLE_RATE, 0)
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	if len(buf.Samples) != 0 {
		t.Fatalf("expected empty buffer, got %d samples", len(buf.Samples))
	}
}
