// synth_voice.go - Per-voice render pipeline and playback state machine

package main

import "fmt"

// Voice playback states.
const (
	VOICE_IDLE = iota
	VOICE_RENDERING
	VOICE_PLAYING
	VOICE_DONE
)

// Voice renders and plays one note at a time. The control loop drives
// it from a single goroutine, so state transitions need no locking;
// playback itself runs as a separate task whose completion is signalled
// on a channel. NoteOn consumes that signal before returning, which
// keeps the synth strictly monophonic while leaving the state machine
// shaped for overlapping voices later.
type Voice struct {
	sink       AudioSink
	sampleRate int
	duration   float64
	state      int
}

func NewVoice(sink AudioSink, sampleRate int) *Voice {
	return &Voice{
		sink:       sink,
		sampleRate: sampleRate,
		duration:   NOTE_DURATION,
	}
}

func (v *Voice) State() int { return v.state }

// NoteOn renders the note against the given parameter snapshot, plays
// the finished buffer, and blocks until playback completes. A render
// failure aborts the note; nothing is submitted to the sink.
func (v *Voice) NoteOn(note int, params SynthParams) error {
	if v.state != VOICE_IDLE {
		return fmt.Errorf("voice busy in state %d", v.state)
	}

	v.state = VOICE_RENDERING
	buf, err := RenderNote(note, params, v.sampleRate, v.duration)
	if err != nil {
		v.state = VOICE_IDLE
		return fmt.Errorf("render note %d: %w", note, err)
	}

	v.state = VOICE_PLAYING
	done := make(chan error, 1)
	go func() {
		done <- v.sink.Play(buf)
	}()
	err = <-done
	v.state = VOICE_DONE

	// Monophonic: the voice is immediately available for the next note.
	v.state = VOICE_IDLE
	if err != nil {
		return fmt.Errorf("play note %d: %w", note, err)
	}
	return nil
}

// RenderNote runs the full synthesis pipeline for one note: oscillator
// bank, morph, envelope, low-pass. Each stage reads only the snapshot
// it was handed, so parameter changes arriving mid-render affect the
// next note, never this one.
func RenderNote(note int, params SynthParams, sampleRate int, duration float64) (WaveBuffer, error) {
	freq := NoteToFrequency(note)
	bank := GenerateOscillators(freq, params.Detune, sampleRate, duration)
	morphed, err := MorphWaveforms(bank, params.Weights)
	if err != nil {
		return WaveBuffer{}, err
	}
	shaped := ApplyEnvelope(morphed, params.Envelope)
	return ApplyLowPass(shaped, params.FilterCutoff, params.FilterResonance), nil
}
