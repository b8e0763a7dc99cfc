// synth_interfaces.go - Common interfaces for message sources and audio sinks

package main

import "fmt"

// MessageSource yields decoded performance-controller events from a
// device opened against a fixed input index. Implementations own the
// underlying stream and must release it in Close exactly once.
type MessageSource interface {
	// Poll reports whether at least one event is queued.
	Poll() (bool, error)
	// Read drains up to max queued events in arrival order.
	Read(max int) ([]ControlMessage, error)
	// Close releases the stream.
	Close() error
}

// AudioSink accepts one finished waveform at a time.
type AudioSink interface {
	// Play submits a buffer and blocks until playback completes.
	Play(buf WaveBuffer) error
	// Close releases the output device.
	Close() error
}

// Message source backends.
const (
	MIDI_BACKEND_PORTMIDI = iota
)

// Audio sink backends.
const (
	AUDIO_BACKEND_OTO = iota
)

func NewMessageSource(backend int, deviceID int) (MessageSource, error) {
	switch backend {
	case MIDI_BACKEND_PORTMIDI:
		return NewPortMidiSource(deviceID)
	}
	return nil, fmt.Errorf("unknown MIDI backend: %d", backend)
}

func NewAudioSink(backend int, sampleRate int) (AudioSink, error) {
	switch backend {
	case AUDIO_BACKEND_OTO:
		return NewOtoSink(sampleRate)
	}
	return nil, fmt.Errorf("unknown audio backend: %d", backend)
}
