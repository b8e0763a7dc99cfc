//go:build !headless

// midi_backend_portmidi.go - PortMidi message source implementation

package main

import (
	"fmt"

	"github.com/rakyll/portmidi"
)

const midiStreamBufferSize = 1024

// PortMidiSource reads controller events from a PortMidi input stream
// opened against a pre-selected device index. Device enumeration is the
// caller's problem; the index is taken as given.
type PortMidiSource struct {
	stream *portmidi.Stream
	closed bool
}

func NewPortMidiSource(deviceID int) (*PortMidiSource, error) {
	if err := portmidi.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize portmidi: %w", err)
	}
	stream, err := portmidi.NewInputStream(portmidi.DeviceID(deviceID), midiStreamBufferSize)
	if err != nil {
		portmidi.Terminate()
		return nil, fmt.Errorf("open MIDI input device %d: %w", deviceID, err)
	}
	return &PortMidiSource{stream: stream}, nil
}

func (s *PortMidiSource) Poll() (bool, error) {
	return s.stream.Poll()
}

func (s *PortMidiSource) Read(max int) ([]ControlMessage, error) {
	events, err := s.stream.Read(max)
	if err != nil {
		return nil, err
	}
	msgs := make([]ControlMessage, len(events))
	for i, ev := range events {
		msgs[i] = ControlMessage{
			Status:    int(ev.Status),
			Data1:     int(ev.Data1),
			Data2:     int(ev.Data2),
			Timestamp: int64(ev.Timestamp),
		}
	}
	return msgs, nil
}

// Close releases the stream and the library, exactly once even when
// called from both a defer and an error path.
func (s *PortMidiSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.stream.Close()
	portmidi.Terminate()
	return err
}
