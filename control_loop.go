// control_loop.go - Message polling, decode, and parameter/voice dispatch

package main

import (
	"context"
	"fmt"
	"time"
)

// pollInterval is the cooperative sleep between empty poll cycles.
const pollInterval = time.Millisecond

// ControlMessage is one decoded event from the message source.
type ControlMessage struct {
	Status int
	Data1  int
	Data2  int
	// Data3 exists for sources whose events carry a third data byte.
	// PortMidi events do not, so it stays zero on that backend.
	Data3     int
	Timestamp int64
}

// ControlLoop owns the mutable parameter set and the single voice. One
// goroutine runs the loop; it alone mutates parameters and triggers
// renders, so reads and writes are serialized without locking. The
// voice only ever sees by-value snapshots of the parameters.
type ControlLoop struct {
	source MessageSource
	voice  *Voice
	params SynthParams
}

func NewControlLoop(source MessageSource, voice *Voice) *ControlLoop {
	return &ControlLoop{
		source: source,
		voice:  voice,
		params: DefaultSynthParams(),
	}
}

// Params returns the current parameter snapshot.
func (cl *ControlLoop) Params() SynthParams { return cl.params }

// Run polls the message source until ctx is cancelled, draining up to
// MIDI_EVENT_BATCH events per cycle and dispatching them in arrival
// order. Playback blocks the loop: no further events are processed
// until the current note finishes.
func (cl *ControlLoop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		pending, err := cl.source.Poll()
		if err != nil {
			return fmt.Errorf("poll message source: %w", err)
		}
		if !pending {
			time.Sleep(pollInterval)
			continue
		}

		events, err := cl.source.Read(MIDI_EVENT_BATCH)
		if err != nil {
			return fmt.Errorf("read message source: %w", err)
		}
		for _, msg := range events {
			cl.Dispatch(msg)
		}
	}
}

// Dispatch routes one decoded event. A NoteOn with velocity zero is a
// NoteOff; NoteOff itself is acknowledged only, since a rendered note
// already carries its complete envelope and cannot be interrupted.
func (cl *ControlLoop) Dispatch(msg ControlMessage) {
	switch msg.Status & 0xF0 {
	case STATUS_NOTE_ON:
		if msg.Data2 == 0 {
			return
		}
		if err := cl.voice.NoteOn(msg.Data1, cl.params); err != nil {
			fmt.Printf("note %d dropped: %v\n", msg.Data1, err)
		}
	case STATUS_NOTE_OFF:
		// Acknowledged only.
	case STATUS_CONTROL_CHANGE:
		cl.params.ApplyControlChange(msg.Data1, msg.Data2)
	}
}
