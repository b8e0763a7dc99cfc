//go:build !headless

// audio_backend_oto.go - OTO v3 audio output implementation

package main

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// OtoSink plays finished waveforms through an oto v3 context: mono
// float32 LE at the render sample rate. One context lives for the
// process; each submitted buffer gets its own short-lived player.
type OtoSink struct {
	ctx   *oto.Context
	mutex sync.Mutex
}

func NewOtoSink(sampleRate int) (*OtoSink, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &OtoSink{ctx: ctx}, nil
}

// Play submits one waveform and blocks until the device has drained it.
func (s *OtoSink) Play(buf WaveBuffer) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(buf.Samples) == 0 {
		return nil
	}

	player := s.ctx.NewPlayer(bytes.NewReader(encodeFloat32LE(buf.Samples)))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Close()
}

func (s *OtoSink) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	// oto contexts have no close; suspending parks the device loop.
	return s.ctx.Suspend()
}

// encodeFloat32LE converts samples to the context's wire format,
// clamping to [-1,1] so a hot buffer cannot wrap at the DAC.
func encodeFloat32LE(samples []float64) []byte {
	out := make([]byte, 4*len(samples))
	for i, sample := range samples {
		clamped := math.Max(-1.0, math.Min(1.0, sample))
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(float32(clamped)))
	}
	return out
}
