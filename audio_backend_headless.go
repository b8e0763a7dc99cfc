//go:build headless

package main

type OtoSink struct {
	played int
}

func NewOtoSink(sampleRate int) (*OtoSink, error) {
	return &OtoSink{}, nil
}

func (s *OtoSink) Play(buf WaveBuffer) error {
	s.played++
	return nil
}

func (s *OtoSink) Close() error {
	return nil
}
