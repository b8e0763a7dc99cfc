//go:build headless

package main

type PortMidiSource struct {
	closed bool
}

func NewPortMidiSource(deviceID int) (*PortMidiSource, error) {
	return &PortMidiSource{}, nil
}

func (s *PortMidiSource) Poll() (bool, error) {
	return false, nil
}

func (s *PortMidiSource) Read(max int) ([]ControlMessage, error) {
	return nil, nil
}

func (s *PortMidiSource) Close() error {
	s.closed = true
	return nil
}
