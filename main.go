// main.go - Entry point for the morphsynth MIDI synthesizer

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	device := flag.Int("device", 0, "MIDI input device index")
	flag.Parse()

	if err := run(*device); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(device int) error {
	fmt.Println("morphsynth - four-oscillator morphing MIDI synthesizer")

	source, err := NewMessageSource(MIDI_BACKEND_PORTMIDI, device)
	if err != nil {
		return fmt.Errorf("open MIDI input: %w", err)
	}
	defer source.Close()

	sink, err := NewAudioSink(AUDIO_BACKEND_OTO, SAMPLE_RATE)
	if err != nil {
		return fmt.Errorf("open audio output: %w", err)
	}
	defer sink.Close()

	fmt.Printf("Listening on MIDI device %d at %dHz. Ctrl+C to quit.\n", device, SAMPLE_RATE)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := NewControlLoop(source, NewVoice(sink, SAMPLE_RATE))
	return loop.Run(ctx)
}
