//go:build headless

package audio

import "testing"

func TestHeadlessPlayerLifecycleIsANoOp(t *testing.T) {
	p, err := NewPlayer()
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	p.SetupMixer(NewMixer(SampleRate()))
	p.Start()
	p.Close()
}

func TestHeadlessSampleRateIsFixed(t *testing.T) {
	if SampleRate() != 44100 {
		t.Fatalf("expected 44100, got %d", SampleRate())
	}
}
