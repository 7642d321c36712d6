package audio

import (
	"testing"

	"github.com/retroarcade/space-invaders-8080/arcadeio"
)

func TestMixerSilentWithNoVoices(t *testing.T) {
	m := NewMixer(44100)
	for i := 0; i < 100; i++ {
		if s := m.NextSample(); s != 0 {
			t.Fatalf("expected silence, got %v at sample %d", s, i)
		}
	}
}

func TestMixerTriggerProducesNonSilentOutput(t *testing.T) {
	m := NewMixer(44100)
	m.Trigger(arcadeio.SoundEvent{Voice: arcadeio.VoiceShot, Start: true})

	nonZero := false
	for i := 0; i < 200; i++ {
		if m.NextSample() != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Fatalf("expected at least one non-silent sample after trigger")
	}
}

func TestMixerOneShotVoiceExpires(t *testing.T) {
	m := NewMixer(44100)
	m.Trigger(arcadeio.SoundEvent{Voice: arcadeio.VoiceShot, Start: true})

	spec := voiceSpecs[arcadeio.VoiceShot]
	total := int(spec.duration*44100) + 10
	for i := 0; i < total; i++ {
		m.NextSample()
	}

	m.mu.Lock()
	_, active := m.active[arcadeio.VoiceShot]
	m.mu.Unlock()
	if active {
		t.Fatalf("expected one-shot voice to have expired")
	}
}

func TestMixerLoopingVoicePersistsUntilStopped(t *testing.T) {
	m := NewMixer(44100)
	m.Trigger(arcadeio.SoundEvent{Voice: arcadeio.VoiceUFO, Start: true})

	for i := 0; i < 100000; i++ {
		m.NextSample()
	}
	m.mu.Lock()
	_, active := m.active[arcadeio.VoiceUFO]
	m.mu.Unlock()
	if !active {
		t.Fatalf("expected looping voice to still be active")
	}

	m.Trigger(arcadeio.SoundEvent{Voice: arcadeio.VoiceUFO, Start: false})
	m.mu.Lock()
	_, active = m.active[arcadeio.VoiceUFO]
	m.mu.Unlock()
	if active {
		t.Fatalf("expected stop event to clear the voice")
	}
}

func TestMixerUnknownVoiceIgnored(t *testing.T) {
	m := NewMixer(44100)
	m.Trigger(arcadeio.SoundEvent{Voice: arcadeio.Voice(255), Start: true})
	if len(m.active) != 0 {
		t.Fatalf("expected unknown voice to be ignored")
	}
}
