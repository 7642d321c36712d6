// voices.go - fixed square-wave voice set for the cabinet's sound
// effects, driven by arcadeio.SoundEvent.

package audio

import (
	"math"
	"sync"

	"github.com/retroarcade/space-invaders-8080/arcadeio"
)

// voiceSpec is the fixed tone/duration for a one-shot voice.
type voiceSpec struct {
	freqHz   float64
	duration float64 // seconds; 0 means "loops until stopped"
}

var voiceSpecs = map[arcadeio.Voice]voiceSpec{
	arcadeio.VoiceUFO:         {freqHz: 160, duration: 0},
	arcadeio.VoiceShot:        {freqHz: 900, duration: 0.08},
	arcadeio.VoicePlayerDie:   {freqHz: 110, duration: 0.4},
	arcadeio.VoiceInvaderDie:  {freqHz: 600, duration: 0.12},
	arcadeio.VoiceExtraLife:   {freqHz: 1200, duration: 0.2},
	arcadeio.VoiceFleetStep1:  {freqHz: 80, duration: 0.1},
	arcadeio.VoiceFleetStep2:  {freqHz: 100, duration: 0.1},
	arcadeio.VoiceFleetStep3:  {freqHz: 120, duration: 0.1},
	arcadeio.VoiceFleetStep4:  {freqHz: 140, duration: 0.1},
	arcadeio.VoiceUFOHit:      {freqHz: 2000, duration: 0.3},
}

// Mixer renders active voices into a mono float32 stream at sampleRate.
// It is the model-level equivalent of the teacher's SoundChip: a
// stateful generator that a backend's Read callback pulls from.
type Mixer struct {
	sampleRate int

	mu     sync.Mutex
	active map[arcadeio.Voice]*voiceState
}

type voiceState struct {
	phase        float64
	samplesLeft  int // -1 means indefinite (loops)
}

// NewMixer returns a Mixer that renders at sampleRate samples/sec.
func NewMixer(sampleRate int) *Mixer {
	return &Mixer{
		sampleRate: sampleRate,
		active:     make(map[arcadeio.Voice]*voiceState),
	}
}

// Trigger starts or stops a voice per the cabinet's sound event.
func (m *Mixer) Trigger(ev arcadeio.SoundEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !ev.Start {
		delete(m.active, ev.Voice)
		return
	}
	spec, ok := voiceSpecs[ev.Voice]
	if !ok {
		return
	}
	samplesLeft := -1
	if spec.duration > 0 {
		samplesLeft = int(spec.duration * float64(m.sampleRate))
	}
	m.active[ev.Voice] = &voiceState{samplesLeft: samplesLeft}
}

// NextSample renders one mono sample, advancing every active voice.
func (m *Mixer) NextSample() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.active) == 0 {
		return 0
	}
	var sum float64
	for v, st := range m.active {
		spec := voiceSpecs[v]
		if math.Sin(st.phase) >= 0 {
			sum += 0.2
		} else {
			sum -= 0.2
		}
		st.phase += 2 * math.Pi * spec.freqHz / float64(m.sampleRate)
		if st.phase > 2*math.Pi {
			st.phase -= 2 * math.Pi
		}
		if st.samplesLeft > 0 {
			st.samplesLeft--
			if st.samplesLeft == 0 {
				delete(m.active, v)
			}
		}
	}
	if sum > 1 {
		sum = 1
	}
	if sum < -1 {
		sum = -1
	}
	return float32(sum)
}
