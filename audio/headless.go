//go:build headless

// headless.go - no-op audio output for builds with the headless tag

package audio

const sampleRate = 44100

// Player is a no-op stand-in for the oto-backed player, used when the
// binary is built with the headless tag (CI, disasm-only, etc.).
type Player struct {
	mixer   *Mixer
	started bool
}

// NewPlayer always succeeds; there is no device to open.
func NewPlayer() (*Player, error) {
	return &Player{}, nil
}

func (p *Player) SetupMixer(m *Mixer) { p.mixer = m }
func (p *Player) Start()              { p.started = true }
func (p *Player) Close()              { p.started = false }

// SampleRate reports the fixed nominal rate, for callers that size
// buffers from it even when no audio device is open.
func SampleRate() int { return sampleRate }
