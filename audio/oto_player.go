//go:build !headless

// oto_player.go - oto-backed audio output for the cabinet's sound effects

package audio

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/oto/v3"
)

const sampleRate = 44100

// Player streams a Mixer's output through an oto context.
type Player struct {
	ctx       *oto.Context
	player    *oto.Player
	mixer     atomic.Pointer[Mixer]
	sampleBuf []float32
	started   bool
	mutex     sync.Mutex
}

// NewPlayer opens an oto context at the cabinet's native sample rate.
func NewPlayer() (*Player, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}
	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready
	return &Player{ctx: ctx}, nil
}

// SetupMixer attaches the Mixer this player streams from and starts
// buffering; playback itself begins on Start.
func (p *Player) SetupMixer(m *Mixer) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.mixer.Store(m)
	p.player = p.ctx.NewPlayer(p)
	p.sampleBuf = make([]float32, 4096)
}

// Read implements io.Reader for oto's player, pulling samples from the
// attached Mixer. Runs on oto's audio callback goroutine.
func (p *Player) Read(b []byte) (int, error) {
	m := p.mixer.Load()
	if m == nil {
		for i := range b {
			b[i] = 0
		}
		return len(b), nil
	}

	numSamples := len(b) / 4
	if len(p.sampleBuf) < numSamples {
		p.sampleBuf = make([]float32, numSamples)
	}
	samples := p.sampleBuf[:numSamples]
	for i := 0; i < numSamples; i++ {
		samples[i] = m.NextSample()
	}
	copy(b, (*[1 << 30]byte)(unsafe.Pointer(&samples[0]))[:len(b)])
	return len(b), nil
}

// Start begins playback. A no-op if already started or not set up.
func (p *Player) Start() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.started && p.player != nil {
		p.player.Play()
		p.started = true
	}
}

// Close stops and releases the underlying oto player.
func (p *Player) Close() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.player != nil {
		p.player.Close()
		p.player = nil
		p.started = false
	}
}

// SampleRate reports the fixed output sample rate.
func SampleRate() int { return sampleRate }
