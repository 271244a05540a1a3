package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/game"
)

const sampleRate = beep.SampleRate(44100)

// volume is the log2 attenuation applied to every cue.
const volume = -2

// Render turns notes into a finite stream at rate.
func Render(rate beep.SampleRate, notes []Note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := rate.N(n.Duration)
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}

		tone, err := generators.SineTone(rate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", n.Freq, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}

// Player mixes cues onto the speaker. The zero value is not usable; call
// NewPlayer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates a player. It makes no sound until Init succeeds.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted toggles output without closing the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports whether output is suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Handle plays the cue for ev. It satisfies game.Listener.
func (p *Player) Handle(ev game.Event) {
	notes := Cue(ev)
	if len(notes) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	stream, err := Render(sampleRate, notes)
	if err != nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(stream)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
